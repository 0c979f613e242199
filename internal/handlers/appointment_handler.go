package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
	"github.com/BruksfildServices01/barberbook-api/internal/httpresp"
	"github.com/BruksfildServices01/barberbook-api/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barberbook-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER (painel do dono)
// ======================================================

type AppointmentHandler struct {
	bookUC        *ucAppointment.Book
	cancelUC      *ucAppointment.Cancel
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth
	availability  AvailabilityCache
}

func NewAppointmentHandler(
	bookUC *ucAppointment.Book,
	cancelUC *ucAppointment.Cancel,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	availability AvailabilityCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:        bookUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		availability:  availability,
	}
}

// ======================================================
// POST /api/me/appointments (dono marca pelo telefone)
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	h.availability.InvalidateDate(c.Request.Context(), ap.Date)

	httpresp.Created(c, ap)
}

// ======================================================
// GET /api/me/appointments?date=YYYY-MM-DD
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		var be httperr.BusinessError
		if asBusiness(err, &be) {
			httperr.BadRequest(c, be.Code, "Data inválida.")
			return
		}
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// GET /api/me/appointments/month?month=YYYY-MM
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		httperr.BadRequest(c, "missing_month", "Mês obrigatório.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), month)
	if err != nil {
		var be httperr.BusinessError
		if asBusiness(err, &be) {
			httperr.BadRequest(c, be.Code, "Mês inválido.")
			return
		}
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// DELETE /api/me/appointments/:id
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "cancel_failed", "Erro ao cancelar agendamento.")
		return
	}

	h.availability.InvalidateDate(c.Request.Context(), ap.Date)

	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "id": ap.ID})
}
