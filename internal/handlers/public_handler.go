package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
	"github.com/BruksfildServices01/barberbook-api/internal/httpresp"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/barberbook-api/internal/usecase/appointment"
	ucSettings "github.com/BruksfildServices01/barberbook-api/internal/usecase/settings"
)

////////////////////////////////////////////////////////
// HANDLER (fluxo do cliente, sem login)
////////////////////////////////////////////////////////

type PublicHandler struct {
	db *gorm.DB

	settingsUC     *ucSettings.Get
	availabilityUC *ucAppointment.GetAvailability
	bookUC         *ucAppointment.Book
	listByPhoneUC  *ucAppointment.ListAppointmentsByPhone
	cancelByCodeUC *ucAppointment.CancelByCode

	availability AvailabilityCache
}

func NewPublicHandler(
	db *gorm.DB,
	settingsUC *ucSettings.Get,
	availabilityUC *ucAppointment.GetAvailability,
	bookUC *ucAppointment.Book,
	listByPhoneUC *ucAppointment.ListAppointmentsByPhone,
	cancelByCodeUC *ucAppointment.CancelByCode,
	availability AvailabilityCache,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		settingsUC:     settingsUC,
		availabilityUC: availabilityUC,
		bookUC:         bookUC,
		listByPhoneUC:  listByPhoneUC,
		cancelByCodeUC: cancelByCodeUC,
		availability:   availability,
	}
}

////////////////////////////////////////////////////////
// SHOP INFO + SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) GetShop(c *gin.Context) {
	out, err := h.settingsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "settings_failed", "Erro ao carregar a loja.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop_name": out.Business.ShopName,
		"logo_url":  out.Business.LogoURL,
		"week":      out.Business.Week,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	// Chave de cache na mesma forma canônica que o booking invalida
	date, err := time.Parse(schedule.DateLayout, dateStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Data inválida.")
		return
	}
	dateStr = date.Format(schedule.DateLayout)

	// Cache de leitura; o booking nunca decide por ele
	if slots, ok := h.availability.Get(c.Request.Context(), dateStr, uint(serviceID)); ok {
		c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots, "cached": true})
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ServiceID: uint(serviceID),
			Date:      dateStr,
		},
	)
	if err != nil {
		var be httperr.BusinessError
		if asBusiness(err, &be) {
			httperr.BadRequest(c, be.Code, "Consulta inválida.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	h.availability.Set(c.Request.Context(), dateStr, uint(serviceID), slots)

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
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
		// Corrida perdida também invalida o cache: o próximo GET precisa
		// refletir o estado que causou a rejeição
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			h.availability.InvalidateDate(c.Request.Context(), req.Date)
		}
		mapBookingErrors(c, err)
		return
	}

	h.availability.InvalidateDate(c.Request.Context(), ap.Date)

	httpresp.Created(c, ap)
}

////////////////////////////////////////////////////////
// MY APPOINTMENTS (por telefone) + CANCEL (por código)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Telefone obrigatório.")
		return
	}

	out, err := h.listByPhoneUC.Execute(c.Request.Context(), phone)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) CancelByCode(c *gin.Context) {
	code := c.Param("code")
	phone := c.Query("phone")

	if code == "" || phone == "" {
		httperr.BadRequest(c, "missing_params", "Código e telefone obrigatórios.")
		return
	}

	ap, err := h.cancelByCodeUC.Execute(c.Request.Context(), code, phone)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "cancel_failed", "Erro ao cancelar agendamento.")
		return
	}

	h.availability.InvalidateDate(c.Request.Context(), ap.Date)

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
