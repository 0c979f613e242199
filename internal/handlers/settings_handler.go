package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
	"github.com/BruksfildServices01/barberbook-api/internal/middleware"
	"github.com/BruksfildServices01/barberbook-api/internal/storage"
	ucSettings "github.com/BruksfildServices01/barberbook-api/internal/usecase/settings"
)

const logoMaxUploadBytes = 5 << 20 // 5 MiB

type SettingsHandler struct {
	getUC            *ucSettings.Get
	updateUC         *ucSettings.Update
	updateScheduleUC *ucSettings.UpdateSchedule
	updateLogoUC     *ucSettings.UpdateLogo
	uploader         *storage.Uploader
	availability     AvailabilityCache
}

func NewSettingsHandler(
	getUC *ucSettings.Get,
	updateUC *ucSettings.Update,
	updateScheduleUC *ucSettings.UpdateSchedule,
	updateLogoUC *ucSettings.UpdateLogo,
	uploader *storage.Uploader,
	availability AvailabilityCache,
) *SettingsHandler {
	return &SettingsHandler{
		getUC:            getUC,
		updateUC:         updateUC,
		updateScheduleUC: updateScheduleUC,
		updateLogoUC:     updateLogoUC,
		uploader:         uploader,
		availability:     availability,
	}
}

// ======================================================
// GET /api/me/settings
// ======================================================

// A leitura pode disparar o reset semanal; schedule_reset avisa a UI.
func (h *SettingsHandler) Get(c *gin.Context) {
	out, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "settings_failed", "Erro ao carregar configurações.")
		return
	}

	// Reset fecha a semana toda; slots cacheados viram mentira
	if out.ResetApplied {
		h.availability.InvalidateAll(c.Request.Context())
	}

	c.JSON(http.StatusOK, gin.H{
		"settings":       out.Business,
		"schedule_reset": out.ResetApplied,
	})
}

// ======================================================
// PUT /api/me/settings
// ======================================================

type SettingsUpdateRequest struct {
	ShopName    string `json:"shop_name" binding:"required"`
	SlotStepMin int    `json:"slot_step_min" binding:"required,min=5,max=120"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	biz, err := h.updateUC.Execute(c.Request.Context(), userID, ucSettings.UpdateInput{
		ShopName:    req.ShopName,
		SlotStepMin: req.SlotStepMin,
	})
	if err != nil {
		httperr.Internal(c, "settings_update_failed", "Erro ao salvar configurações.")
		return
	}

	// Passo novo = grade nova em todas as datas
	h.availability.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, biz)
}

// ======================================================
// PUT /api/me/settings/schedule
// ======================================================

type ScheduleUpdateRequest struct {
	Days []ucSettings.DayConfig `json:"days" binding:"required"`
}

func (h *SettingsHandler) UpdateSchedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	biz, err := h.updateScheduleUC.Execute(
		c.Request.Context(),
		userID,
		ucSettings.UpdateScheduleInput{Days: req.Days},
	)
	if err != nil {
		var be httperr.BusinessError
		if ok := asBusiness(err, &be); ok {
			httperr.BadRequest(c, be.Code, "Agenda inválida.")
			return
		}
		httperr.Internal(c, "schedule_update_failed", "Erro ao salvar agenda.")
		return
	}

	h.availability.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, biz)
}

// ======================================================
// POST /api/me/settings/logo
// ======================================================

func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'logo'.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, logoMaxUploadBytes+1))
	if err != nil || len(data) == 0 {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}
	if len(data) > logoMaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Logo acima de 5MB.")
		return
	}

	url, err := h.uploader.UploadLogo(c.Request.Context(), data)
	if err != nil {
		httperr.BadRequest(c, "upload_failed", "Não foi possível processar a imagem.")
		return
	}

	biz, err := h.updateLogoUC.Execute(c.Request.Context(), userID, url)
	if err != nil {
		httperr.Internal(c, "settings_update_failed", "Erro ao salvar configurações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": biz.LogoURL})
}
