package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	"github.com/BruksfildServices01/barberbook-api/internal/cache"
	"github.com/BruksfildServices01/barberbook-api/internal/clock"
	"github.com/BruksfildServices01/barberbook-api/internal/config"
	"github.com/BruksfildServices01/barberbook-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barberbook-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberbook-api/internal/middleware"
	"github.com/BruksfildServices01/barberbook-api/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barberbook-api/internal/usecase/appointment"
	ucSettings "github.com/BruksfildServices01/barberbook-api/internal/usecase/settings"
)

type Deps struct {
	DB    *gorm.DB
	Redis *redis.Client
	Cfg   *config.Config
}

// SettingsGetUC e AvailabilityCache ficam expostos para o cron do reset
// semanal reusar os mesmos singletons das rotas.
type Wired struct {
	SettingsGetUC     *ucSettings.Get
	AvailabilityCache *cache.Availability
}

func RegisterRoutes(r *gin.Engine, d Deps) Wired {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Cfg.ClientOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	settingsRepo := infraRepo.NewSettingsGormRepository(d.DB)

	clk := clock.NewSystem(d.Cfg.Timezone)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.NewAvailability(d.Redis)
	uploader := storage.NewUploader(d.Cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBook(
		appointmentRepo,
		settingsRepo,
		clk,
		auditDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		settingsRepo,
		clk,
	)

	cancelUC := ucAppointment.NewCancel(appointmentRepo, auditDispatcher)
	cancelByCodeUC := ucAppointment.NewCancelByCode(appointmentRepo, auditDispatcher)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)
	listByPhoneUC := ucAppointment.NewListAppointmentsByPhone(appointmentRepo)

	settingsGetUC := ucSettings.NewGet(settingsRepo, clk, auditDispatcher)
	settingsUpdateUC := ucSettings.NewUpdate(settingsRepo, auditDispatcher)
	scheduleUpdateUC := ucSettings.NewUpdateSchedule(settingsRepo, auditDispatcher)
	logoUpdateUC := ucSettings.NewUpdateLogo(settingsRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Cfg)
	meHandler := handlers.NewMeHandler(d.DB)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	settingsHandler := handlers.NewSettingsHandler(
		settingsGetUC,
		settingsUpdateUC,
		scheduleUpdateUC,
		logoUpdateUC,
		uploader,
		availabilityCache,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		listByDateUC,
		listByMonthUC,
		availabilityCache,
	)

	publicHandler := handlers.NewPublicHandler(
		d.DB,
		settingsGetUC,
		availabilityUC,
		bookUC,
		listByPhoneUC,
		cancelByCodeUC,
		availabilityCache,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/shop", publicHandler.GetShop)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/appointments", publicHandler.ListByPhone)
			publicAPI.DELETE("/appointments/:code", publicHandler.CancelByCode)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (dono)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/settings", settingsHandler.Get)
			secured.PUT("/me/settings", settingsHandler.Update)
			secured.PUT("/me/settings/schedule", settingsHandler.UpdateSchedule)
			secured.POST("/me/settings/logo", settingsHandler.UploadLogo)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}

	return Wired{
		SettingsGetUC:     settingsGetUC,
		AvailabilityCache: availabilityCache,
	}
}
