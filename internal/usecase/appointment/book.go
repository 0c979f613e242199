package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	"github.com/BruksfildServices01/barberbook-api/internal/clock"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	settingsdomain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
	"github.com/BruksfildServices01/barberbook-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	CustomerName  string
	CustomerPhone string

	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

// Book é o único caminho de criação de agendamento. Protocolo:
// releitura autoritativa da data na hora do commit, detector de conflito
// sobre essa leitura fresca e insert protegido pelo índice único
// (date, time) — uma corrida perdida vira slot_taken, nunca dois
// vencedores. slot_taken é resultado esperado, não exceção.
type Book struct {
	repo     domain.Repository
	settings settingsdomain.Repository
	clk      clock.Clock
	audit    *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	settings settingsdomain.Repository,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
) *Book {
	return &Book{
		repo:     repo,
		settings: settings,
		clk:      clk,
		audit:    auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora válidas — e canônicas
	// --------------------------------------------------
	date, err := time.Parse(schedule.DateLayout, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	startMin, err := schedule.ParseHM(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	// O índice único compara strings cruas: "9:30" e "09:30" precisam
	// virar a mesma chave antes do insert, senão a corrida tem dois
	// vencedores.
	dateStr := date.Format(schedule.DateLayout)
	timeStr := schedule.FormatHM(startMin)

	// --------------------------------------------------
	// 2️⃣ Serviço (duração e preço copiados por valor)
	// --------------------------------------------------
	// service_not_found chega como erro de negócio do repositório;
	// falha de I/O sobe como veio, para o caller decidir retry
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active || service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	// --------------------------------------------------
	// 3️⃣ Expediente do dia
	// --------------------------------------------------
	biz, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	day := biz.Week.Day(int(date.Weekday()))
	if !day.IsWorking {
		return nil, httperr.ErrBusiness(httperr.CodeDayClosed)
	}

	if !schedule.WithinShifts(day, startMin, service.DurationMin) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	// --------------------------------------------------
	// 4️⃣ Nunca no passado
	// --------------------------------------------------
	now := uc.clk.Now()
	today := now.Format(schedule.DateLayout)
	if dateStr < today {
		return nil, httperr.ErrBusiness(httperr.CodeTimeInPast)
	}
	if dateStr == today && startMin < now.Hour()*60+now.Minute() {
		return nil, httperr.ErrBusiness(httperr.CodeTimeInPast)
	}

	// --------------------------------------------------
	// 5️⃣ Releitura fresca + detector de conflito
	// --------------------------------------------------
	existing, err := uc.repo.ListAppointmentsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	if !domain.IsAvailable(dateStr, timeStr, service.DurationMin, existing) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 6️⃣ Insert protegido pelo índice único (date, time)
	// --------------------------------------------------
	ap := &models.Appointment{
		Code:               uuid.NewString(),
		CustomerName:       in.CustomerName,
		CustomerPhone:      validators.NormalizePhone(in.CustomerPhone),
		Date:               dateStr,
		Time:               timeStr,
		ServiceName:        service.Name,
		ServiceDurationMin: service.DurationMin,
		Price:              service.Price,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
