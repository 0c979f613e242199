package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberbook-api/internal/clock"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	settingsdomain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
	"github.com/BruksfildServices01/barberbook-api/internal/domain/slots"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
)

type GetAvailability struct {
	repo     domain.Repository
	settings settingsdomain.Repository
	clk      clock.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	settings settingsdomain.Repository,
	clk clock.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		settings: settings,
		clk:      clk,
	}
}

// Execute devolve os horários livres da data para o serviço pedido.
// Lista vazia é resultado válido, não erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	date, err := time.Parse(schedule.DateLayout, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	// Mesma forma canônica que o booking grava
	dateStr := date.Format(schedule.DateLayout)

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	biz, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	day := biz.Week.Day(int(date.Weekday()))

	candidates := slots.Generate(
		dateStr,
		day,
		service.DurationMin,
		biz.SlotStepMin,
		uc.clk.Now(),
	)
	if len(candidates) == 0 {
		return []domain.TimeSlot{}, nil
	}

	existing, err := uc.repo.ListAppointmentsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	free := make([]domain.TimeSlot, 0, len(candidates))
	for _, start := range candidates {
		if !domain.IsAvailable(dateStr, start, service.DurationMin, existing) {
			continue
		}

		startMin, _ := schedule.ParseHM(start)
		free = append(free, domain.TimeSlot{
			Start: start,
			End:   schedule.FormatHM(startMin + service.DurationMin),
		})
	}

	return free, nil
}
