package settings

import (
	"context"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
)

type DayConfig struct {
	Weekday   int                  `json:"weekday" binding:"min=0,max=6"`
	IsWorking bool                 `json:"is_working"`
	Shifts    []schedule.TimeRange `json:"shifts"`
}

type UpdateScheduleInput struct {
	Days []DayConfig
}

type UpdateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	userID uint,
	in UpdateScheduleInput,
) (*domain.Business, error) {

	biz, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range in.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, httperr.ErrBusiness("invalid_weekday")
		}

		// Dia aberto exige pelo menos um turno válido (start < end).
		// O gerador tolera lixo, mas a UI não deve gravar lixo.
		if d.IsWorking {
			if len(d.Shifts) == 0 {
				return nil, httperr.ErrBusiness("missing_shifts")
			}
			for _, s := range d.Shifts {
				start, err := schedule.ParseHM(s.Start)
				if err != nil {
					return nil, httperr.ErrBusiness("invalid_shift_range")
				}
				end, err := schedule.ParseHM(s.End)
				if err != nil || end <= start {
					return nil, httperr.ErrBusiness("invalid_shift_range")
				}
			}
		}

		day := schedule.DaySchedule{
			IsWorking: d.IsWorking,
			Shifts:    d.Shifts,
		}

		// Desligar um dia sem mandar turnos preserva os turnos salvos
		if len(day.Shifts) == 0 {
			day.Shifts = biz.Week[d.Weekday].Shifts
		}

		biz.Week[d.Weekday] = day
	}

	if err := uc.repo.Put(ctx, biz); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "schedule_updated",
		Entity: "settings",
	})

	return biz, nil
}
