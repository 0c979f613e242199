package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barberbook-api/internal/dto"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	parsed, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}
	// Agendamentos são gravados na forma canônica
	date = parsed.Format(schedule.DateLayout)

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap))
	}

	return out, nil
}
