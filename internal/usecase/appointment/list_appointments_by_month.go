package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/dto"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	yearMonth string, // YYYY-MM
) ([]dto.AppointmentListDTO, error) {

	parsed, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}
	// Agendamentos são gravados na forma canônica
	yearMonth = parsed.Format("2006-01")

	appointments, err := uc.repo.ListAppointmentsForMonth(ctx, yearMonth)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap))
	}

	return out, nil
}
