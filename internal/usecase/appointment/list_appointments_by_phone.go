package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/dto"
	"github.com/BruksfildServices01/barberbook-api/internal/validators"
)

// "Meus agendamentos" do cliente, sem login: busca por telefone.
type ListAppointmentsByPhone struct {
	repo domain.Repository
}

func NewListAppointmentsByPhone(
	repo domain.Repository,
) *ListAppointmentsByPhone {
	return &ListAppointmentsByPhone{
		repo: repo,
	}
}

func (uc *ListAppointmentsByPhone) Execute(
	ctx context.Context,
	phone string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPhone(
		ctx,
		validators.NormalizePhone(phone),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap))
	}

	return out, nil
}
