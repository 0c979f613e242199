package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
	"github.com/BruksfildServices01/barberbook-api/internal/validators"
)

// Cancelamento público: o cliente apresenta o código recebido na reserva
// junto com o próprio telefone. Telefone errado = não encontrado, para não
// vazar existência de agendamento alheio.
type CancelByCode struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByCode(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CancelByCode {
	return &CancelByCode{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CancelByCode) Execute(
	ctx context.Context,
	code string,
	phone string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByCode(ctx, code)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if ap.CustomerPhone != validators.NormalizePhone(phone) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled_by_client",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
