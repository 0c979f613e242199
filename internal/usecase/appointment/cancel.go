package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

// Agendamento é imutável: cancelar remove o registro e libera o slot
// (cancel-and-rebook, sem edição).
type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
