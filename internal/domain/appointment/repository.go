package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

type Repository interface {
	// -------- Service --------

	// GetService devolve service_not_found (erro de negócio) quando o
	// serviço não existe; qualquer outro erro é falha de I/O.
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment insere dentro de uma transação; violação do índice
	// único (date, time) volta como erro de negócio slot_taken, nunca como
	// double-booking silencioso.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	ListAppointmentsForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForMonth(
		ctx context.Context,
		yearMonth string, // YYYY-MM
	) ([]models.Appointment, error)

	ListAppointmentsForPhone(
		ctx context.Context,
		phone string,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentByCode(
		ctx context.Context,
		code string,
	) (*models.Appointment, error)

	// -------- Appointment (cancel) --------
	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
