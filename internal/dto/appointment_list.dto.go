package dto

import (
	"time"

	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Code          string    `json:"code"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	ServiceName   string    `json:"service_name"`
	DurationMin   int       `json:"duration_min"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		Code:          ap.Code,
		Date:          ap.Date,
		Time:          ap.Time,
		CustomerName:  ap.CustomerName,
		CustomerPhone: ap.CustomerPhone,
		ServiceName:   ap.ServiceName,
		DurationMin:   ap.ServiceDurationMin,
		Price:         ap.Price,
		CreatedAt:     ap.CreatedAt,
	}
}
