package models

import "time"

// Agendamento imutável: nasce pelo use case de booking e só sai por cancelamento.
// O índice único em (date, time) é a garantia final contra double-booking.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código público usado pelo cliente para cancelar sem login
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customer_phone"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_appointments_date_time" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null;uniqueIndex:idx_appointments_date_time" json:"time"`  // HH:MM

	// Copiados do serviço no momento da reserva; o serviço pode mudar depois
	ServiceName        string  `gorm:"size:100" json:"service_name"`
	ServiceDurationMin int     `json:"service_duration_min"`
	Price              float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
