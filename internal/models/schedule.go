package models

import "time"

// Um registro por dia da semana (0=domingo .. 6=sábado)
type WorkingDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday   int  `gorm:"uniqueIndex;not null" json:"weekday"`
	IsWorking bool `json:"is_working"`

	// Turnos são preservados mesmo com o dia desligado
	Shifts []Shift `gorm:"constraint:OnDelete:CASCADE;" json:"shifts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Shift struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	WorkingDayID uint `gorm:"index" json:"working_day_id"`

	StartTime string `gorm:"size:5" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:MM
	Position  int    `json:"position"`
}
