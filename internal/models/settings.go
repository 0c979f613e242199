package models

import "time"

// Linha única com as configurações do negócio
type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopName    string `gorm:"size:100" json:"shop_name"`
	SlotStepMin int    `gorm:"default:30" json:"slot_step_min"`

	// YYYY-MM-DD do último reset semanal (idempotência do reset)
	LastResetDate string `gorm:"size:10" json:"last_reset_date"`

	LogoURL string `gorm:"size:255" json:"logo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
