package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberbook-api/internal/config"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Settings{},
		&models.WorkingDay{},
		&models.Shift{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedServices(db)

	return db
}

// Catálogo inicial; o dono edita depois pelo painel.
func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []models.Service{
		{Name: "תספורת גברים", DurationMin: 30, Price: 60, Active: true},
		{Name: "תספורת + זקן", DurationMin: 45, Price: 80, Active: true},
		{Name: "סידור זקן", DurationMin: 15, Price: 30, Active: true},
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}
