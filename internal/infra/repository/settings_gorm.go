package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

// Settings moram em duas tabelas: a linha única de settings e os 7
// working_days com seus shifts. A normalização (merge com defaults) roda
// aqui, na borda do store, nunca nos call sites.
type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(ctx context.Context) (*domain.Business, error) {

	var row models.Settings
	err := r.db.WithContext(ctx).First(&row).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	biz := domain.Business{
		ShopName:      row.ShopName,
		SlotStepMin:   row.SlotStepMin,
		LastResetDate: row.LastResetDate,
		LogoURL:       row.LogoURL,
	}

	var days []models.WorkingDay
	if err := r.db.WithContext(ctx).
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&days).Error; err != nil {
		return nil, err
	}

	// Dias ausentes (documento legado) ficam no zero value = fechado;
	// Normalize devolve os turnos default para eles.
	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			continue
		}
		shifts := make([]schedule.TimeRange, 0, len(d.Shifts))
		for _, s := range d.Shifts {
			shifts = append(shifts, schedule.TimeRange{
				Start: s.StartTime,
				End:   s.EndTime,
			})
		}
		biz.Week[d.Weekday] = schedule.DaySchedule{
			IsWorking: d.IsWorking,
			Shifts:    shifts,
		}
	}

	normalized := domain.Normalize(biz)
	return &normalized, nil
}

func (r *SettingsGormRepository) Put(ctx context.Context, b *domain.Business) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var row models.Settings
		err := tx.First(&row).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		row.ShopName = b.ShopName
		row.SlotStepMin = b.SlotStepMin
		row.LastResetDate = b.LastResetDate
		row.LogoURL = b.LogoURL

		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		// Agenda regravada por inteiro (last-writer-wins)
		if err := tx.Where("1 = 1").Delete(&models.Shift{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.WorkingDay{}).Error; err != nil {
			return err
		}

		for weekday := 0; weekday < 7; weekday++ {
			day := b.Week[weekday]

			wd := models.WorkingDay{
				Weekday:   weekday,
				IsWorking: day.IsWorking,
			}
			if err := tx.Create(&wd).Error; err != nil {
				return err
			}

			shifts := append([]schedule.TimeRange(nil), day.Shifts...)
			sort.SliceStable(shifts, func(i, j int) bool {
				return shifts[i].Start < shifts[j].Start
			})

			for pos, s := range shifts {
				shift := models.Shift{
					WorkingDayID: wd.ID,
					StartTime:    s.Start,
					EndTime:      s.End,
					Position:     pos,
				}
				if err := tx.Create(&shift).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*SettingsGormRepository)(nil)
