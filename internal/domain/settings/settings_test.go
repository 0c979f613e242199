package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
)

func TestDefaults(t *testing.T) {
	def := Defaults()

	assert.Equal(t, DefaultShopName, def.ShopName)
	assert.Equal(t, DefaultSlotStepMin, def.SlotStepMin)

	// Sexta curta, sábado fechado mas com turnos salvos
	assert.Equal(t, "08:30", def.Week[5].Shifts[0].Start)
	assert.Equal(t, "14:00", def.Week[5].Shifts[0].End)
	assert.False(t, def.Week[6].IsWorking)
	assert.NotEmpty(t, def.Week[6].Shifts)
}

func TestNormalizeEmptyDocument(t *testing.T) {
	got := Normalize(Business{})

	assert.Equal(t, DefaultShopName, got.ShopName)
	assert.Equal(t, DefaultSlotStepMin, got.SlotStepMin)

	// Documento vazio vira a grade default inteira (dias fechados com
	// turnos default prontos para reabrir)
	for wd := 0; wd < 7; wd++ {
		assert.NotEmpty(t, got.Week[wd].Shifts, "weekday %d", wd)
	}
}

func TestNormalizePreservesExisting(t *testing.T) {
	saved := Business{
		ShopName:    "המספרה של יוסי",
		SlotStepMin: 15,
	}
	saved.Week[2] = schedule.DaySchedule{
		IsWorking: true,
		Shifts:    []schedule.TimeRange{{Start: "11:00", End: "15:00"}},
	}

	got := Normalize(saved)

	assert.Equal(t, "המספרה של יוסי", got.ShopName)
	assert.Equal(t, 15, got.SlotStepMin)
	assert.Equal(t, "11:00", got.Week[2].Shifts[0].Start)

	// Campo a campo: só o que falta herda default
	assert.NotEmpty(t, got.Week[0].Shifts)
}

func TestNormalizeBadStep(t *testing.T) {
	got := Normalize(Business{ShopName: "x", SlotStepMin: -5})
	assert.Equal(t, DefaultSlotStepMin, got.SlotStepMin)
}
