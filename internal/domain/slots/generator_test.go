package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
)

var farFromDate = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func workingDay(shifts ...schedule.TimeRange) schedule.DaySchedule {
	return schedule.DaySchedule{IsWorking: true, Shifts: shifts}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		day      schedule.DaySchedule
		duration int
		step     int
		now      time.Time
		want     []string
	}{
		{
			// Turno 09:00–12:00, passo 15, serviço 30: último slot é 11:30
			// (11:30+30=12:00 cabe; 11:45+30 estoura)
			name:     "serviço precisa caber inteiro no turno",
			date:     "2024-03-05",
			day:      workingDay(schedule.TimeRange{Start: "09:00", End: "12:00"}),
			duration: 30,
			step:     15,
			now:      farFromDate,
			want: []string{
				"09:00", "09:15", "09:30", "09:45",
				"10:00", "10:15", "10:30", "10:45",
				"11:00", "11:15", "11:30",
			},
		},
		{
			name:     "dia fechado nunca gera, mesmo com turnos",
			date:     "2024-03-05",
			day:      schedule.DaySchedule{IsWorking: false, Shifts: []schedule.TimeRange{{Start: "09:00", End: "12:00"}}},
			duration: 30,
			step:     15,
			now:      farFromDate,
			want:     nil,
		},
		{
			name: "turnos fora de ordem e sobrepostos = união ordenada sem duplicata",
			date: "2024-03-05",
			day: workingDay(
				schedule.TimeRange{Start: "10:00", End: "11:00"},
				schedule.TimeRange{Start: "09:00", End: "10:30"},
			),
			duration: 30,
			step:     30,
			now:      farFromDate,
			want:     []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "turno degenerado (end <= start) não entra em loop",
			date:     "2024-03-05",
			day:      workingDay(schedule.TimeRange{Start: "12:00", End: "09:00"}),
			duration: 30,
			step:     15,
			now:      farFromDate,
			want:     nil,
		},
		{
			name:     "passo não positivo não entra em loop",
			date:     "2024-03-05",
			day:      workingDay(schedule.TimeRange{Start: "09:00", End: "12:00"}),
			duration: 30,
			step:     0,
			now:      farFromDate,
			want:     nil,
		},
		{
			name:     "duração não positiva",
			date:     "2024-03-05",
			day:      workingDay(schedule.TimeRange{Start: "09:00", End: "12:00"}),
			duration: 0,
			step:     15,
			now:      farFromDate,
			want:     nil,
		},
		{
			name:     "hoje descarta horários que já passaram",
			date:     "2024-03-05",
			day:      workingDay(schedule.TimeRange{Start: "09:00", End: "11:00"}),
			duration: 30,
			step:     30,
			now:      time.Date(2024, 3, 5, 9, 40, 0, 0, time.UTC),
			want:     []string{"10:00", "10:30"},
		},
		{
			name:     "data futura nunca é filtrada por relógio",
			date:     "2024-03-06",
			day:      workingDay(schedule.TimeRange{Start: "09:00", End: "10:00"}),
			duration: 30,
			step:     30,
			now:      time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC),
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "turno com horário malformado é ignorado",
			date:     "2024-03-05",
			day:      workingDay(schedule.TimeRange{Start: "ab:cd", End: "12:00"}),
			duration: 30,
			step:     15,
			now:      farFromDate,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.date, tt.day, tt.duration, tt.step, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Turnos sobrepostos/desordenados produzem o mesmo conjunto que a forma
// equivalente já mesclada e ordenada.
func TestGenerateEquivalentShiftForms(t *testing.T) {
	messy := workingDay(
		schedule.TimeRange{Start: "10:00", End: "13:00"},
		schedule.TimeRange{Start: "09:00", End: "11:00"},
		schedule.TimeRange{Start: "09:30", End: "10:30"},
	)
	merged := workingDay(schedule.TimeRange{Start: "09:00", End: "13:00"})

	a := Generate("2024-03-05", messy, 30, 15, farFromDate)
	b := Generate("2024-03-05", merged, 30, 15, farFromDate)

	assert.Equal(t, b, a)
}
