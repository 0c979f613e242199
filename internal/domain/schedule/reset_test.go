package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldReset(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		lastReset string
		want      bool
	}{
		{
			name: "sexta antes das 20h",
			now:  time.Date(2024, 3, 8, 19, 59, 0, 0, time.UTC), // Friday
			want: false,
		},
		{
			name: "sexta 20h em ponto",
			now:  time.Date(2024, 3, 8, 20, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "sábado de manhã",
			now:  time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "domingo fora da janela",
			now:  time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "quarta-feira qualquer",
			now:  time.Date(2024, 3, 6, 21, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			// Cenário do carimbo: reset de sexta não bloqueia o sábado
			// (datas diferentes), mas o mesmo sábado não reseta duas vezes
			name:      "sábado após reset de sexta",
			now:       time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC),
			lastReset: "2024-03-08",
			want:      true,
		},
		{
			name:      "segundo check no mesmo sábado",
			now:       time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC),
			lastReset: "2024-03-09",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldReset(tt.now, tt.lastReset))
		})
	}
}

func TestApplyReset(t *testing.T) {
	var week WeeklySchedule
	for i := range week {
		week[i] = DaySchedule{
			IsWorking: true,
			Shifts:    []TimeRange{{Start: "09:00", End: "19:00"}},
		}
	}

	reset := ApplyReset(week)

	for i := range reset {
		assert.False(t, reset[i].IsWorking, "dia %d deveria fechar", i)
		// Turnos sobrevivem ao reset para reabrir depois
		assert.Equal(t, week[i].Shifts, reset[i].Shifts)
	}

	// Original não é mutado (value semantics)
	assert.True(t, week[0].IsWorking)
}
