package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

func TestIsAvailable(t *testing.T) {
	existing := []models.Appointment{
		{Date: "2024-03-05", Time: "10:00", ServiceDurationMin: 30},
	}

	tests := []struct {
		name     string
		time     string
		duration int
		want     bool
	}{
		// Sobreposição de intervalo, não igualdade: 09:45–10:15 invade
		// 10:00–10:30 mesmo sem começar junto
		{"encosta por trás", "09:45", 30, false},
		{"mesmo horário", "10:00", 30, false},
		{"começa dentro", "10:15", 30, false},
		{"termina exatamente no início", "09:30", 30, true},
		{"curto antes do conflito", "09:30", 15, true},
		{"começa exatamente no fim", "10:30", 30, true},
		{"longo engolindo o existente", "09:00", 120, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAvailable("2024-03-05", tt.time, tt.duration, existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAvailableOtherDateIgnored(t *testing.T) {
	existing := []models.Appointment{
		{Date: "2024-03-06", Time: "10:00", ServiceDurationMin: 30},
	}

	assert.True(t, IsAvailable("2024-03-05", "10:00", 30, existing))
}

func TestIsAvailableLegacyDurationFallback(t *testing.T) {
	// Registro antigo sem duração gravada conta como 30 minutos
	existing := []models.Appointment{
		{Date: "2024-03-05", Time: "10:00"},
	}

	assert.False(t, IsAvailable("2024-03-05", "10:15", 15, existing))
	assert.True(t, IsAvailable("2024-03-05", "10:30", 15, existing))
}

func TestIsAvailableMalformedCandidate(t *testing.T) {
	// Candidato malformado nunca é aceito
	assert.False(t, IsAvailable("2024-03-05", "xx:yy", 30, nil))
}

// Propriedade: disponível ⇔ não existe sobreposição com nenhum agendamento.
func TestIsAvailableProperty(t *testing.T) {
	existing := []models.Appointment{
		{Date: "2024-03-05", Time: "09:00", ServiceDurationMin: 45},
		{Date: "2024-03-05", Time: "11:30", ServiceDurationMin: 15},
		{Date: "2024-03-05", Time: "14:00", ServiceDurationMin: 60},
	}

	overlapsAny := func(startMin, dur int) bool {
		for _, ap := range existing {
			apStart, err := schedule.ParseHM(ap.Time)
			if err != nil {
				t.Fatalf("bad time %q", ap.Time)
			}
			if startMin < apStart+ap.ServiceDurationMin && startMin+dur > apStart {
				return true
			}
		}
		return false
	}

	for startMin := 8 * 60; startMin <= 16*60; startMin += 5 {
		for _, dur := range []int{15, 30, 45, 90} {
			hm := schedule.FormatHM(startMin)
			got := IsAvailable("2024-03-05", hm, dur, existing)
			assert.Equal(t, !overlapsAny(startMin, dur), got, "start=%s dur=%d", hm, dur)
		}
	}
}
