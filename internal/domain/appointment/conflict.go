package appointment

import (
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

// Registros antigos podem não ter duração gravada
const DefaultDurationMin = 30

// IsAvailable decide se o candidato [start, start+duration) está livre na
// data, contra todos os agendamentos existentes. Teste de sobreposição de
// intervalos meio-abertos, não igualdade de horário: serviços de durações
// diferentes conflitam mesmo sem começar juntos.
func IsAvailable(
	date string,
	startTime string,
	durationMin int,
	existing []models.Appointment,
) bool {

	candStart, err := schedule.ParseHM(startTime)
	if err != nil {
		return false
	}
	candEnd := candStart + durationMin

	for _, ap := range existing {
		if ap.Date != date {
			continue
		}

		apStart, err := schedule.ParseHM(ap.Time)
		if err != nil {
			continue
		}

		dur := ap.ServiceDurationMin
		if dur <= 0 {
			dur = DefaultDurationMin
		}
		apEnd := apStart + dur

		if candStart < apEnd && candEnd > apStart {
			return false
		}
	}

	return true
}
