package slots

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
)

// Generate enumera os horários de início candidatos para uma data.
//
// O passo (stepMin) é uma grade fixa, independente da duração do serviço:
// serviços de tamanhos diferentes começam na mesma grade. Um candidato só
// vale se o serviço inteiro couber no turno (candidato+duração <= fim).
// Turnos podem vir fora de ordem ou sobrepostos; o resultado final é a
// união ordenada e sem duplicatas. Função pura: "agora" vem injetado.
func Generate(
	date string, // YYYY-MM-DD
	day schedule.DaySchedule,
	durationMin int,
	stepMin int,
	now time.Time,
) []string {

	if !day.IsWorking || durationMin <= 0 || stepMin <= 0 {
		return nil
	}

	today := now.Format(schedule.DateLayout)
	nowMin := now.Hour()*60 + now.Minute()

	seen := make(map[int]bool)

	for _, shift := range day.Shifts {
		start, err := schedule.ParseHM(shift.Start)
		if err != nil {
			continue
		}
		end, err := schedule.ParseHM(shift.End)
		if err != nil {
			continue
		}

		// Turno degenerado (end <= start) não gera nada
		for cur := start; cur+durationMin <= end; cur += stepMin {
			// Hoje: descarta horários que já passaram. Datas futuras
			// nunca são filtradas por relógio.
			if date == today && cur < nowMin {
				continue
			}
			seen[cur] = true
		}
	}

	if len(seen) == 0 {
		return nil
	}

	minutes := make([]int, 0, len(seen))
	for m := range seen {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	out := make([]string, len(minutes))
	for i, m := range minutes {
		out[i] = schedule.FormatHM(m)
	}
	return out
}
