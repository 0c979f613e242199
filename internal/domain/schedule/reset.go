package schedule

import "time"

const DateLayout = "2006-01-02"

// ===============================
// Reset semanal
// ===============================
//
// A agenda recorrente fecha sozinha no fim da semana (sexta 20:00 até o fim
// do sábado) para o dono reabrir cada dia de propósito. O carimbo
// lastResetDate garante no máximo um reset por janela, não importa quantas
// vezes a checagem rode.

func ShouldReset(now time.Time, lastResetDate string) bool {
	inWindow := false
	switch now.Weekday() {
	case time.Friday:
		inWindow = now.Hour() >= 20
	case time.Saturday:
		inWindow = true
	}
	if !inWindow {
		return false
	}

	return now.Format(DateLayout) != lastResetDate
}

// ApplyReset desliga todos os dias preservando os turnos salvos.
func ApplyReset(week WeeklySchedule) WeeklySchedule {
	for i := range week {
		week[i].IsWorking = false
	}
	return week
}
