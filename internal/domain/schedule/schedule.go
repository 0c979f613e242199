package schedule

// ===============================
// Agenda semanal recorrente
// ===============================

type TimeRange struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

type DaySchedule struct {
	IsWorking bool        `json:"is_working"`
	Shifts    []TimeRange `json:"shifts"`
}

// 0=domingo .. 6=sábado, sempre os 7 dias presentes
type WeeklySchedule [7]DaySchedule

// Day nunca falha: índice fora de 0..6 vira dia fechado.
func (w WeeklySchedule) Day(weekday int) DaySchedule {
	if weekday < 0 || weekday > 6 {
		return DaySchedule{}
	}
	return w[weekday]
}

// WithinShifts valida se [startMin, startMin+durationMin) cabe inteiro
// em algum turno do dia. Turnos fora de ordem ou sobrepostos são aceitos.
func WithinShifts(day DaySchedule, startMin, durationMin int) bool {
	if !day.IsWorking || durationMin <= 0 {
		return false
	}

	end := startMin + durationMin

	for _, shift := range day.Shifts {
		shiftStart, err := ParseHM(shift.Start)
		if err != nil {
			continue
		}
		shiftEnd, err := ParseHM(shift.End)
		if err != nil {
			continue
		}

		if startMin >= shiftStart && end <= shiftEnd {
			return true
		}
	}

	return false
}
