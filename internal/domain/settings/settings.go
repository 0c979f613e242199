package settings

import (
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
)

// Business é a visão normalizada das configurações da loja.
type Business struct {
	ShopName      string                  `json:"shop_name"`
	SlotStepMin   int                     `json:"slot_step_min"`
	LastResetDate string                  `json:"last_reset_date"`
	LogoURL       string                  `json:"logo_url"`
	Week          schedule.WeeklySchedule `json:"week"`
}

const (
	DefaultShopName    = "BarberBook Pro"
	DefaultSlotStepMin = 30
)

func defaultDay(start, end string) schedule.DaySchedule {
	return schedule.DaySchedule{
		IsWorking: true,
		Shifts:    []schedule.TimeRange{{Start: start, End: end}},
	}
}

// Defaults reproduz a agenda padrão da loja: domingo a quinta em horário
// cheio, sexta curta, sábado fechado (turnos salvos para reabrir).
func Defaults() Business {
	return Business{
		ShopName:    DefaultShopName,
		SlotStepMin: DefaultSlotStepMin,
		Week: schedule.WeeklySchedule{
			0: defaultDay("09:00", "19:00"),
			1: defaultDay("09:00", "19:00"),
			2: defaultDay("09:00", "19:00"),
			3: defaultDay("09:00", "19:00"),
			4: defaultDay("09:00", "20:00"),
			5: defaultDay("08:30", "14:00"),
			6: {IsWorking: false, Shifts: []schedule.TimeRange{{Start: "09:00", End: "17:00"}}},
		},
	}
}

// Normalize mescla um documento persistido (possivelmente antigo ou
// incompleto) com os defaults, campo a campo. Contrato de compatibilidade:
// um campo novo em versão futura nunca corrompe configuração existente.
// Roda uma única vez, na borda do repositório de settings.
func Normalize(b Business) Business {
	def := Defaults()

	if b.ShopName == "" {
		b.ShopName = def.ShopName
	}
	if b.SlotStepMin <= 0 {
		b.SlotStepMin = def.SlotStepMin
	}

	// Dia sem turnos salvos herda os turnos default (fechado por padrão,
	// nunca se descarta a configuração que já existe)
	for i := range b.Week {
		if len(b.Week[i].Shifts) == 0 && !b.Week[i].IsWorking {
			b.Week[i].Shifts = def.Week[i].Shifts
		}
	}

	return b
}
