package clock

import (
	"time"

	"github.com/BruksfildServices01/barberbook-api/internal/timezone"
)

// Clock é injetado em todo lugar que decide algo por hora de parede
// (geração de slots, reset semanal), nunca lido ad hoc.
type Clock interface {
	Now() time.Time
}

type System struct {
	loc *time.Location
}

func NewSystem(tz string) System {
	return System{loc: timezone.Location(tz)}
}

func (s System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Fixed devolve sempre o mesmo instante; usado em testes.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
