package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
)

// Cache de disponibilidade por (data, serviço). Só a consulta pública lê
// daqui; o booking sempre relê o store (a releitura fresca é o protocolo).
// Qualquer mutação de agendamento invalida a data inteira.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{
		rdb: rdb,
		ttl: 30 * time.Second,
	}
}

func key(date string, serviceID uint) string {
	return fmt.Sprintf("availability:%s:%d", date, serviceID)
}

func (a *Availability) Get(
	ctx context.Context,
	date string,
	serviceID uint,
) ([]domain.TimeSlot, bool) {

	if a == nil || a.rdb == nil {
		return nil, false
	}

	raw, err := a.rdb.Get(ctx, key(date, serviceID)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (a *Availability) Set(
	ctx context.Context,
	date string,
	serviceID uint,
	slots []domain.TimeSlot,
) {

	if a == nil || a.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	// Cache é melhor-esforço: erro de redis nunca derruba a consulta
	_ = a.rdb.Set(ctx, key(date, serviceID), raw, a.ttl).Err()
}

// InvalidateDate apaga todas as entradas da data, para qualquer serviço.
func (a *Availability) InvalidateDate(ctx context.Context, date string) {

	if a == nil || a.rdb == nil {
		return
	}

	a.deletePattern(ctx, fmt.Sprintf("availability:%s:*", date))
}

// InvalidateAll apaga o cache inteiro; mudança de agenda ou de passo
// muda a grade de todas as datas de uma vez.
func (a *Availability) InvalidateAll(ctx context.Context) {

	if a == nil || a.rdb == nil {
		return
	}

	a.deletePattern(ctx, "availability:*")
}

func (a *Availability) deletePattern(ctx context.Context, pattern string) {
	iter := a.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		_ = a.rdb.Del(ctx, iter.Val()).Err()
	}
}
