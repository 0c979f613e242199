package handlers

import (
	"context"

	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/appointment"
)

// AvailabilityCache é o que os handlers precisam do cache de slots
// (implementado por cache.Availability).
type AvailabilityCache interface {
	Get(ctx context.Context, date string, serviceID uint) ([]domain.TimeSlot, bool)
	Set(ctx context.Context, date string, serviceID uint, slots []domain.TimeSlot)

	// Mutação de agendamento invalida a data; mutação de agenda ou de
	// passo invalida tudo.
	InvalidateDate(ctx context.Context, date string)
	InvalidateAll(ctx context.Context)
}
