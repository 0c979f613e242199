package settings

import (
	"context"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	"github.com/BruksfildServices01/barberbook-api/internal/clock"
	"github.com/BruksfildServices01/barberbook-api/internal/domain/schedule"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
)

type GetOutput struct {
	Business *domain.Business

	// true quando esta leitura disparou o reset semanal; a UI usa isso
	// para avisar o dono que a agenda fechou e precisa ser reaberta.
	ResetApplied bool
}

// Get carrega as configurações normalizadas e aplica o reset semanal
// quando a janela (sexta 20:00 → sábado) está aberta. A checagem pode
// rodar em todo load: o carimbo LastResetDate a torna idempotente.
type Get struct {
	repo  domain.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewGet(
	repo domain.Repository,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
) *Get {
	return &Get{
		repo:  repo,
		clk:   clk,
		audit: auditDispatcher,
	}
}

func (uc *Get) Execute(ctx context.Context) (*GetOutput, error) {

	biz, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clk.Now()
	if !schedule.ShouldReset(now, biz.LastResetDate) {
		return &GetOutput{Business: biz}, nil
	}

	biz.Week = schedule.ApplyReset(biz.Week)
	biz.LastResetDate = now.Format(schedule.DateLayout)

	if err := uc.repo.Put(ctx, biz); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "schedule_weekly_reset",
		Entity: "settings",
	})

	return &GetOutput{Business: biz, ResetApplied: true}, nil
}
