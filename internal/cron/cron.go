package cron

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/barberbook-api/internal/cache"
	ucSettings "github.com/BruksfildServices01/barberbook-api/internal/usecase/settings"
)

// Start agenda a checagem horária do reset semanal. A decisão em si mora
// no domínio (schedule.ShouldReset); rodar de hora em hora só garante que
// a agenda fecha mesmo sem ninguém abrir o app no fim de semana.
func Start(getSettings *ucSettings.Get, availability *cache.Availability) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 * * * *", func() {
		out, err := getSettings.Execute(context.Background())
		if err != nil {
			log.Println("weekly reset check failed:", err)
			return
		}
		if out.ResetApplied {
			availability.InvalidateAll(context.Background())
			log.Println("weekly schedule reset applied")
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule weekly reset job: %v", err)
	}

	c.Start()
	return c
}
