package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barberbook-api/internal/config"
	cronjobs "github.com/BruksfildServices01/barberbook-api/internal/cron"
	dbpkg "github.com/BruksfildServices01/barberbook-api/internal/db"
	"github.com/BruksfildServices01/barberbook-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	wired := routes.RegisterRoutes(r, routes.Deps{
		DB:    db,
		Redis: rdb,
		Cfg:   cfg,
	})

	// Reset semanal roda de hora em hora, além da checagem em cada load
	cronjobs.Start(wired.SettingsGetUC, wired.AvailabilityCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
