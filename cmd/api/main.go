package main

import (
	"log"

	"prep-backend/internal/shared/config"
	"prep-backend/internal/shared/server"
	"prep-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.Env)
	defer telemetry.Sync()

	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
