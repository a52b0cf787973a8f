package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ammlab/amm-service/internal/amm"
	"github.com/ammlab/amm-service/internal/config"
	"github.com/ammlab/amm-service/internal/service"
	"github.com/ammlab/amm-service/internal/token"
	transport "github.com/ammlab/amm-service/internal/transport/http"
)

func main() {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	ledger := token.NewInMemoryLedger()
	registry := amm.NewRegistry()
	engine := amm.NewEngine(registry, ledger, amm.NewLogSink())
	svc := service.NewAMMService(engine)

	srv := transport.NewServer(svc, cfg)
	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		log.Fatalf("srv.ListenAndServe: %v", err)
	}
}
