package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dhimarketer/newDirReact-sub000/pkg/api"
	"github.com/dhimarketer/newDirReact-sub000/pkg/config"
	"github.com/dhimarketer/newDirReact-sub000/pkg/layout"
	"github.com/dhimarketer/newDirReact-sub000/pkg/logging"
	"github.com/dhimarketer/newDirReact-sub000/pkg/metrics"
	"github.com/dhimarketer/newDirReact-sub000/pkg/registry"
	"github.com/dhimarketer/newDirReact-sub000/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.Int("port", 0, "Listen port (overrides config)")
	cacheSize := flag.Int("cache-size", 0, "Registry cache capacity (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *cacheSize != 0 {
		cfg.Cache.Capacity = *cacheSize
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Log.Level)).
		With(logging.Component("familyd"))

	engine := layout.NewEngine(cfg.LayoutEngineConfig())
	cache := registry.NewCache(cfg.Cache.Capacity)
	reg := metrics.NewRegistry()
	apiServer := api.NewServer(engine, cache, reg, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	gs := server.NewGracefulServer(addr, apiServer.Handler(), cfg.Server.ShutdownTimeout, logger)

	logger.Info("family graph service starting",
		logging.Int("port", cfg.Server.Port),
		logging.Int("cache_capacity", cfg.Cache.Capacity))

	if err := gs.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
