// pmos-server exposes the parametric MOS models over HTTP: prediction and
// geometry endpoints, stored evaluation runs, and model charts.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/streaminglabs/pmos/internal/api"
	"github.com/streaminglabs/pmos/internal/config"
	"github.com/streaminglabs/pmos/internal/store"
	"github.com/streaminglabs/pmos/internal/version"
)

var (
	listen     = flag.String("listen", "", "listen address (overrides config)")
	dbPath     = flag.String("db", "", "path to sqlite db (overrides config, empty disables run history)")
	configPath = flag.String("config", "", "path to JSON config file")
	noStore    = flag.Bool("no-store", false, "disable the run-history store")
)

func main() {
	flag.Parse()

	cfg := &config.ServerConfig{}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *listen != "" {
		cfg.Listen = listen
	}
	if *dbPath != "" {
		cfg.DBPath = dbPath
	}

	var st *store.Store
	if !*noStore {
		var err error
		st, err = store.Open(cfg.GetDBPath())
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer st.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    cfg.GetListen(),
		Handler: api.NewServer(st, cfg).Router(),
	}

	go func() {
		log.Printf("pmos-server %s listening on %s", version.String(), cfg.GetListen())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
}
