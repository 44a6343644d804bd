package main

import (
	"context"
	"flag"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"StayMock/internal/config"
	"StayMock/internal/session"
	"StayMock/pkg/kit"
)

func main() {
	configPath := flag.String("config", "", "optional config file")
	flag.Parse()

	service := "session"

	cfg, err := config.Load(*configPath)
	if err != nil {
		kit.NewLogger(service, "info").Fatal("load config failed", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	s := &session.Server{
		Log:     log,
		Session: session.New(),
		JWT:     session.NewTokenMaker(cfg.Session.JWTSecret, cfg.Session.TokenTTL),
	}

	reg := prometheus.NewRegistry()
	h := session.NewHandler(s, kit.RouterDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunHTTPServer(context.Background(), kit.ServerConfig{
		Addr:              ":" + cfg.HTTP.SessionPort,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
