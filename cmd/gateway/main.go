package main

import (
	"context"
	"flag"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"StayMock/internal/config"
	"StayMock/internal/gateway"
	"StayMock/pkg/kit"
)

func main() {
	configPath := flag.String("config", "", "optional config file")
	flag.Parse()

	service := "gateway"

	cfg, err := config.Load(*configPath)
	if err != nil {
		kit.NewLogger(service, "info").Fatal("load config failed", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	h, err := gateway.NewHandler(gateway.Deps{
		ListingsURL: cfg.Upstream.ListingsURL,
		SessionURL:  cfg.Upstream.SessionURL,
		JWTSecret:   cfg.Session.JWTSecret,
	}, kit.RouterDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})
	if err != nil {
		log.Fatal("init gateway handler failed", zap.Error(err))
	}

	if err := kit.RunHTTPServer(context.Background(), kit.ServerConfig{
		Addr:              ":" + cfg.HTTP.GatewayPort,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
