package main

import (
	"context"
	"flag"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"StayMock/internal/config"
	"StayMock/internal/listing"
	"StayMock/pkg/kit"
)

func main() {
	configPath := flag.String("config", "", "optional config file")
	flag.Parse()

	service := "listings"

	cfg, err := config.Load(*configPath)
	if err != nil {
		kit.NewLogger(service, "info").Fatal("load config failed", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	catalog := listing.NewCatalog(listing.Generate(listing.NewRand(cfg.Catalog.Seed), cfg.Catalog.Size))
	log.Info("catalog generated", zap.Int("listings", catalog.Len()), zap.Uint64("seed", cfg.Catalog.Seed))

	lookup, search, reviews := cfg.Latency.Effective()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := listing.NewService(catalog, listing.ServiceDeps{
		Log:       log,
		Registry:  reg,
		Latencies: listing.Latencies{Lookup: lookup, Search: search, Reviews: reviews},
	})

	h := listing.NewHandler(svc, kit.RouterDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunHTTPServer(context.Background(), kit.ServerConfig{
		Addr:              ":" + cfg.HTTP.ListingsPort,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
