package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"StayMock/internal/session"
	"StayMock/pkg/kit"
)

type Deps struct {
	ListingsURL string
	SessionURL  string
	JWTSecret   string
}

const (
	readyTimeout      = 2 * time.Second
	readyProbeTimeout = 700 * time.Millisecond
)

var readyClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	},
}

func NewHandler(deps Deps, httpDeps kit.RouterDeps) (http.Handler, error) {
	listingsProxy, err := NewReverseProxy(deps.ListingsURL, httpDeps.Log)
	if err != nil {
		return nil, fmt.Errorf("listings proxy: %w", err)
	}
	sessionProxy, err := NewReverseProxy(deps.SessionURL, httpDeps.Log)
	if err != nil {
		return nil, fmt.Errorf("session proxy: %w", err)
	}

	r := kit.NewRouter(httpDeps, Identify(session.NewTokenMaker(deps.JWTSecret, 0)))

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	r.Handle("/listings", listingsProxy)
	r.Handle("/listings/*", listingsProxy)

	r.Handle("/session", sessionProxy)
	r.Handle("/session/*", sessionProxy)

	return r, nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	upstreams := []struct{ name, url string }{
		{"listings", deps.ListingsURL},
		{"session", deps.SessionURL},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, u := range upstreams {
			if err := checkReady(ctx, u.url+"/readyz"); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("upstream", u.name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, u.name+" not ready", nil)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}

func checkReady(ctx context.Context, url string) error {
	cctx, cancel := context.WithTimeout(ctx, readyProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := readyClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status=%d", resp.StatusCode)
	}

	return nil
}
