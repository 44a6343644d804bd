package listing

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"StayMock/internal/async"
)

const tracerName = "StayMock/internal/listing"

// Latencies are the artificial delays applied before each operation
// completes. The zero value disables simulated latency.
type Latencies struct {
	Lookup  time.Duration
	Search  time.Duration
	Reviews time.Duration
}

func DefaultLatencies() Latencies {
	return Latencies{
		Lookup:  200 * time.Millisecond,
		Search:  300 * time.Millisecond,
		Reviews: 300 * time.Millisecond,
	}
}

type ServiceDeps struct {
	Log       *zap.Logger
	Latencies Latencies
	Registry  prometheus.Registerer
}

// Service answers queries against a Catalog the way a remote search API
// would: every call returns immediately with a Deferred result.
type Service struct {
	catalog *Catalog
	lat     Latencies
	log     *zap.Logger
	metrics *opMetrics
	tracer  trace.Tracer
}

func NewService(c *Catalog, deps ServiceDeps) *Service {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		catalog: c,
		lat:     deps.Latencies,
		log:     log,
		metrics: newOpMetrics(deps.Registry),
		tracer:  otel.Tracer(tracerName),
	}
}

func (s *Service) Catalog() *Catalog { return s.catalog }

// Ping reports whether the catalog has anything to serve.
func (s *Service) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.catalog == nil || s.catalog.Len() == 0 {
		return errors.New("catalog is empty")
	}
	return nil
}

func (s *Service) SearchListings(ctx context.Context, crit Criteria) *async.Deferred[[]Listing] {
	return run(ctx, s, opSearch, s.lat.Search, criteriaAttrs(crit), func() ([]Listing, error) {
		return Search(s.catalog, crit), nil
	})
}

// GetListingByID resolves id after coercing it to a number. Ids that cannot
// be coerced fail with ErrNotFound like any other miss.
func (s *Service) GetListingByID(ctx context.Context, id string) *async.Deferred[Listing] {
	attrs := []attribute.KeyValue{attribute.String("listing.id", id)}
	return run(ctx, s, opGet, s.lat.Lookup, attrs, func() (Listing, error) {
		return s.lookup(id)
	})
}

func (s *Service) lookup(raw string) (Listing, error) {
	id, ok := ParseID(raw)
	if !ok {
		return Listing{}, ErrNotFound
	}
	l, ok := s.catalog.Get(id)
	if !ok {
		return Listing{}, ErrNotFound
	}
	return l, nil
}

// GetReviews ignores id and always yields the same four reviews.
func (s *Service) GetReviews(ctx context.Context, id string) *async.Deferred[[]Review] {
	attrs := []attribute.KeyValue{attribute.String("listing.id", id)}
	return run(ctx, s, opReviews, s.lat.Reviews, attrs, func() ([]Review, error) {
		return reviews(), nil
	})
}

// run wraps fn in a Deferred and records a span and metrics for whatever
// outcome it ends with, cancellation included.
func run[T any](ctx context.Context, s *Service, op string, delay time.Duration, attrs []attribute.KeyValue, fn func() (T, error)) *async.Deferred[T] {
	ctx, span := s.tracer.Start(ctx, "listing."+op, trace.WithAttributes(attrs...))
	start := time.Now()

	d := async.Run(ctx, delay, func(context.Context) (T, error) { return fn() })

	go func() {
		<-d.Done()
		_, err := d.Result()

		s.metrics.observe(op, start, err)
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
		case isCancelled(err):
			s.log.Debug("listing operation cancelled", zap.String("op", op), zap.Error(err))
			span.SetStatus(codes.Error, err.Error())
		default:
			s.log.Error("listing operation failed", zap.String("op", op), zap.Error(err))
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return d
}

func criteriaAttrs(c Criteria) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if c.Location != nil {
		attrs = append(attrs, attribute.String("criteria.location", *c.Location))
	}
	if c.MinGuests != nil {
		attrs = append(attrs, attribute.Int("criteria.guests", *c.MinGuests))
	}
	if c.MinPrice != nil {
		attrs = append(attrs, attribute.Int("criteria.price_min", *c.MinPrice))
	}
	if c.MaxPrice != nil {
		attrs = append(attrs, attribute.Int("criteria.price_max", *c.MaxPrice))
	}
	if c.Type != nil {
		attrs = append(attrs, attribute.String("criteria.type", *c.Type))
	}
	if len(c.Amenities) > 0 {
		attrs = append(attrs, attribute.StringSlice("criteria.amenities", c.Amenities))
	}
	return attrs
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
