package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	dishtypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application/types"
	dishdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	dishports "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
)

const tracerName = "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/adapters/observability/service"

// Service decorates the dish catalog with tracing, logging, and metrics.
type Service struct {
	inner   dishports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core dish service.
func New(inner dishports.Service, opts ...Option) dishports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.List")
	defer span.End()
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list dishes")
	}
	span.SetAttributes(attribute.Int("dish.count", len(result)))
	return result, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.Get", trace.WithAttributes(attribute.Int64("dish.id", id)))
	defer span.End()
	result, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load dish", slog.Int64("dish.id", id))
	}
	return result, nil
}

func (s *Service) Search(ctx context.Context, query dishtypes.SearchDishesQuery) ([]*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.Search")
	defer span.End()
	attrs := searchAttrs(query)
	s.logInfo(ctx, "searching dishes", attrs...)
	result, err := s.inner.Search(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "dish search failed", attrs...)
	}
	span.SetAttributes(attribute.Int("dish.count", len(result)))
	return result, nil
}

func (s *Service) Add(ctx context.Context, cmd dishtypes.AddDishCommand) (*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.Add", trace.WithAttributes(attribute.String("dish.name", cmd.Name)))
	defer span.End()
	s.logInfo(ctx, "adding dish", slog.String("dish.name", cmd.Name), slog.Float64("dish.price", cmd.Price))
	result, err := s.inner.Add(ctx, cmd)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add dish", slog.String("dish.name", cmd.Name))
	}
	s.metrics.recordAdded(ctx)
	s.logInfo(ctx, "dish added", slog.Int64("dish.id", result.ID))
	return result, nil
}

func (s *Service) UpdatePrice(ctx context.Context, cmd dishtypes.UpdateDishPriceCommand) (*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.UpdatePrice", trace.WithAttributes(attribute.Int64("dish.id", cmd.ID)))
	defer span.End()
	s.logInfo(ctx, "updating dish price", slog.Int64("dish.id", cmd.ID), slog.Float64("dish.price", cmd.Price))
	result, err := s.inner.UpdatePrice(ctx, cmd)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update dish price", slog.Int64("dish.id", cmd.ID))
	}
	s.metrics.recordPriceUpdated(ctx)
	return result, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "DishService.Remove", trace.WithAttributes(attribute.Int64("dish.id", id)))
	defer span.End()
	s.logInfo(ctx, "removing dish", slog.Int64("dish.id", id))
	if err := s.inner.Remove(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to remove dish", slog.Int64("dish.id", id))
	}
	s.metrics.recordRemoved(ctx, 1)
	return nil
}

func (s *Service) RemoveAll(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.RemoveAll")
	defer span.End()
	s.logInfo(ctx, "removing every dish")
	removed, err := s.inner.RemoveAll(ctx)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to remove dishes")
	}
	s.metrics.recordRemoved(ctx, removed)
	s.logInfo(ctx, "dishes removed", slog.Int("dish.count", removed))
	return removed, nil
}

func searchAttrs(query dishtypes.SearchDishesQuery) []slog.Attr {
	var attrs []slog.Attr
	if query.Name != nil {
		attrs = append(attrs, slog.String("dish.name", *query.Name))
	}
	if query.Price != nil {
		attrs = append(attrs, slog.Float64("dish.price", *query.Price))
	}
	return attrs
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	dishesAdded   metric.Int64Counter
	pricesUpdated metric.Int64Counter
	dishesRemoved metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	added, _ := m.Int64Counter("dishes.service.added", metric.WithDescription("Number of dishes added"))
	updated, _ := m.Int64Counter("dishes.service.price_updates", metric.WithDescription("Number of dish price updates"))
	removed, _ := m.Int64Counter("dishes.service.removed", metric.WithDescription("Number of dishes removed"))
	return serviceMetrics{dishesAdded: added, pricesUpdated: updated, dishesRemoved: removed}
}

func (m serviceMetrics) recordAdded(ctx context.Context) {
	if m.dishesAdded != nil {
		m.dishesAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordPriceUpdated(ctx context.Context) {
	if m.pricesUpdated != nil {
		m.pricesUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRemoved(ctx context.Context, n int) {
	if m.dishesRemoved != nil && n > 0 {
		m.dishesRemoved.Add(ctx, int64(n))
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ dishports.Service = (*Service)(nil)
