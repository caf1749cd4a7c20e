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

	ordertypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order ledger with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
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

func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
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
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*orderdomain.EnrichedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.List")
	defer span.End()
	orders, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*orderdomain.EnrichedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Get", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()
	order, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	span.SetAttributes(
		attribute.Bool("order.user_resolved", order.User != nil),
		attribute.Bool("order.dish_resolved", order.Dish != nil),
	)
	return order, nil
}

func (s *Service) Add(ctx context.Context, cmd ordertypes.AddOrderCommand) (*orderdomain.Order, error) {
	attrs := []slog.Attr{slog.Int64("user.id", cmd.UserID), slog.Int64("dish.id", cmd.DishID)}
	ctx, span := s.tracer.Start(ctx, "OrderService.Add", trace.WithAttributes(
		attribute.Int64("user.id", cmd.UserID),
		attribute.Int64("dish.id", cmd.DishID),
	))
	defer span.End()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "placing order", attrs...)
	order, err := s.inner.Add(ctx, cmd)
	if err != nil {
		s.metrics.recordRejected(ctx)
		return nil, s.fail(ctx, span, err, "failed to place order", attrs...)
	}
	s.metrics.recordPlaced(ctx)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order placed", slog.Int64("order.id", order.ID))
	return order, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Remove", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()
	if err := s.inner.Remove(ctx, id); err != nil {
		return s.fail(ctx, span, err, "failed to remove order", slog.Int64("order.id", id))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order removed", slog.Int64("order.id", id))
	return nil
}

func (s *Service) TotalForDish(ctx context.Context, dishID int64) (*orderdomain.DishTotal, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.TotalForDish", trace.WithAttributes(attribute.Int64("dish.id", dishID)))
	defer span.End()
	total, err := s.inner.TotalForDish(ctx, dishID)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to total dish orders", slog.Int64("dish.id", dishID))
	}
	span.SetAttributes(attribute.Float64("dish.total", total.Total))
	return total, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.LogAttrs(ctx, slog.LevelError, msg, append(attrs, slog.String("error", err.Error()))...)
	return err
}

type serviceMetrics struct {
	placed   metric.Int64Counter
	rejected metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placed, _ := m.Int64Counter("orders.service.placed", metric.WithDescription("Number of orders placed"))
	rejected, _ := m.Int64Counter("orders.service.rejected", metric.WithDescription("Number of order placements rejected"))
	return serviceMetrics{placed: placed, rejected: rejected}
}

func (m serviceMetrics) recordPlaced(ctx context.Context) {
	if m.placed != nil {
		m.placed.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context) {
	if m.rejected != nil {
		m.rejected.Add(ctx, 1)
	}
}

var _ orderports.Service = (*Service)(nil)
