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

	usertypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application/types"
	userdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
	userports "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
)

const tracerName = "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/adapters/observability/service"

// Service decorates the user directory with tracing, logging, and metrics.
type Service struct {
	inner   userports.Service
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

func New(inner userports.Service, opts ...Option) userports.Service {
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
	return s
}

func (s *Service) List(ctx context.Context) ([]*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.List")
	defer span.End()
	users, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to list users")
	}
	span.SetAttributes(attribute.Int("user.count", len(users)))
	return users, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Get", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()
	user, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to load user", slog.Int64("user.id", id))
	}
	return user, nil
}

func (s *Service) FindByPhone(ctx context.Context, phone int64) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.FindByPhone")
	defer span.End()
	user, err := s.inner.FindByPhone(ctx, phone)
	if err != nil {
		return nil, s.fail(ctx, span, err, "user lookup by phone failed")
	}
	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return user, nil
}

func (s *Service) Add(ctx context.Context, cmd usertypes.AddUserCommand) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Add")
	defer span.End()
	s.log(ctx, slog.LevelInfo, "registering user", slog.String("user.name", cmd.Name))
	user, err := s.inner.Add(ctx, cmd)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to register user", slog.String("user.name", cmd.Name))
	}
	span.SetAttributes(attribute.Int64("user.id", user.ID))
	s.metrics.recordRegistered(ctx)
	s.log(ctx, slog.LevelInfo, "user registered", slog.Int64("user.id", user.ID))
	return user, nil
}

func (s *Service) RemoveByName(ctx context.Context, name string) error {
	ctx, span := s.tracer.Start(ctx, "UserService.RemoveByName", trace.WithAttributes(attribute.String("user.name", name)))
	defer span.End()
	s.log(ctx, slog.LevelInfo, "removing user", slog.String("user.name", name))
	if err := s.inner.RemoveByName(ctx, name); err != nil {
		return s.fail(ctx, span, err, "failed to remove user", slog.String("user.name", name))
	}
	s.metrics.recordRemoved(ctx)
	return nil
}

func (s *Service) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

// fail records err on the span and logs it; phone numbers are never logged.
func (s *Service) fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.log(ctx, slog.LevelError, msg, append(attrs, slog.String("error", err.Error()))...)
	return err
}

type serviceMetrics struct {
	registered metric.Int64Counter
	removed    metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registered, _ := m.Int64Counter("users.service.registered", metric.WithDescription("Number of registered users"))
	removed, _ := m.Int64Counter("users.service.removed", metric.WithDescription("Number of removed users"))
	return serviceMetrics{registered: registered, removed: removed}
}

func (m serviceMetrics) recordRegistered(ctx context.Context) {
	if m.registered != nil {
		m.registered.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRemoved(ctx context.Context) {
	if m.removed != nil {
		m.removed.Add(ctx, 1)
	}
}

var _ userports.Service = (*Service)(nil)
