package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	restaurantserver "github.com/Apurer/go-gin-restaurant-api/go"
	dishmemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/adapters/memory"
	dishobs "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/adapters/observability"
	dishapp "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/application"
	dishports "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/ports"
	ordermemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/adapters/observability"
	orderapp "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application"
	orderports "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/ports"
	usermemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/adapters/memory"
	userobs "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/adapters/observability"
	userapp "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/application"
	userports "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/ports"
	platformmetrics "github.com/Apurer/go-gin-restaurant-api/internal/platform/metrics"
	platformobservability "github.com/Apurer/go-gin-restaurant-api/internal/platform/observability"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/consistency"
)

const serviceName = "restaurant-api"

// application holds the wired HTTP engine and the decorated services behind it.
type application struct {
	router *gin.Engine
	dishes dishports.Service
	users  userports.Service
	orders orderports.Service
}

// Run boots the restaurant HTTP API and blocks until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Options{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     cfg.LogLevel,
		Exporter:     cfg.Telemetry.Exporter,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure: cfg.Telemetry.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := instruments.Logger
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	app, err := newApplication(ctx, cfg, instruments, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Restaurant API listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("Restaurant API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down Restaurant API", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// newApplication wires repositories, services, decorators and routes. It seeds the stores when enabled.
func newApplication(ctx context.Context, cfg Config, instruments *platformobservability.Instruments, registry *prometheus.Registry) (*application, error) {
	logger := slog.Default()
	if instruments != nil && instruments.Logger != nil {
		logger = instruments.Logger
	}

	gate := consistency.NewGate()
	dishRepo := dishmemory.NewRepository()
	userRepo := usermemory.NewRepository()

	dishes := dishobs.New(
		dishapp.NewService(dishRepo, dishapp.WithGate(gate)),
		dishobs.WithLogger(logger),
		dishobs.WithTracer(instruments.Tracer("internal.dishes.application")),
		dishobs.WithMeter(instruments.Meter("internal.dishes.application")),
	)
	users := userobs.New(
		userapp.NewService(userRepo, userapp.WithGate(gate)),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)
	orders := orderobs.New(
		orderapp.NewService(ordermemory.NewRepository(), userRepo, dishRepo, orderapp.WithGate(gate)),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	if cfg.Seed.Enabled {
		data, err := LoadSeed(cfg.Seed.File)
		if err != nil {
			return nil, err
		}
		if err := ApplySeed(ctx, data, dishes, users, orders); err != nil {
			return nil, err
		}
		logger.Info("seed data loaded",
			slog.Int("dishes", len(data.Dishes)),
			slog.Int("users", len(data.Users)),
			slog.Int("orders", len(data.Orders)),
		)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		otelgin.Middleware(serviceName),
		restaurantserver.RequestID(),
		restaurantserver.RequestLogger(logger),
	)
	if cfg.Metrics.Enabled && registry != nil {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		engine.Use(platformmetrics.NewHTTPMetrics(registry).Middleware())
		engine.GET("/metrics", gin.WrapH(platformmetrics.Handler(registry)))
	}
	router := restaurantserver.NewRouterWithGinEngine(engine, restaurantserver.ApiHandleFunctions{
		DishAPI:  restaurantserver.NewDishAPI(dishes),
		UserAPI:  restaurantserver.NewUserAPI(users),
		OrderAPI: restaurantserver.NewOrderAPI(orders),
	})

	return &application{router: router, dishes: dishes, users: users, orders: orders}, nil
}
