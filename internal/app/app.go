package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/TimeslotBooker/internal/auth"
	"github.com/stpnv0/TimeslotBooker/internal/config"
	"github.com/stpnv0/TimeslotBooker/internal/handler"
	"github.com/stpnv0/TimeslotBooker/internal/middleware"
	"github.com/stpnv0/TimeslotBooker/internal/ratelimit"
	"github.com/stpnv0/TimeslotBooker/internal/repository"
	"github.com/stpnv0/TimeslotBooker/internal/router"
	"github.com/stpnv0/TimeslotBooker/internal/scheduler"
	"github.com/stpnv0/TimeslotBooker/internal/service"
	"github.com/stpnv0/TimeslotBooker/internal/telemetry"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serviceName     = "TimeslotBooker"
	migrationsDir   = "migrations"
	rateLimitPrefix = "timeslotbooker:ratelimit"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	tracing    telemetry.ShutdownFunc
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		serviceName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.tracing, err = telemetry.Setup(context.Background(), cfg.Tracing, serviceName)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	txManager := repository.NewTxManager(a.db)
	timeslotRepo := repository.NewTimeslotRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	timeslotService := service.NewTimeslotService(txManager, timeslotRepo, bookingRepo, a.log)
	bookingService := service.NewBookingService(txManager, timeslotRepo, bookingRepo, a.log)
	cancellationService := service.NewCancellationService(txManager, timeslotRepo, bookingRepo, a.log)
	userService := service.NewUserService(userRepo)

	limit, err := a.initRateLimit()
	if err != nil {
		return err
	}

	guards := router.Guards{
		Auth:         middleware.Authenticate(auth.NewVerifier(a.cfg.Auth.JWTSecret)),
		RequireUser:  middleware.RequireUser(),
		RequireStaff: middleware.RequireStaff(),
		Limit:        limit,
	}

	h := handler.NewHandler(timeslotService, bookingService, cancellationService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		guards,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      otelhttp.NewHandler(r, serviceName),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// initRateLimit picks the Redis fixed window when Redis is configured so the
// limit holds across replicas; otherwise buckets live in process memory and
// the scheduler evicts idle ones.
func (a *App) initRateLimit() (ginext.HandlerFunc, error) {
	rl := a.cfg.RateLimit
	if !rl.Enabled {
		return func(c *ginext.Context) { c.Next() }, nil
	}

	if a.cfg.Redis.Enabled() {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := a.redis.Ping(context.Background()).Err(); err != nil {
			if !rl.FailOpen {
				return nil, fmt.Errorf("ping redis: %w", err)
			}
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "redis unreachable, rate limiting fails open",
				logger.String("addr", a.cfg.Redis.Addr),
				logger.String("error", err.Error()),
			)
		}

		limiter := ratelimit.NewRedisLimiter(a.redis, rl.Limit, rl.Window, rateLimitPrefix)
		return middleware.RateLimit(limiter, rl.FailOpen, a.log), nil
	}

	store := ratelimit.NewStore(rl.RPS, rl.Burst, rl.IdleTTL)
	a.scheduler = scheduler.New(store, a.cfg.Scheduler.Interval, a.log)

	return middleware.RateLimit(store, rl.FailOpen, a.log), nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close redis",
				logger.String("error", err.Error()),
			)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	if err := a.tracing(shutdownCtx); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "tracer shutdown",
			logger.String("error", err.Error()),
		)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
