package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/config"
	"github.com/octet-systems/pebbleshotel/internal/confirmation"
	"github.com/octet-systems/pebbleshotel/internal/handler"
	"github.com/octet-systems/pebbleshotel/internal/middleware"
	"github.com/octet-systems/pebbleshotel/internal/notification"
	"github.com/octet-systems/pebbleshotel/internal/repository"
	"github.com/octet-systems/pebbleshotel/internal/repository/memory"
	"github.com/octet-systems/pebbleshotel/internal/router"
	"github.com/octet-systems/pebbleshotel/internal/scheduler"
	"github.com/octet-systems/pebbleshotel/internal/service"
	"github.com/octet-systems/pebbleshotel/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	_ "github.com/lib/pq"
)

const (
	migrationsDir   = "migrations"
	rateLimitPrefix = "ratelimit:bookings:"
)

type repos struct {
	rooms    ports.RoomRepo
	bookings ports.BookingRepo
	admins   ports.AdminRepo
	events   ports.EventRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	events     *notification.AMQPNotifier
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"PebblesHotel",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	app.initRedis()

	if err = app.initServices(r); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (repos, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageMemory:
		return a.initMemory()
	default:
		if err := a.runMigrations(); err != nil {
			return repos{}, fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return repos{}, fmt.Errorf("init db: %w", err)
		}
		return repos{
			rooms:    repository.NewRoomRepo(a.db),
			bookings: repository.NewBookingRepo(a.db),
			admins:   repository.NewAdminRepo(a.db),
			events:   repository.NewEventRepo(a.db),
		}, nil
	}
}

func (a *App) initMemory() (repos, error) {
	store := memory.New()
	if path := a.cfg.Storage.SnapshotPath; path != "" {
		var err error
		if store, err = memory.Open(path); err != nil {
			return repos{}, fmt.Errorf("open snapshot: %w", err)
		}
	}

	if a.cfg.Storage.Seed {
		now := time.Now().UTC()
		seeded, err := store.Seed(context.Background(), memory.DefaultRooms(now), memory.SampleBookings(now), memory.SampleEvents(now))
		if err != nil {
			return repos{}, fmt.Errorf("seed store: %w", err)
		}
		if seeded {
			a.log.Info("memory store seeded with default rooms and events")
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "memory store ready",
		logger.String("snapshot", a.cfg.Storage.SnapshotPath),
	)

	return repos{
		rooms:    memory.NewRoomRepo(store),
		bookings: memory.NewBookingRepo(store),
		admins:   memory.NewAdminRepo(store),
		events:   memory.NewEventRepo(store),
	}, nil
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

// initRedis подключает Redis для лимита бронирований. Без адреса или при
// недоступном сервере лимит отключается.
func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis addr is empty, booking rate limit disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		a.log.Warn("redis unavailable, booking rate limit disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		_ = client.Close()
		return
	}

	a.redis = client
	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
}

func (a *App) initServices(r repos) error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}

	a.events, err = notification.NewAMQPNotifier(a.cfg.AMQP.URL, a.cfg.AMQP.Exchange, a.cfg.AMQP.RoutingKey, a.log)
	if err != nil {
		return fmt.Errorf("init amqp notifier: %w", err)
	}

	notifier := notification.Fanout{tg, a.events}

	roomService := service.NewRoomService(r.rooms, r.bookings, a.cfg.Booking.MaxStayNights, a.log)
	bookingService := service.NewBookingService(
		r.bookings,
		r.rooms,
		confirmation.NewGenerator(a.cfg.Booking.CodeLength),
		notifier,
		service.BookingOptions{
			MaxStayNights: a.cfg.Booking.MaxStayNights,
			CodeAttempts:  a.cfg.Booking.CodeAttempts,
		},
		a.log,
	)
	statsService := service.NewStatsService(r.rooms, r.bookings, loc)
	authService := service.NewAuthService(r.admins, a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.log)
	eventService := service.NewEventService(r.events, a.log)

	if err = authService.EnsureBootstrapAdmin(context.Background(),
		a.cfg.Auth.BootstrapEmail, a.cfg.Auth.BootstrapPassword); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	var bucket middleware.TokenBucket
	if a.redis != nil {
		bucket = middleware.NewRedisBucket(a.redis, rateLimitPrefix,
			a.cfg.RateLimit.Capacity, a.cfg.RateLimit.RefillPerSecond)
	}

	h := handler.NewHandler(roomService, bookingService, statsService, authService, eventService)
	rt, err := router.InitRouter(
		a.cfg.Gin.Mode,
		a.cfg.Server.TrustedProxies,
		h,
		router.Guards{
			AdminAuth:    middleware.AdminAuth(authService),
			BookingLimit: middleware.RateLimit(bucket, a.cfg.RateLimit.RetryAfter(), a.log),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowOrigins),
	)
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      rt,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	if err := a.events.Close(); err != nil {
		a.log.Warn("failed to close amqp connection", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis client", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
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
