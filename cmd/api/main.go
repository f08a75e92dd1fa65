package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-scheduler/internal/audit"
	"github.com/BruksfildServices01/slot-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/slot-scheduler/internal/db"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/slot-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/slot-scheduler/internal/logger"
	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
	"github.com/BruksfildServices01/slot-scheduler/internal/routes"
	"github.com/BruksfildServices01/slot-scheduler/internal/seed"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
	"github.com/BruksfildServices01/slot-scheduler/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// storage is everything that differs between the memory and postgres drivers.
type storage struct {
	store    schedule.AvailabilityStore
	registry appointment.Registry
	services booking.ServiceCatalog
	barbers  booking.BarberDirectory
	sink     audit.Sink
	db       *gorm.DB
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hours, err := cfg.WorkingHours()
	if err != nil {
		return err
	}

	seedFile, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}

	st, err := openStorage(ctx, cfg, log, seedFile)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewCollector(reg)

	dispatcher := audit.NewDispatcher(st.sink, log, m, 0)
	defer dispatcher.Close()

	revocations, closeRevocations, err := openRevocations(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRevocations()

	engine := booking.NewResolver(st.store, st.registry, st.services, st.barbers, booking.Options{Hours: hours})

	if err := validators.Register(); err != nil {
		return err
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Engine:   engine,
		Services: st.services,
		Barbers:  st.barbers,
		Sessions: session.NewManager(cfg.JWTSecret, cfg.SessionTTL, revocations, nil),
		Audit:    dispatcher,
		Metrics:  m,
		Log:      log,
		Calendar: handlers.Calendar{Timezone: cfg.Timezone},
		DB:       st.db,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			zap.String("addr", server.Addr),
			zap.String("driver", cfg.StoreDriver),
			zap.Int("granularity_minutes", hours.Granularity),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log *zap.Logger, f *seed.File) (storage, error) {
	if cfg.StoreDriver == config.DriverMemory {
		catalog := booking.NewMemoryCatalog(f.BookingServices(), f.BookingBarbers())
		return storage{
			store:    schedule.NewMemoryStore(),
			registry: appointment.NewMemoryRegistry(),
			services: catalog,
			barbers:  catalog,
			sink:     audit.NewZapSink(log),
		}, nil
	}

	db, err := dbpkg.NewDB(cfg.DBUrl)
	if err != nil {
		return storage{}, err
	}

	catalog := infraRepo.NewCatalogGormRepository(db)
	if err := catalog.Upsert(ctx, f.BookingServices(), f.BookingBarbers()); err != nil {
		return storage{}, fmt.Errorf("seeding catalog: %w", err)
	}
	log.Info("catalog seeded",
		zap.String("file", cfg.SeedFile),
		zap.Int("services", len(f.Services)),
		zap.Int("barbers", len(f.Barbers)),
	)

	return storage{
		store:    infraRepo.NewSlotGormStore(db),
		registry: infraRepo.NewAppointmentGormRepository(db),
		services: catalog,
		barbers:  catalog,
		sink:     audit.NewGormSink(db),
		db:       db,
	}, nil
}

// openRevocations uses Redis when REDIS_ADDR is set so sign-outs survive
// restarts and are shared between instances.
func openRevocations(ctx context.Context, cfg *config.Config, log *zap.Logger) (session.Revocations, func(), error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryRevocations(nil), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
	}
	log.Info("session revocations in redis", zap.String("addr", cfg.RedisAddr))

	return session.NewRedisRevocations(rdb), func() { _ = rdb.Close() }, nil
}
