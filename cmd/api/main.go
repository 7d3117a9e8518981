package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/bootstrap"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/reminder"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	if err := validators.Register(); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}
	if !timezone.IsValid(cfg.ShopTimezone) {
		log.Warn("invalid shop timezone, using UTC", zap.String("timezone", cfg.ShopTimezone))
	}

	health := map[string]handlers.Pinger{}

	// ======================================================
	// STORE
	// ======================================================
	var repo domain.Repository
	switch cfg.Store {
	case "memory":
		repo = infraRepo.NewBookingMemoryRepository()
		log.Warn("using in-memory store, data is lost on restart")
	default:
		db := dbpkg.NewDB(cfg, log)
		repo = infraRepo.NewBookingGormRepository(db)

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("failed to get sql.DB", zap.Error(err))
		}
		defer sqlDB.Close()
		health["database"] = sqlDB.PingContext
	}

	// ======================================================
	// SLOT LOCK
	// ======================================================
	var locker lock.SlotLocker = lock.NewMemoryLocker()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}

		locker = lock.NewRedisLocker(rdb, log)
		health["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	// ======================================================
	// AUDIT + STORAGE
	// ======================================================
	dispatcher := audit.NewDispatcher(audit.New(repo), log)
	defer dispatcher.Close()

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}

	// ======================================================
	// BOOTSTRAP
	// ======================================================
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bootstrap.Seed(bootCtx, repo, log); err != nil {
		log.Fatal("failed to seed catalog", zap.Error(err))
	}
	if err := bootstrap.EnsureOwner(bootCtx, repo, dispatcher, cfg.OwnerOpenID, log); err != nil {
		log.Fatal("failed to promote owner", zap.Error(err))
	}
	bootCancel()

	// ======================================================
	// REMINDER WORKER
	// ======================================================
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	reminders := ucBooking.NewSendReminders(
		repo,
		notify.NewLogNotifier(log),
		dispatcher,
		timezone.Location(cfg.ShopTimezone),
		log,
	)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		reminder.NewWorker(reminders, cfg.ReminderInterval, log).Run(workerCtx)
	}()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		Cfg:     cfg,
		Repo:    repo,
		Locker:  locker,
		Audit:   dispatcher,
		Storage: store,
		Health:  health,
		Log:     log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("server is shutting down")

	stopWorker()
	<-workerDone

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
