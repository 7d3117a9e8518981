package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/bootstrap"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
)

// seed migrates the database, inserts the default catalog and weekly
// schedule when missing, and promotes OWNER_OPEN_ID to admin.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)
	repo := infraRepo.NewBookingGormRepository(db)

	dispatcher := audit.NewDispatcher(audit.New(repo), log)
	defer dispatcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := bootstrap.Seed(ctx, repo, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	if err := bootstrap.EnsureOwner(ctx, repo, dispatcher, cfg.OwnerOpenID, log); err != nil {
		log.Fatal("owner promotion failed", zap.Error(err))
	}

	log.Info("seed complete")
}
