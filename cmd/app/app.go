package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/config"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/cron"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/db"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	scheduler, err := cron.NewScheduler(conf.Cron, s.StandingsService())
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler -> %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
