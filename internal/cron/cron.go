// Package cron schedules the recurring standings recalculation.
package cron

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/config"
)

type StandingsUpdater interface {
	UpdateStandings(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(conf *config.CronConfig, updater StandingsUpdater) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(conf.StandingsSpec, func() {
		if err := updater.UpdateStandings(context.Background()); err != nil {
			zap.L().Error("scheduled standings update failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("c.AddFunc -> %w", err)
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
