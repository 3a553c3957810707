package cron

import (
	"Islet/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine   *cron.Cron
	syncJob  *job.SyncJob
	syncSpec string
}

func NewCronManager(syncJob *job.SyncJob, syncSpec string) *Manager {
	if syncSpec == "" {
		syncSpec = "@every 6h"
	}
	return &Manager{
		engine:   cron.New(cron.WithSeconds()),
		syncJob:  syncJob,
		syncSpec: syncSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.syncSpec, s.syncJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("同步调度引擎启动", "spec", s.syncSpec)
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("同步调度引擎停止")
	s.engine.Stop()
}
