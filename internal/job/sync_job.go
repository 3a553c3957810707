package job

import (
	"Islet/internal/pkg/consts"
	"Islet/internal/pkg/logger"
	"Islet/internal/pkg/redis"
	"Islet/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type SyncJob struct {
	syncSvc service.SyncService
}

func NewSyncJob(syncSvc service.SyncService) *SyncJob {
	return &SyncJob{
		syncSvc: syncSvc,
	}
}

func (s *SyncJob) Run() {
	traceID := "job-sync-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 抢占分布式锁，避免与上一轮未结束的定时同步叠加
	ok, err := redis.TryLock(ctx, consts.SyncRunningLock, traceID, 10*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire sync lock error", "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "previous sync still running, skip this round")
		return
	}
	defer redis.UnLock(ctx, consts.SyncRunningLock, traceID)

	log.InfoContext(ctx, "SyncJob start")

	accountResult, err := s.syncSvc.SyncAccount(ctx)
	if err != nil {
		log.ErrorContext(ctx, "sync account error", "err", err)
	} else {
		log.InfoContext(ctx, "sync account done", "notes_saved", accountResult.NotesSaved)
	}

	detailResult, err := s.syncSvc.SyncNoteDetails(ctx)
	if err != nil {
		log.ErrorContext(ctx, "sync note details error", "err", err)
	}
	if detailResult != nil {
		log.InfoContext(ctx, "SyncJob finished",
			"processed", detailResult.Processed,
			"saved_comments", detailResult.SavedComments,
			"duration_ms", detailResult.DurationMs)
	}
}
