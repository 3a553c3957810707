package dto

import "time"

// SyncResultDTO 一次批量详情同步的结果，提前退出也算成功
type SyncResultDTO struct {
	Processed     int   `json:"processed"`
	SavedComments int   `json:"saved_comments"`
	DurationMs    int64 `json:"duration_ms"`
}

// AccountSyncResultDTO 账号同步结果
type AccountSyncResultDTO struct {
	NotesSaved int                 `json:"notes_saved"`
	Snapshot   *AccountSnapshotDTO `json:"snapshot"`
}

// SyncStatusDTO 同步系统的聚合概览
type SyncStatusDTO struct {
	TotalNotes        int64     `json:"total_notes"`
	NotesWithComments int64     `json:"notes_with_comments"`
	TotalComments     int64     `json:"total_comments"`
	CachedAt          time.Time `json:"cached_at"`
}
