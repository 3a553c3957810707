package service

import (
	"Islet/internal/api/config"
	"Islet/internal/api/dto"
	"Islet/internal/model"
	"Islet/internal/pkg/consts"
	"Islet/internal/pkg/redis"
	"Islet/internal/pkg/spider"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

type SyncService interface {
	// SyncAccount 拉取账号主页并追加快照，同时用列表页刷新全部笔记计数
	SyncAccount(ctx context.Context) (*dto.AccountSyncResultDTO, error)
	// SyncNoteDetails 在时间预算内逐条补齐笔记详情和热评，提前退出属于正常结束
	SyncNoteDetails(ctx context.Context) (*dto.SyncResultDTO, error)
	// Status 聚合概览，短缓存
	Status(ctx context.Context) (*dto.SyncStatusDTO, error)
}

type syncServiceImpl struct {
	fetcher     spider.Fetcher
	noteRepo    NoteStore
	commentRepo CommentStore
	accountRepo AccountStore
	cfg         config.SyncConfig
	retryCfg    config.SpiderConfig
}

// NoteStore / CommentStore / AccountStore 收窄到同步管道用得到的能力，便于测试替换
type NoteStore interface {
	UpsertFromList(ctx context.Context, note *model.Note) error
	UpsertDetail(ctx context.Context, note *model.Note) error
	TouchSyncTime(ctx context.Context, noteID string, t time.Time) error
	ListStalest(ctx context.Context, limit int) ([]*model.Note, error)
	CountNotes(ctx context.Context) (int64, error)
}

type CommentStore interface {
	UpsertComment(ctx context.Context, comment *model.NoteComment) error
	CountComments(ctx context.Context) (int64, error)
	CountNotesWithComments(ctx context.Context) (int64, error)
}

type AccountStore interface {
	InsertSnapshot(ctx context.Context, snapshot *model.AccountSnapshot) error
}

func NewSyncService(
	fetcher spider.Fetcher,
	noteRepo NoteStore,
	commentRepo CommentStore,
	accountRepo AccountStore,
	cfg config.SyncConfig,
	spiderCfg config.SpiderConfig,
) SyncService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.BudgetMs <= 0 {
		cfg.BudgetMs = 60000
	}
	if cfg.MarginMs <= 0 {
		cfg.MarginMs = 20000
	}
	if cfg.CommentLimit <= 0 {
		cfg.CommentLimit = 5
	}
	return &syncServiceImpl{
		fetcher:     fetcher,
		noteRepo:    noteRepo,
		commentRepo: commentRepo,
		accountRepo: accountRepo,
		cfg:         cfg,
		retryCfg:    spiderCfg,
	}
}

func (s *syncServiceImpl) SyncAccount(ctx context.Context) (*dto.AccountSyncResultDTO, error) {
	if s.cfg.UserID == "" {
		return nil, ErrSyncConfigMissing
	}

	payload := map[string]any{"user_id": s.cfg.UserID}

	rawProfile, err := s.fetcher.CallWithRetry(ctx,
		s.fetcher.Endpoints(spider.EndpointUserInfo), payload, s.retryCfg.MaxAttempts)
	if err != nil {
		return nil, err
	}

	profile := spider.NormalizeAccount(toMap(rawProfile))
	snapshot := &model.AccountSnapshot{
		UserID:     profile.UserID,
		Nickname:   profile.Nickname,
		AvatarURL:  profile.AvatarURL,
		IPLocation: profile.IPLocation,
		Followers:  profile.Followers,
		Following:  profile.Following,
		Liked:      profile.Liked,
		Collected:  profile.Collected,
		NoteCount:  profile.NoteCount,
		CapturedAt: time.Now(),
	}
	if snapshot.UserID == "" {
		snapshot.UserID = s.cfg.UserID
	}
	if err := s.accountRepo.InsertSnapshot(ctx, snapshot); err != nil {
		log.ErrorContext(ctx, "账号快照入库失败", "err", err)
		return nil, ErrStoreUnavailable
	}

	rawNotes, err := s.fetcher.CallWithRetry(ctx,
		s.fetcher.Endpoints(spider.EndpointUserNotes), payload, s.retryCfg.MaxAttempts)
	if err != nil {
		return nil, err
	}

	saved := 0
	for _, item := range toList(rawNotes, "notes", "list", "items") {
		rec := spider.NormalizeNote(item)
		if rec.NoteID == "" {
			continue
		}
		note := &model.Note{
			NoteID:        rec.NoteID,
			Title:         rec.Title,
			CoverURL:      rec.CoverURL,
			NoteType:      rec.NoteType,
			LikesCount:    rec.Likes,
			CollectsCount: rec.Collects,
			CommentsCount: rec.Comments,
			SharesCount:   rec.Shares,
			PublishedAt:   rec.PublishedAt,
		}
		if err := s.noteRepo.UpsertFromList(ctx, note); err != nil {
			log.ErrorContext(ctx, "笔记列表入库失败", "note_id", rec.NoteID, "err", err)
			continue
		}
		saved++
	}

	s.invalidateStatusCache(ctx)

	snapshotDTO := &dto.AccountSnapshotDTO{
		UserID:     snapshot.UserID,
		Nickname:   snapshot.Nickname,
		AvatarURL:  snapshot.AvatarURL,
		IPLocation: snapshot.IPLocation,
		Followers:  snapshot.Followers,
		Following:  snapshot.Following,
		Liked:      snapshot.Liked,
		Collected:  snapshot.Collected,
		NoteCount:  snapshot.NoteCount,
		CapturedAt: snapshot.CapturedAt,
	}
	return &dto.AccountSyncResultDTO{NotesSaved: saved, Snapshot: snapshotDTO}, nil
}

func (s *syncServiceImpl) SyncNoteDetails(ctx context.Context) (*dto.SyncResultDTO, error) {
	start := time.Now()
	budget := time.Duration(s.cfg.BudgetMs) * time.Millisecond
	margin := time.Duration(s.cfg.MarginMs) * time.Millisecond
	deadline := budget - margin

	notes, err := s.noteRepo.ListStalest(ctx, s.cfg.BatchSize)
	if err != nil {
		log.ErrorContext(ctx, "待同步队列查询失败", "err", err)
		return nil, ErrStoreUnavailable
	}

	result := &dto.SyncResultDTO{}

	for i, note := range notes {
		if time.Since(start) > deadline {
			log.InfoContext(ctx, "时间预算即将用尽，提前结束本批",
				"processed", result.Processed, "remaining", len(notes)-i)
			break
		}
		if i > 0 && s.cfg.ThrottleMs > 0 {
			time.Sleep(time.Duration(s.cfg.ThrottleMs) * time.Millisecond)
		}

		rec, rawDetail, err := s.fetchDetail(ctx, note.NoteID)
		if err != nil {
			var apiErr *spider.Error
			if errors.As(err, &apiErr) && apiErr.Fatal() {
				// 密钥失效、余额耗尽这类问题重试无意义，直接终止整批
				result.DurationMs = time.Since(start).Milliseconds()
				return result, err
			}
			log.WarnContext(ctx, "笔记详情获取失败，跳过", "note_id", note.NoteID, "err", err)
			if terr := s.noteRepo.TouchSyncTime(ctx, note.NoteID, time.Now()); terr != nil {
				log.ErrorContext(ctx, "同步时间推进失败", "note_id", note.NoteID, "err", terr)
			}
			continue
		}

		updated := &model.Note{
			NoteID:        note.NoteID,
			Title:         rec.Title,
			CoverURL:      rec.CoverURL,
			NoteType:      rec.NoteType,
			LikesCount:    rec.Likes,
			CollectsCount: rec.Collects,
			CommentsCount: rec.Comments,
			SharesCount:   rec.Shares,
			Description:   rec.Description,
			IPLocation:    rec.IPLocation,
			Detail:        rawDetail,
			PublishedAt:   rec.PublishedAt,
			LastSyncAt:    time.Now(),
		}
		if err := s.noteRepo.UpsertDetail(ctx, updated); err != nil {
			log.ErrorContext(ctx, "笔记详情入库失败", "note_id", note.NoteID, "err", err)
			if terr := s.noteRepo.TouchSyncTime(ctx, note.NoteID, time.Now()); terr != nil {
				log.ErrorContext(ctx, "同步时间推进失败", "note_id", note.NoteID, "err", terr)
			}
			continue
		}
		result.Processed++

		// 评论是附属数据，失败只记日志，不影响主记录的成功
		if rec.Comments > 0 && time.Since(start) <= deadline {
			result.SavedComments += s.syncComments(ctx, note.NoteID)
		}
	}

	result.DurationMs = time.Since(start).Milliseconds()
	s.invalidateStatusCache(ctx)

	log.InfoContext(ctx, "笔记详情同步完成",
		"processed", result.Processed,
		"saved_comments", result.SavedComments,
		"duration_ms", result.DurationMs)
	return result, nil
}

// fetchDetail 单次尝试快速失败，避免单条任务吃掉过多预算
func (s *syncServiceImpl) fetchDetail(ctx context.Context, noteID string) (spider.NoteRecord, json.RawMessage, error) {
	raw, err := s.fetcher.CallWithRetry(ctx,
		s.fetcher.Endpoints(spider.EndpointNoteDetail),
		map[string]any{"note_id": noteID}, 1)
	if err != nil {
		return spider.NoteRecord{}, nil, err
	}

	m := toMap(raw)
	// 部分接口版本把笔记包了一层
	if inner, ok := m["note"].(map[string]any); ok {
		m = inner
	}
	return spider.NormalizeNote(m), raw, nil
}

func (s *syncServiceImpl) syncComments(ctx context.Context, noteID string) int {
	raw, err := s.fetcher.CallWithRetry(ctx,
		s.fetcher.Endpoints(spider.EndpointNoteComments),
		map[string]any{"note_id": noteID}, 1)
	if err != nil {
		log.WarnContext(ctx, "评论获取失败", "note_id", noteID, "err", err)
		return 0
	}

	saved := 0
	items := toList(raw, "comments", "list", "items")
	for _, item := range items {
		if saved >= s.cfg.CommentLimit {
			break
		}
		rec := spider.NormalizeComment(item)
		if rec.CommentID == "" {
			continue
		}
		comment := &model.NoteComment{
			CommentID:       rec.CommentID,
			NoteID:          noteID,
			UserID:          rec.UserID,
			Nickname:        rec.Nickname,
			AvatarURL:       rec.AvatarURL,
			Content:         rec.Content,
			LikeCount:       rec.LikeCount,
			SubCommentCount: rec.SubCommentCount,
			IPLocation:      rec.IPLocation,
			PublishedAt:     rec.PublishedAt,
		}
		if err := s.commentRepo.UpsertComment(ctx, comment); err != nil {
			log.WarnContext(ctx, "评论入库失败", "comment_id", rec.CommentID, "err", err)
			continue
		}
		saved++
	}
	return saved
}

func (s *syncServiceImpl) Status(ctx context.Context) (*dto.SyncStatusDTO, error) {
	if val, err := redis.GetValue(ctx, consts.SyncStatusKey); err == nil && val != "" {
		var cached dto.SyncStatusDTO
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	totalNotes, err := s.noteRepo.CountNotes(ctx)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	totalComments, err := s.commentRepo.CountComments(ctx)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	notesWithComments, err := s.commentRepo.CountNotesWithComments(ctx)
	if err != nil {
		return nil, ErrStoreUnavailable
	}

	status := &dto.SyncStatusDTO{
		TotalNotes:        totalNotes,
		NotesWithComments: notesWithComments,
		TotalComments:     totalComments,
		CachedAt:          time.Now(),
	}

	if data, err := json.Marshal(status); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.SyncStatusKey, string(data), time.Minute)
	}
	return status, nil
}

func (s *syncServiceImpl) invalidateStatusCache(ctx context.Context) {
	_ = redis.DeleteKey(ctx, consts.SyncStatusKey)
	_ = redis.DeleteKey(ctx, consts.AccountLatestKey)
}

// toMap 容忍任何形状的 data，解析失败返回空表
func toMap(raw json.RawMessage) map[string]any {
	m := make(map[string]any)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &m)
	}
	return m
}

// toList 依次探测可能的列表字段，data 本身是数组时直接使用
func toList(raw json.RawMessage, keys ...string) []map[string]any {
	var direct []map[string]any
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}

	m := toMap(raw)
	for _, key := range keys {
		items, ok := m[key].([]any)
		if !ok {
			continue
		}
		list := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if obj, ok := item.(map[string]any); ok {
				list = append(list, obj)
			}
		}
		return list
	}
	return nil
}
