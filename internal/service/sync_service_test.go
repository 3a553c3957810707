package service

import (
	"Islet/internal/api/config"
	"Islet/internal/model"
	"Islet/internal/pkg/redis"
	"Islet/internal/pkg/spider"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, redis.InitRedis(config.RedisConfig{Addr: mr.Addr()}))
}

// fakeFetcher 按接口路径分发预置响应
type fakeFetcher struct {
	responses map[string]func(payload map[string]any) (json.RawMessage, error)
	calls     map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: make(map[string]func(payload map[string]any) (json.RawMessage, error)),
		calls:     make(map[string]int),
	}
}

func (f *fakeFetcher) Endpoints(path string) []string {
	return []string{path}
}

func (f *fakeFetcher) CallWithRetry(_ context.Context, endpoints []string, payload map[string]any, _ int) (json.RawMessage, error) {
	path := endpoints[0]
	f.calls[path]++
	fn, ok := f.responses[path]
	if !ok {
		return nil, fmt.Errorf("unexpected call: %s", path)
	}
	return fn(payload)
}

func (f *fakeFetcher) respondJSON(path string, v any) {
	f.responses[path] = func(map[string]any) (json.RawMessage, error) {
		data, _ := json.Marshal(v)
		return data, nil
	}
}

type fakeNoteStore struct {
	stalest       []*model.Note
	listUpserts   []*model.Note
	detailUpserts []*model.Note
	touched       []string
	countNotes    int64
	countCalls    int
}

func (f *fakeNoteStore) UpsertFromList(_ context.Context, note *model.Note) error {
	f.listUpserts = append(f.listUpserts, note)
	return nil
}

func (f *fakeNoteStore) UpsertDetail(_ context.Context, note *model.Note) error {
	f.detailUpserts = append(f.detailUpserts, note)
	return nil
}

func (f *fakeNoteStore) TouchSyncTime(_ context.Context, noteID string, _ time.Time) error {
	f.touched = append(f.touched, noteID)
	return nil
}

func (f *fakeNoteStore) ListStalest(_ context.Context, limit int) ([]*model.Note, error) {
	if limit < len(f.stalest) {
		return f.stalest[:limit], nil
	}
	return f.stalest, nil
}

func (f *fakeNoteStore) CountNotes(_ context.Context) (int64, error) {
	f.countCalls++
	return f.countNotes, nil
}

type fakeCommentStore struct {
	upserts    []*model.NoteComment
	countCalls int
}

func (f *fakeCommentStore) UpsertComment(_ context.Context, comment *model.NoteComment) error {
	f.upserts = append(f.upserts, comment)
	return nil
}

func (f *fakeCommentStore) CountComments(_ context.Context) (int64, error) {
	f.countCalls++
	return int64(len(f.upserts)), nil
}

func (f *fakeCommentStore) CountNotesWithComments(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeAccountStore struct {
	snapshots []*model.AccountSnapshot
}

func (f *fakeAccountStore) InsertSnapshot(_ context.Context, snapshot *model.AccountSnapshot) error {
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func newTestSyncService(fetcher *fakeFetcher, notes *fakeNoteStore, comments *fakeCommentStore, accounts *fakeAccountStore, cfg config.SyncConfig) SyncService {
	return NewSyncService(fetcher, notes, comments, accounts, cfg, config.SpiderConfig{MaxAttempts: 3})
}

func staleNotes(ids ...string) []*model.Note {
	notes := make([]*model.Note, 0, len(ids))
	for _, id := range ids {
		notes = append(notes, &model.Note{NoteID: id})
	}
	return notes
}

func TestSyncNoteDetailsProcessesBatch(t *testing.T) {
	setupRedis(t)

	fetcher := newFakeFetcher()
	fetcher.responses[spider.EndpointNoteDetail] = func(payload map[string]any) (json.RawMessage, error) {
		return json.Marshal(map[string]any{
			"note_id":        payload["note_id"],
			"title":          "详情标题",
			"desc":           "详情正文",
			"comments_count": 0,
		})
	}

	notes := &fakeNoteStore{stalest: staleNotes("n1", "n2")}
	comments := &fakeCommentStore{}
	svc := newTestSyncService(fetcher, notes, comments, &fakeAccountStore{}, config.SyncConfig{BatchSize: 5})

	result, err := svc.SyncNoteDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.SavedComments)
	assert.Len(t, notes.detailUpserts, 2)
	assert.Empty(t, notes.touched)
	assert.Equal(t, "详情正文", notes.detailUpserts[0].Description)
	assert.NotEmpty(t, notes.detailUpserts[0].Detail)
}

func TestSyncNoteDetailsFatalAborts(t *testing.T) {
	setupRedis(t)

	fetcher := newFakeFetcher()
	fetcher.responses[spider.EndpointNoteDetail] = func(map[string]any) (json.RawMessage, error) {
		return nil, &spider.Error{Code: 401, Message: "密钥无效或已过期"}
	}

	notes := &fakeNoteStore{stalest: staleNotes("n1", "n2", "n3")}
	svc := newTestSyncService(fetcher, notes, &fakeCommentStore{}, &fakeAccountStore{}, config.SyncConfig{BatchSize: 5})

	result, err := svc.SyncNoteDetails(context.Background())
	require.Error(t, err)

	var apiErr *spider.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Fatal())

	// 首条即终止，不再消耗剩余任务
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 1, fetcher.calls[spider.EndpointNoteDetail])
	assert.Empty(t, notes.touched)
}

func TestSyncNoteDetailsCommentLimit(t *testing.T) {
	setupRedis(t)

	fetcher := newFakeFetcher()
	fetcher.responses[spider.EndpointNoteDetail] = func(payload map[string]any) (json.RawMessage, error) {
		return json.Marshal(map[string]any{
			"note_id":        payload["note_id"],
			"title":          "热评笔记",
			"comments_count": 20,
		})
	}
	raw := make([]map[string]any, 0, 20)
	for i := 0; i < 20; i++ {
		raw = append(raw, map[string]any{
			"id":      fmt.Sprintf("c%d", i),
			"content": "好可爱",
		})
	}
	fetcher.respondJSON(spider.EndpointNoteComments, map[string]any{"comments": raw})

	notes := &fakeNoteStore{stalest: staleNotes("n1")}
	comments := &fakeCommentStore{}
	svc := newTestSyncService(fetcher, notes, comments, &fakeAccountStore{}, config.SyncConfig{BatchSize: 5, CommentLimit: 5})

	result, err := svc.SyncNoteDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 5, result.SavedComments)
	assert.Len(t, comments.upserts, 5)
	assert.Equal(t, "n1", comments.upserts[0].NoteID)
}

func TestSyncNoteDetailsBudgetEarlyExit(t *testing.T) {
	setupRedis(t)

	fetcher := newFakeFetcher()
	fetcher.responses[spider.EndpointNoteDetail] = func(payload map[string]any) (json.RawMessage, error) {
		time.Sleep(15 * time.Millisecond)
		return json.Marshal(map[string]any{
			"note_id":        payload["note_id"],
			"comments_count": 0,
		})
	}

	notes := &fakeNoteStore{stalest: staleNotes("n1", "n2", "n3")}
	svc := newTestSyncService(fetcher, notes, &fakeCommentStore{}, &fakeAccountStore{}, config.SyncConfig{
		BatchSize: 5,
		BudgetMs:  50,
		MarginMs:  40,
	})

	result, err := svc.SyncNoteDetails(context.Background())
	require.NoError(t, err)

	// 第一条处理完已超出 budget-margin，剩余任务留给下一轮
	assert.Equal(t, 1, result.Processed)
	assert.Less(t, result.Processed, len(notes.stalest))
}

func TestSyncNoteDetailsFailureAdvancesQueue(t *testing.T) {
	setupRedis(t)

	fetcher := newFakeFetcher()
	fetcher.responses[spider.EndpointNoteDetail] = func(payload map[string]any) (json.RawMessage, error) {
		if payload["note_id"] == "n1" {
			return nil, &spider.Error{Code: 500, Message: "upstream error"}
		}
		return json.Marshal(map[string]any{
			"note_id":        payload["note_id"],
			"comments_count": 0,
		})
	}

	notes := &fakeNoteStore{stalest: staleNotes("n1", "n2")}
	svc := newTestSyncService(fetcher, notes, &fakeCommentStore{}, &fakeAccountStore{}, config.SyncConfig{BatchSize: 5})

	result, err := svc.SyncNoteDetails(context.Background())
	require.NoError(t, err)

	// 失败的任务推进 last_sync_at，避免每轮都卡在同一条上
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, []string{"n1"}, notes.touched)
}

func TestSyncAccount(t *testing.T) {
	setupRedis(t)

	fetcher := newFakeFetcher()
	fetcher.respondJSON(spider.EndpointUserInfo, map[string]any{
		"user_id":  "u88",
		"nickname": "小离岛岛",
		"fans":     30122,
	})
	fetcher.respondJSON(spider.EndpointUserNotes, map[string]any{
		"notes": []map[string]any{
			{"note_id": "n1", "title": "晒猫", "liked_count": 10},
			{"note_id": "n2", "title": strings.Repeat("长", 300)},
			{"title": "缺少id的脏数据"},
		},
	})

	notes := &fakeNoteStore{}
	accounts := &fakeAccountStore{}
	svc := newTestSyncService(fetcher, notes, &fakeCommentStore{}, accounts, config.SyncConfig{UserID: "u88"})

	result, err := svc.SyncAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.NotesSaved)
	assert.Len(t, notes.listUpserts, 2)
	assert.Equal(t, 200, len([]rune(notes.listUpserts[1].Title)))

	require.Len(t, accounts.snapshots, 1)
	assert.Equal(t, "u88", accounts.snapshots[0].UserID)
	assert.Equal(t, "小离岛岛", accounts.snapshots[0].Nickname)
	assert.Equal(t, 30122, accounts.snapshots[0].Followers)
}

func TestSyncAccountMissingUserID(t *testing.T) {
	setupRedis(t)

	svc := newTestSyncService(newFakeFetcher(), &fakeNoteStore{}, &fakeCommentStore{}, &fakeAccountStore{}, config.SyncConfig{})
	_, err := svc.SyncAccount(context.Background())
	assert.ErrorIs(t, err, ErrSyncConfigMissing)
}

func TestStatusUsesCache(t *testing.T) {
	setupRedis(t)

	notes := &fakeNoteStore{countNotes: 42}
	comments := &fakeCommentStore{}
	svc := newTestSyncService(newFakeFetcher(), notes, comments, &fakeAccountStore{}, config.SyncConfig{})

	first, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), first.TotalNotes)
	assert.Equal(t, 1, notes.countCalls)

	second, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), second.TotalNotes)
	assert.Equal(t, 1, notes.countCalls, "second call should hit the cache")
}
