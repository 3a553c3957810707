package repository

import (
	"Islet/internal/model"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 连接真实 Postgres，不可用时跳过
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		dsn = "host=localhost user=islet password=islet dbname=islet_test port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("Skipping test - Postgres not available: %v", err)
		return nil
	}

	require.NoError(t, db.AutoMigrate(&model.Note{}, &model.NoteComment{}))
	require.NoError(t, db.Exec("TRUNCATE notes, note_comments RESTART IDENTITY").Error)
	return db
}

func TestUpsertDetailIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNoteRepo(db)
	ctx := context.Background()

	first := &model.Note{
		NoteID:     "n1",
		Title:      "第一版标题",
		LikesCount: 10,
		LastSyncAt: time.Now(),
	}
	require.NoError(t, repo.UpsertDetail(ctx, first))

	second := &model.Note{
		NoteID:        "n1",
		Title:         "第二版标题",
		LikesCount:    25,
		CommentsCount: 3,
		LastSyncAt:    time.Now(),
	}
	require.NoError(t, repo.UpsertDetail(ctx, second))

	// 同一 note_id 重复写入只保留一行，计数取最新值
	count, err := repo.CountNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := repo.GetByNoteID(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "第二版标题", stored.Title)
	assert.Equal(t, 25, stored.LikesCount)
	assert.Equal(t, 3, stored.CommentsCount)
}

func TestUpsertFromListKeepsDetailFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNoteRepo(db)
	ctx := context.Background()

	syncedAt := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, repo.UpsertDetail(ctx, &model.Note{
		NoteID:      "n1",
		Title:       "已补齐详情",
		Description: "详情正文",
		LikesCount:  10,
		LastSyncAt:  syncedAt,
	}))

	// 列表同步只刷新列表页字段
	require.NoError(t, repo.UpsertFromList(ctx, &model.Note{
		NoteID:     "n1",
		Title:      "列表新标题",
		LikesCount: 42,
	}))

	stored, err := repo.GetByNoteID(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "列表新标题", stored.Title)
	assert.Equal(t, 42, stored.LikesCount)
	assert.Equal(t, "详情正文", stored.Description)
	assert.WithinDuration(t, syncedAt, stored.LastSyncAt, time.Second)
}
