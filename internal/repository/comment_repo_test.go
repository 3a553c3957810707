package repository

import (
	"Islet/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCommentIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepo(db)
	ctx := context.Background()

	first := &model.NoteComment{
		CommentID: "c1",
		NoteID:    "n1",
		Content:   "第一次抓到的内容",
		LikeCount: 1,
	}
	require.NoError(t, repo.UpsertComment(ctx, first))

	second := &model.NoteComment{
		CommentID: "c1",
		NoteID:    "n1",
		Content:   "重新抓取后的内容",
		LikeCount: 7,
	}
	require.NoError(t, repo.UpsertComment(ctx, second))

	// comment_id 冲突整体覆盖，不产生重复行
	count, err := repo.CountComments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	comments, err := repo.ListByNoteID(ctx, "n1", 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "重新抓取后的内容", comments[0].Content)
	assert.Equal(t, 7, comments[0].LikeCount)
}
