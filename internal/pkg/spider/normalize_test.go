package spider

import (
	"Islet/internal/pkg/consts"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNoteProbePriority(t *testing.T) {
	raw := map[string]any{
		"note_id": "n123",
		"id":      "should-not-win",
		"title":   "周末晒猫",
		"interact_info": map[string]any{
			"liked_count": "1024",
		},
		"cover": map[string]any{
			"url_default": "https://img.example/cover.jpg",
			"url":         "https://img.example/low.jpg",
		},
	}

	rec := NormalizeNote(raw)
	assert.Equal(t, "n123", rec.NoteID)
	assert.Equal(t, "周末晒猫", rec.Title)
	assert.Equal(t, 1024, rec.Likes)
	assert.Equal(t, "https://img.example/cover.jpg", rec.CoverURL)
	assert.Equal(t, consts.NoteTypeNormal, rec.NoteType)
}

func TestNormalizeNoteVideoType(t *testing.T) {
	rec := NormalizeNote(map[string]any{"note_id": "n1", "type": "video"})
	assert.Equal(t, consts.NoteTypeVideo, rec.NoteType)
}

func TestNormalizeNoteTitleTruncated(t *testing.T) {
	long := strings.Repeat("喵", 500)
	rec := NormalizeNote(map[string]any{"title": long})
	assert.Equal(t, consts.TitleMaxLen, len([]rune(rec.Title)))
}

func TestNormalizeNoteTotalOnMalformedInput(t *testing.T) {
	cases := []map[string]any{
		nil,
		{},
		{"title": 12345, "liked_count": "not-a-number"},
		{"cover": []any{}, "interact_info": "oops"},
		{"time": "garbage"},
	}

	for _, raw := range cases {
		assert.NotPanics(t, func() {
			rec := NormalizeNote(raw)
			assert.Equal(t, 0, rec.Likes)
			assert.Nil(t, rec.PublishedAt)
		})
	}
}

func TestNormalizeNoteTimestamps(t *testing.T) {
	// 秒级
	rec := NormalizeNote(map[string]any{"time": 1724900000})
	require.NotNil(t, rec.PublishedAt)
	assert.Equal(t, time.Unix(1724900000, 0), *rec.PublishedAt)

	// 毫秒级自动降级
	recMs := NormalizeNote(map[string]any{"time": int64(1724900000000)})
	require.NotNil(t, recMs.PublishedAt)
	assert.Equal(t, time.Unix(1724900000, 0), *recMs.PublishedAt)

	// 缺失
	assert.Nil(t, NormalizeNote(map[string]any{}).PublishedAt)
}

func TestNormalizeAccount(t *testing.T) {
	raw := map[string]any{
		"userId":   "u88",
		"nickname": "小离岛岛",
		"basic_info": map[string]any{
			"images": "https://img.example/avatar.jpg",
		},
		"interact_info": map[string]any{
			"fans":    "30122",
			"follows": 120,
		},
	}

	rec := NormalizeAccount(raw)
	assert.Equal(t, "u88", rec.UserID)
	assert.Equal(t, "小离岛岛", rec.Nickname)
	assert.Equal(t, 30122, rec.Followers)
	assert.Equal(t, 120, rec.Following)
	assert.Equal(t, "https://img.example/avatar.jpg", rec.AvatarURL)
}

func TestNormalizeComment(t *testing.T) {
	raw := map[string]any{
		"id":      "c9",
		"content": "猫猫好可爱",
		"user_info": map[string]any{
			"user_id":  "u1",
			"nickname": "路人甲",
		},
		"like_count":        "3",
		"sub_comment_count": 2,
		"create_time":       1724900000,
	}

	rec := NormalizeComment(raw)
	assert.Equal(t, "c9", rec.CommentID)
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, "路人甲", rec.Nickname)
	assert.Equal(t, "猫猫好可爱", rec.Content)
	assert.Equal(t, 3, rec.LikeCount)
	assert.Equal(t, 2, rec.SubCommentCount)
	require.NotNil(t, rec.PublishedAt)
}

func TestDigListIndex(t *testing.T) {
	raw := map[string]any{
		"image_list": []any{
			map[string]any{"url": "https://img.example/0.jpg"},
			map[string]any{"url": "https://img.example/1.jpg"},
		},
	}

	v, ok := dig(raw, "image_list.0.url")
	require.True(t, ok)
	assert.Equal(t, "https://img.example/0.jpg", v)

	_, ok = dig(raw, "image_list.5.url")
	assert.False(t, ok)

	_, ok = dig(raw, "image_list.x.url")
	assert.False(t, ok)
}
