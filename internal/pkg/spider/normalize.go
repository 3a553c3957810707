package spider

import (
	"Islet/internal/pkg/consts"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// 上游不同版本的接口对同一个字段使用不同的键名，这里把每个规范字段的
// 候选来源路径按优先级排成表，取第一个存在且非空的值。路径用点号分隔，
// 列表元素用数字下标表示，例如 "image_list.0.url"。

var accountProbes = struct {
	userID, nickname, avatar, ipLocation          []string
	followers, following, liked, collected, notes []string
}{
	userID:     []string{"user_id", "userId", "id", "red_id"},
	nickname:   []string{"nickname", "nick_name", "name"},
	avatar:     []string{"avatar", "images", "image", "basic_info.images"},
	ipLocation: []string{"ip_location", "ipLocation", "location"},
	followers:  []string{"fans", "fans_count", "followers", "interact_info.fans"},
	following:  []string{"follows", "following_count", "interact_info.follows"},
	liked:      []string{"liked", "likes", "interact_info.liked"},
	collected:  []string{"collected", "collects", "interact_info.collected"},
	notes:      []string{"notes_count", "note_count", "posts", "interact_info.notes"},
}

var noteProbes = struct {
	noteID, title, cover, noteType, desc, ipLocation []string
	likes, collects, comments, shares                []string
	publishedAt                                      []string
}{
	noteID:      []string{"note_id", "noteId", "id"},
	title:       []string{"title", "display_title"},
	cover:       []string{"cover.url_default", "cover.url_pre", "cover.url", "cover", "image_list.0.url", "images_list.0.url"},
	noteType:    []string{"type", "note_type"},
	desc:        []string{"desc", "description", "content"},
	ipLocation:  []string{"ip_location", "ipLocation"},
	likes:       []string{"liked_count", "likes", "like_count", "interact_info.liked_count"},
	collects:    []string{"collected_count", "collects", "collect_count", "interact_info.collected_count"},
	comments:    []string{"comments_count", "comment_count", "comments", "interact_info.comment_count"},
	shares:      []string{"shared_count", "share_count", "shares", "interact_info.share_count"},
	publishedAt: []string{"time", "create_time", "publish_time"},
}

var commentProbes = struct {
	commentID, noteID, userID, nickname, avatar, content, ipLocation []string
	likeCount, subCount                                              []string
	publishedAt                                                      []string
}{
	commentID:   []string{"id", "comment_id", "commentId"},
	noteID:      []string{"note_id", "noteId"},
	userID:      []string{"user_info.user_id", "user.user_id", "user.userid", "user.id"},
	nickname:    []string{"user_info.nickname", "user.nickname", "user.name"},
	avatar:      []string{"user_info.image", "user.image", "user.avatar"},
	content:     []string{"content", "text"},
	ipLocation:  []string{"ip_location", "ipLocation"},
	likeCount:   []string{"like_count", "liked_count", "likes"},
	subCount:    []string{"sub_comment_count", "reply_count", "sub_comments_count"},
	publishedAt: []string{"create_time", "time"},
}

// AccountRecord 账号主页的规范化结果
type AccountRecord struct {
	UserID     string
	Nickname   string
	AvatarURL  string
	IPLocation string
	Followers  int
	Following  int
	Liked      int
	Collected  int
	NoteCount  int
}

// NoteRecord 笔记的规范化结果
type NoteRecord struct {
	NoteID      string
	Title       string
	CoverURL    string
	NoteType    string
	Description string
	IPLocation  string
	Likes       int
	Collects    int
	Comments    int
	Shares      int
	PublishedAt *time.Time
}

// CommentRecord 评论的规范化结果
type CommentRecord struct {
	CommentID       string
	NoteID          string
	UserID          string
	Nickname        string
	AvatarURL       string
	Content         string
	IPLocation      string
	LikeCount       int
	SubCommentCount int
	PublishedAt     *time.Time
}

// NormalizeAccount 把任意形状的账号原始对象映射为规范记录。
// 纯函数，缺失或畸形字段一律退化为零值，绝不报错。
func NormalizeAccount(raw map[string]any) AccountRecord {
	return AccountRecord{
		UserID:     pickString(raw, accountProbes.userID, 0),
		Nickname:   pickString(raw, accountProbes.nickname, 100),
		AvatarURL:  pickString(raw, accountProbes.avatar, 0),
		IPLocation: pickString(raw, accountProbes.ipLocation, 50),
		Followers:  pickInt(raw, accountProbes.followers),
		Following:  pickInt(raw, accountProbes.following),
		Liked:      pickInt(raw, accountProbes.liked),
		Collected:  pickInt(raw, accountProbes.collected),
		NoteCount:  pickInt(raw, accountProbes.notes),
	}
}

// NormalizeNote 把任意形状的笔记原始对象映射为规范记录
func NormalizeNote(raw map[string]any) NoteRecord {
	noteType := consts.NoteTypeNormal
	if strings.Contains(strings.ToLower(pickString(raw, noteProbes.noteType, 0)), "video") {
		noteType = consts.NoteTypeVideo
	}

	return NoteRecord{
		NoteID:      pickString(raw, noteProbes.noteID, 0),
		Title:       pickString(raw, noteProbes.title, consts.TitleMaxLen),
		CoverURL:    pickString(raw, noteProbes.cover, 0),
		NoteType:    noteType,
		Description: pickString(raw, noteProbes.desc, consts.DescMaxLen),
		IPLocation:  pickString(raw, noteProbes.ipLocation, 50),
		Likes:       pickInt(raw, noteProbes.likes),
		Collects:    pickInt(raw, noteProbes.collects),
		Comments:    pickInt(raw, noteProbes.comments),
		Shares:      pickInt(raw, noteProbes.shares),
		PublishedAt: pickTime(raw, noteProbes.publishedAt),
	}
}

// NormalizeComment 把任意形状的评论原始对象映射为规范记录
func NormalizeComment(raw map[string]any) CommentRecord {
	return CommentRecord{
		CommentID:       pickString(raw, commentProbes.commentID, 0),
		NoteID:          pickString(raw, commentProbes.noteID, 0),
		UserID:          pickString(raw, commentProbes.userID, 0),
		Nickname:        pickString(raw, commentProbes.nickname, 100),
		AvatarURL:       pickString(raw, commentProbes.avatar, 0),
		Content:         pickString(raw, commentProbes.content, 1000),
		IPLocation:      pickString(raw, commentProbes.ipLocation, 50),
		LikeCount:       pickInt(raw, commentProbes.likeCount),
		SubCommentCount: pickInt(raw, commentProbes.subCount),
		PublishedAt:     pickTime(raw, commentProbes.publishedAt),
	}
}

// dig 沿点号路径向下取值，支持数字下标访问列表元素
func dig(raw map[string]any, path string) (any, bool) {
	var cur any = raw
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := cast.ToIntE(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// pickString 取第一条命中的非空字符串，maxLen>0 时按字符数截断
func pickString(raw map[string]any, paths []string, maxLen int) string {
	for _, path := range paths {
		v, ok := dig(raw, path)
		if !ok || v == nil {
			continue
		}
		s := cast.ToString(v)
		if s == "" {
			continue
		}
		if maxLen > 0 {
			if runes := []rune(s); len(runes) > maxLen {
				s = string(runes[:maxLen])
			}
		}
		return s
	}
	return ""
}

// pickInt 取第一条命中的非零整数，全部缺失或解析失败时返回0
func pickInt(raw map[string]any, paths []string) int {
	for _, path := range paths {
		v, ok := dig(raw, path)
		if !ok || v == nil {
			continue
		}
		if n, err := cast.ToIntE(v); err == nil && n != 0 {
			return n
		}
	}
	return 0
}

// pickTime 解析秒级时间戳，毫秒级自动降级，缺失返回nil
func pickTime(raw map[string]any, paths []string) *time.Time {
	for _, path := range paths {
		v, ok := dig(raw, path)
		if !ok || v == nil {
			continue
		}
		sec, err := cast.ToInt64E(v)
		if err != nil || sec <= 0 {
			continue
		}
		if sec > 1e12 {
			sec = sec / 1000
		}
		t := time.Unix(sec, 0)
		return &t
	}
	return nil
}
