package dto

import "time"

// AccountSnapshotDTO 账号时点快照
type AccountSnapshotDTO struct {
	UserID     string    `json:"user_id"`
	Nickname   string    `json:"nickname"`
	AvatarURL  string    `json:"avatar_url"`
	IPLocation string    `json:"ip_location"`
	Followers  int       `json:"followers"`
	Following  int       `json:"following"`
	Liked      int       `json:"liked"`
	Collected  int       `json:"collected"`
	NoteCount  int       `json:"note_count"`
	CapturedAt time.Time `json:"captured_at"`
}

// AccountTrendDTO 快照历史序列
type AccountTrendDTO struct {
	Days      int                   `json:"days"`
	Snapshots []*AccountSnapshotDTO `json:"snapshots"`
}
