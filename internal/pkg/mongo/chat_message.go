package mongo

import (
	"time"
)

// ChatMessage Agent 对话的单条消息
type ChatMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ChatID    string    `bson:"chat_id" json:"chatId"`
	Role      string    `bson:"role" json:"role"` // user / assistant
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
