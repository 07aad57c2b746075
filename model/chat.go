package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
	SentAt  string `json:"sent_at" bson:"sent_at"`
}

type ChatSession struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id"`
	UserLogin string             `json:"user_login" bson:"user_login"`
	Messages  []ChatMessage      `json:"messages" bson:"messages"`
	CreatedAt string             `json:"created_at" bson:"created_at"`
	UpdatedAt string             `json:"updated_at" bson:"updated_at"`
}
