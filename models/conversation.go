package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Conversation struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	Participants  []string           `json:"participants" bson:"participants"` // exactly two user codes
	LastMessageAt time.Time          `json:"lastMessageAt" bson:"lastMessageAt"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type Message struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code             string             `json:"code" bson:"code"`
	ConversationCode string             `json:"conversationCode" bson:"conversationCode"`
	SenderCode       string             `json:"senderCode" bson:"senderCode"`
	Body             string             `json:"body" bson:"body"`
	SentAt           time.Time          `json:"sentAt" bson:"sentAt"`
	ReadAt           *time.Time         `json:"readAt,omitempty" bson:"readAt,omitempty"`
}
