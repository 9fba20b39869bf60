package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an append-only per-user message.
type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	UserCode  string             `json:"userCode" bson:"userCode"`
	TenantID  string             `json:"tenantId" bson:"tenantId"`
	Kind      string             `json:"kind" bson:"kind"`
	Title     string             `json:"title" bson:"title"`
	Body      string             `json:"body" bson:"body"`
	RefID     string             `json:"refId,omitempty" bson:"refId,omitempty"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Activity is an append-only tenant event used for dashboards and
// audit display, mirrored over the realtime channel.
type Activity struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	TenantID  string             `json:"tenantId" bson:"tenantId"`
	ActorCode string             `json:"actorCode" bson:"actorCode"`
	Action    string             `json:"action" bson:"action"`
	Resource  string             `json:"resource" bson:"resource"`
	RefID     string             `json:"refId,omitempty" bson:"refId,omitempty"`
	Detail    string             `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
