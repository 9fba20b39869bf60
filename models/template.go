package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template is a stored HTML document with {{key}} placeholders
// substituted at render time.
type Template struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code         string             `json:"code" bson:"code"`
	TenantID     string             `json:"tenantId" bson:"tenantId"`
	Name         string             `json:"name" bson:"name"`
	Kind         string             `json:"kind" bson:"kind"` // invoice | prescription | letter ...
	Html         string             `json:"html" bson:"html"`
	Placeholders []string           `json:"placeholders" bson:"placeholders"` // required keys
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy    string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy    string             `json:"updatedBy" bson:"updatedBy"`
}
