package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine is a master catalogue row shared by every tenant. Stock
// levels live in InventoryItem, prices in PriceRow.
type Medicine struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	Name          string             `json:"name" bson:"name"`
	GenericName   string             `json:"genericName" bson:"genericName"`
	Form          string             `json:"form" bson:"form"` // tablet | syrup | injection ...
	Strength      string             `json:"strength" bson:"strength"`
	Manufacturer  string             `json:"manufacturer" bson:"manufacturer"`
	ScheduleClass string             `json:"scheduleClass" bson:"scheduleClass"`
	GstPct        float64            `json:"gstPct" bson:"gstPct"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string             `json:"updatedBy" bson:"updatedBy"`
}
