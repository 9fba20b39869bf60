package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceRow is one tenant price-list entry. The effective price for a
// medicine is the row with the latest effectiveFrom not in the future.
type PriceRow struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TenantID      string             `json:"tenantId" bson:"tenantId"`
	MedicineCode  string             `json:"medicineCode" bson:"medicineCode"`
	Price         float64            `json:"price" bson:"price"`
	DiscountPct   float64            `json:"discountPct" bson:"discountPct"`
	EffectiveFrom string             `json:"effectiveFrom" bson:"effectiveFrom"` // yyyy-mm-dd
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
}
