package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryItem is one pharmacy-scoped stock batch. On-hand quantity
// for a medicine is the sum over its batches.
type InventoryItem struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	TenantID      string             `json:"tenantId" bson:"tenantId"`
	MedicineCode  string             `json:"medicineCode" bson:"medicineCode"`
	BatchNo       string             `json:"batchNo" bson:"batchNo"`
	ExpiryDate    string             `json:"expiryDate" bson:"expiryDate"` // yyyy-mm-dd
	Quantity      int                `json:"quantity" bson:"quantity"`
	ThresholdQty  int                `json:"thresholdQty" bson:"thresholdQty"`
	RestockQty    int                `json:"restockQty" bson:"restockQty"`
	Mrp           float64            `json:"mrp" bson:"mrp"`
	PurchasePrice float64            `json:"purchasePrice" bson:"purchasePrice"`
	DistributorID string             `json:"distributorId" bson:"distributorId"`
	IsExpiring    bool               `json:"isExpiring" bson:"isExpiring"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string             `json:"updatedBy" bson:"updatedBy"`
}
