package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order types and statuses.
const (
	OrderTypeSale    = "sale"
	OrderTypeRestock = "restock"

	OrderPlaced    = "placed"
	OrderAccepted  = "accepted"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type OrderLine struct {
	MedicineCode string  `json:"medicineCode" bson:"medicineCode"`
	BatchNo      string  `json:"batchNo" bson:"batchNo"`
	Qty          int     `json:"qty" bson:"qty"`
	UnitPrice    float64 `json:"unitPrice" bson:"unitPrice"`
}

type StatusChange struct {
	Status    string    `json:"status" bson:"status"`
	ChangedAt time.Time `json:"changedAt" bson:"changedAt"`
	ChangedBy string    `json:"changedBy" bson:"changedBy"`
}

type Order struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	Type           string             `json:"type" bson:"type"`
	TenantID       string             `json:"tenantId" bson:"tenantId"`
	PatientID      string             `json:"patientId,omitempty" bson:"patientId,omitempty"`
	DistributorID  string             `json:"distributorId,omitempty" bson:"distributorId,omitempty"`
	PrescriptionID string             `json:"prescriptionId,omitempty" bson:"prescriptionId,omitempty"`
	Lines          []OrderLine        `json:"lines" bson:"lines"`
	Amount         float64            `json:"amount" bson:"amount"`
	Status         string             `json:"status" bson:"status"`
	StatusHistory  []StatusChange     `json:"statusHistory" bson:"statusHistory"`
	IsAuto         bool               `json:"isAuto" bson:"isAuto"` // created by low-stock auto-restock
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
}
