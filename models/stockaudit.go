package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockAudit statuses.
const (
	AuditDraft   = "draft"
	AuditApplied = "applied"
)

// AuditLine compares a counted quantity against the recorded on-hand
// quantity for one inventory batch at audit time.
type AuditLine struct {
	InventoryCode string  `json:"inventoryCode" bson:"inventoryCode"`
	MedicineCode  string  `json:"medicineCode" bson:"medicineCode"`
	Expected      int     `json:"expected" bson:"expected"`
	Counted       int     `json:"counted" bson:"counted"`
	Variance      int     `json:"variance" bson:"variance"`
	VarianceValue float64 `json:"varianceValue" bson:"varianceValue"`
}

type StockAudit struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code               string             `json:"code" bson:"code"`
	TenantID           string             `json:"tenantId" bson:"tenantId"`
	Lines              []AuditLine        `json:"lines" bson:"lines"`
	TotalVariance      int                `json:"totalVariance" bson:"totalVariance"`
	TotalVarianceValue float64            `json:"totalVarianceValue" bson:"totalVarianceValue"`
	Status             string             `json:"status" bson:"status"`
	AppliedAt          *time.Time         `json:"appliedAt,omitempty" bson:"appliedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy          string             `json:"createdBy" bson:"createdBy"`
}
