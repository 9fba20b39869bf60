package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Finance reference types.
const (
	FinanceRefOrder      = "order"
	FinanceRefAdjustment = "adjustment"
	FinanceRefRefund     = "refund"
)

// FinanceEntry is one signed ledger row: positive amounts are inflow,
// negative amounts outflow. The ledger is append-only.
type FinanceEntry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	TenantID  string             `json:"tenantId" bson:"tenantId"`
	RefType   string             `json:"refType" bson:"refType"`
	RefID     string             `json:"refId" bson:"refId"`
	Amount    float64            `json:"amount" bson:"amount"`
	Category  string             `json:"category" bson:"category"`
	Note      string             `json:"note" bson:"note"`
	EntryDate string             `json:"entryDate" bson:"entryDate"` // yyyy-mm-dd
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy string             `json:"createdBy" bson:"createdBy"`
}
