package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report request kinds and statuses.
const (
	ReportSalesSummary   = "sales_summary"
	ReportTopMedicines   = "top_medicines"
	ReportOrderStatus    = "order_status"
	ReportStockValuation = "stock_valuation"

	ReportPending    = "pending"
	ReportProcessing = "processing"
	ReportCompleted  = "completed"
	ReportFailed     = "failed"
)

// ReportRequest is an async aggregation job picked up by the cron
// worker; result holds the pipeline output once completed.
type ReportRequest struct {
	ID          primitive.ObjectID       `json:"id" bson:"_id,omitempty"`
	Code        string                   `json:"code" bson:"code"`
	TenantID    string                   `json:"tenantId" bson:"tenantId"`
	Kind        string                   `json:"kind" bson:"kind"`
	Params      map[string]interface{}   `json:"params" bson:"params"`
	Status      string                   `json:"status" bson:"status"`
	Result      []map[string]interface{} `json:"result,omitempty" bson:"result,omitempty"`
	Error       string                   `json:"error,omitempty" bson:"error,omitempty"`
	RequestedAt time.Time                `json:"requestedAt" bson:"requestedAt"`
	CompletedAt *time.Time               `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedBy   string                   `json:"createdBy" bson:"createdBy"`
}
