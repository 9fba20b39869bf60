package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prescription statuses.
const (
	PrescriptionIssued             = "issued"
	PrescriptionPartiallyDispensed = "partially_dispensed"
	PrescriptionDispensed          = "dispensed"
)

type Frequency struct {
	Morning   bool `json:"morning" bson:"morning"`
	Afternoon bool `json:"afternoon" bson:"afternoon"`
	Night     bool `json:"night" bson:"night"`
}

type PrescriptionItem struct {
	MedicineCode string    `json:"medicineCode" bson:"medicineCode"`
	Dosage       string    `json:"dosage" bson:"dosage"`
	Frequency    Frequency `json:"frequency" bson:"frequency"`
	Days         int       `json:"days" bson:"days"`
	Quantity     int       `json:"quantity" bson:"quantity"`
	Instructions string    `json:"instructions" bson:"instructions"`
	IsDispensed  bool      `json:"isDispensed" bson:"isDispensed"`
}

type Prescription struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	PatientID     string             `json:"patientId" bson:"patientId"`
	DoctorID      string             `json:"doctorId" bson:"doctorId"`
	TenantID      string             `json:"tenantId" bson:"tenantId"`
	AppointmentID string             `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Items         []PrescriptionItem `json:"items" bson:"items"`
	Status        string             `json:"status" bson:"status"`
	Notes         string             `json:"notes" bson:"notes"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string             `json:"updatedBy" bson:"updatedBy"`
}
