package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses.
const (
	AppointmentRequested = "requested"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

type Appointment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	PatientID      string             `json:"patientId" bson:"patientId"`
	DoctorID       string             `json:"doctorId" bson:"doctorId"`
	TenantID       string             `json:"tenantId" bson:"tenantId"`
	Date           string             `json:"date" bson:"date"` // yyyy-mm-dd
	Time           string             `json:"time" bson:"time"` // HH:MM slot start
	Reason         string             `json:"reason" bson:"reason"`
	Symptoms       string             `json:"symptoms" bson:"symptoms"`
	Status         string             `json:"status" bson:"status"`
	PrescriptionID string             `json:"prescriptionId,omitempty" bson:"prescriptionId,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
}

// DoctorSlot is one bookable slot in a doctor's generated day sheet.
type DoctorSlot struct {
	Start       string `json:"start" bson:"start"`
	End         string `json:"end" bson:"end"`
	IsAvailable bool   `json:"isAvailable" bson:"isAvailable"`
	IsBooked    bool   `json:"isBooked" bson:"isBooked"`
	PatientID   string `json:"patientId" bson:"patientId"`
}
