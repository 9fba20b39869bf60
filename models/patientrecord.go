package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatientRecord is the single upsertable document per patient
// aggregating medical history arrays. Uniqueness on patientId is
// enforced by a migration-added index.
type PatientRecord struct {
	ID            primitive.ObjectID       `json:"id" bson:"_id,omitempty"`
	PatientID     string                   `json:"patientId" bson:"patientId"`
	TenantID      string                   `json:"tenantId" bson:"tenantId"`
	BloodGroup    string                   `json:"bloodGroup" bson:"bloodGroup"`
	Allergies     []string                 `json:"allergies" bson:"allergies"`
	Conditions    []string                 `json:"conditions" bson:"conditions"`
	Medications   []string                 `json:"medications" bson:"medications"`
	Immunizations []string                 `json:"immunizations" bson:"immunizations"`
	Visits        []map[string]interface{} `json:"visits" bson:"visits"`
	CreatedAt     time.Time                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string                   `json:"updatedBy" bson:"updatedBy"`
}
