package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tenant is a Hospital, Pharmacy or Distributor org unit. Pharmacies
// may carry a hospitalId link; distributors serve pharmacies.
type Tenant struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code       string             `json:"code" bson:"code"`
	Type       string             `json:"type" bson:"type"` // hospital | pharmacy | distributor
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	PhoneNo    string             `json:"phoneNo" bson:"phoneNo"`
	Address    string             `json:"address" bson:"address"`
	LicenseNo  string             `json:"licenseNo" bson:"licenseNo"`
	HospitalID string             `json:"hospitalId,omitempty" bson:"hospitalId,omitempty"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy  string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string             `json:"updatedBy" bson:"updatedBy"`
}
