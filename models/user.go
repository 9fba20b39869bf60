package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	RoleCode      string             `json:"roleCode" bson:"roleCode"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	PhoneNo       string             `json:"phoneNo" bson:"phoneNo"`
	Password      string             `json:"password,omitempty" bson:"password"`
	TenantID      string             `json:"tenantId" bson:"tenantId"`
	TenantType    string             `json:"tenantType" bson:"tenantType"`
	Speciality    string             `json:"speciality,omitempty" bson:"speciality,omitempty"`
	LoginAttempts int                `json:"loginAttempts" bson:"loginAttempts"`
	IsBlocked     bool               `json:"isBlocked" bson:"isBlocked"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string             `json:"updatedBy" bson:"updatedBy"`
}
