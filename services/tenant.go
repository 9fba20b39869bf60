package services

import (
	"errors"
	"fmt"
	"log"

	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var tenantTypes = map[string]bool{
	"hospital":    true,
	"pharmacy":    true,
	"distributor": true,
}

func ValidateTenantInput(data map[string]interface{}) error {
	fields := []string{"name", "type", "email", "phoneNo", "address", "licenseNo"}
	for _, f := range fields {
		if err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString:", err)
			return err
		}
	}
	if !tenantTypes[data["type"].(string)] {
		return fmt.Errorf("unknown tenant type: %v", data["type"])
	}
	return nil
}

/*
* Admin only. Pharmacies may carry a hospitalId link; distributors
* stand alone.
 */
func CreateTenant(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := ValidateTenantInput(data); err != nil {
		return nil, err
	}
	code := util.GenerateCode(util.TenantCodePrefix)
	tenant := bson.M{
		"code":      code,
		"type":      data["type"],
		"name":      data["name"],
		"email":     data["email"],
		"phoneNo":   data["phoneNo"],
		"address":   data["address"],
		"licenseNo": data["licenseNo"],
		"isActive":  true,
	}
	if hospitalId := util.GetString(data["hospitalId"]); hospitalId != "" {
		if data["type"] != "pharmacy" {
			return nil, errors.New("hospitalId link is only valid for pharmacies")
		}
		if _, err := FetchTenantByCode(c, hospitalId); err != nil {
			log.Println("Error while resolving linked hospital:", err)
			return nil, err
		}
		tenant["hospitalId"] = hospitalId
	}
	PrepareCreateMetadata(c, tenant)

	coll := db.OpenCollections(util.TenantCollection)
	inserted, err := db.CreateOne(c, coll, tenant)
	if err != nil {
		log.Println("Error from CreateOne while creating tenant:", err)
		return nil, err
	}
	log.Println("Inserted tenant:", inserted.InsertedID)
	return map[string]interface{}(tenant), nil
}

func FetchTenantByCode(c *gin.Context, tenantCode string) (map[string]interface{}, error) {
	return FetchByCode(c, util.TenantCollection, util.TenantKey, tenantCode)
}

func FetchAllTenants(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	if t := c.Query("type"); t != "" {
		filter["type"] = t
	}
	coll := db.OpenCollections(util.TenantCollection)
	tenants, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while listing tenants:", err)
		return nil, err
	}
	return tenants, nil
}

var tenantUpdatableFields = []string{"name", "email", "phoneNo", "address", "licenseNo", "isActive"}

func UpdateTenantByCode(c *gin.Context, tenantCode string, data map[string]interface{}) (string, error) {
	update := bson.M{}
	for _, f := range tenantUpdatableFields {
		if v, ok := data[f]; ok {
			util.TrimIfExists(data, f)
			update[f] = v
		}
	}
	if len(update) == 0 {
		return "", errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)
	}
	PrepareUpdateMetadata(c, data)
	update["updatedAt"] = data["updatedAt"]
	update["updatedBy"] = data["updatedBy"]

	coll := db.OpenCollections(util.TenantCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": tenantCode}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from UpdateOne while updating tenant:", err)
		return "", err
	}
	log.Println("Updated tenants:", updated.ModifiedCount)
	RefreshCache(c, util.TenantKey, tenantCode, nil)
	return "updated", nil
}

func DeleteTenantByCode(c *gin.Context, tenantCode string) (string, error) {
	coll := db.OpenCollections(util.TenantCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": tenantCode})
	if err != nil {
		log.Println("Error from DeleteOne while deleting tenant:", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(util.RECORD_NOT_FOUND)
	}
	RefreshCache(c, util.TenantKey, tenantCode, nil)
	return fmt.Sprintf("tenant %s deleted successfully", tenantCode), nil
}
