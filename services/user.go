package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var userRoles = map[string]bool{
	"ADMIN":          true,
	"DOCTOR":         true,
	"PHARMACY_STAFF": true,
	"DISTRIBUTOR":    true,
	"PATIENT":        true,
}

func ValidateUserInput(data map[string]interface{}) error {
	fields := []string{"name", "email", "phoneNo", "password", "roleCode"}
	for _, f := range fields {
		if err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString:", err)
			return err
		}
	}
	roleCode := strings.ToUpper(data["roleCode"].(string))
	if !userRoles[roleCode] {
		return fmt.Errorf("unknown roleCode: %s", roleCode)
	}
	data["roleCode"] = roleCode
	data["email"] = strings.ToLower(data["email"].(string))
	return nil
}

/*
* Validate input, reject duplicates on email/phone, hash the password
* and insert the user scoped to the caller's tenant. Patients may
* self-register; every other role comes in through an admin route.
 */
func CreateUser(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := ValidateUserInput(data); err != nil {
		return nil, err
	}
	duplicate, err := IsDuplicateUser(c, data["email"].(string), data["phoneNo"].(string))
	if err != nil {
		log.Println("Error from IsDuplicateUser:", err)
		return nil, err
	}
	if duplicate {
		return nil, errors.New(util.USER_ALREADY_EXISTS)
	}

	hash, err := HashPassword(data["password"].(string))
	if err != nil {
		log.Println("Error while hashing password:", err)
		return nil, err
	}

	code := util.GenerateCode(util.UserCodePrefix)
	user := bson.M{
		"code":          code,
		"name":          data["name"],
		"email":         data["email"],
		"phoneNo":       data["phoneNo"],
		"password":      hash,
		"roleCode":      data["roleCode"],
		"tenantId":      util.GetString(data["tenantId"]),
		"tenantType":    util.GetString(data["tenantType"]),
		"speciality":    util.GetString(data["speciality"]),
		"loginAttempts": 0,
		"isBlocked":     false,
		"isActive":      true,
	}
	if user["tenantId"] == "" {
		user["tenantId"] = c.GetString("tenantId")
		user["tenantType"] = c.GetString("tenantType")
	}
	PrepareCreateMetadata(c, user)

	coll := db.OpenCollections(util.UserCollection)
	inserted, err := db.CreateOne(c, coll, user)
	if err != nil {
		log.Println("Error from CreateOne while creating user:", err)
		return nil, err
	}
	log.Println("Inserted user:", inserted.InsertedID)
	RecordActivity(c, "user", "create", code, util.GetString(data["name"]))

	delete(user, "password")
	return map[string]interface{}(user), nil
}

func FetchUserByCode(c *gin.Context, userCode string) (map[string]interface{}, error) {
	user, err := FetchByCode(c, util.UserCollection, util.UserKey, userCode)
	if err != nil {
		return nil, err
	}
	if err := CheckTenantOwnership(c, user); err != nil {
		// patients may read their own profile across tenant scoping
		if c.GetString("code") != userCode {
			return nil, err
		}
	}
	delete(user, "password")
	return user, nil
}

func FetchAllUsers(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if roleCode := c.Query("roleCode"); roleCode != "" {
		filter["roleCode"] = strings.ToUpper(roleCode)
	}
	coll := db.OpenCollections(util.UserCollection)
	users, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while listing users:", err)
		return nil, err
	}
	for _, u := range users {
		if doc, ok := u.(map[string]interface{}); ok {
			delete(doc, "password")
		}
	}
	return users, nil
}

var userUpdatableFields = []string{"name", "phoneNo", "speciality", "isActive"}

/*
* Partial update. Only profile fields move through here; password and
* role changes have their own routes.
 */
func UpdateUserByCode(c *gin.Context, userCode string, data map[string]interface{}) (string, error) {
	update := bson.M{}
	for _, f := range userUpdatableFields {
		if v, ok := data[f]; ok {
			util.TrimIfExists(data, f)
			update[f] = v
		}
	}
	if len(update) == 0 {
		return "", errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)
	}
	user, err := FetchByCode(c, util.UserCollection, util.UserKey, userCode)
	if err != nil {
		return "", err
	}
	if c.GetString("code") != userCode {
		if err := CheckTenantOwnership(c, user); err != nil {
			return "", err
		}
	}
	update["updatedAt"] = time.Now()
	update["updatedBy"] = c.GetString("code")

	coll := db.OpenCollections(util.UserCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": userCode}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from UpdateOne while updating user:", err)
		return "", err
	}
	log.Println("Updated users:", updated.ModifiedCount)
	RefreshCache(c, util.UserKey, userCode, nil)
	RecordActivity(c, "user", "update", userCode, "")
	return "updated", nil
}

func DeleteUserByCode(c *gin.Context, userCode string) (string, error) {
	user, err := FetchByCode(c, util.UserCollection, util.UserKey, userCode)
	if err != nil {
		return "", err
	}
	if err := CheckTenantOwnership(c, user); err != nil {
		return "", err
	}
	coll := db.OpenCollections(util.UserCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": userCode})
	if err != nil {
		log.Println("Error from DeleteOne while deleting user:", err)
		return "", err
	}
	log.Println("Deleted users:", deleted.DeletedCount)
	RefreshCache(c, util.UserKey, userCode, nil)
	RecordActivity(c, "user", "delete", userCode, "")
	return fmt.Sprintf("user %s deleted successfully", userCode), nil
}
