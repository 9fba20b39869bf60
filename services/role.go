package services

import (
	"context"
	"errors"
	"log"

	db "MediFlow360/config/db"
	"MediFlow360/role"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* SeedDefaultRoles inserts the built-in roles on first boot; existing
* role codes are left untouched.
 */
func SeedDefaultRoles(ctx context.Context) {
	coll := db.OpenCollections(util.RoleCollection)
	for _, r := range role.Defaults() {
		count, err := db.CountDocs(ctx, coll, bson.M{"roleCode": r.RoleCode})
		if err != nil {
			log.Println("Error while checking role", r.RoleCode, ":", err)
			continue
		}
		if count > 0 {
			continue
		}
		if _, err := db.CreateOne(ctx, coll, r); err != nil {
			log.Println("Error while seeding role", r.RoleCode, ":", err)
		}
	}
}

func CreateRole(c *gin.Context, data map[string]interface{}) (string, error) {
	for _, f := range []string{"roleName", "roleCode"} {
		if err := util.GetTrimmedString(data, f); err != nil {
			return "", err
		}
	}
	coll := db.OpenCollections(util.RoleCollection)
	existing := make(map[string]interface{})
	err := db.FindOne(c, coll, bson.M{"roleCode": data["roleCode"]}, existing)
	if err == nil {
		return "", errors.New(util.ROLE_NAME_ALREADY_EXISTS)
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error from FindOne while checking role:", err)
		return "", err
	}
	if _, ok := data["privileges"]; !ok {
		data["privileges"] = []interface{}{}
	}
	PrepareCreateMetadata(c, data)
	if _, err := db.CreateOne(c, coll, data); err != nil {
		log.Println("Error from CreateOne while creating role:", err)
		return "", err
	}
	return "role created", nil
}

func FetchAllRoles(c *gin.Context) ([]interface{}, error) {
	coll := db.OpenCollections(util.RoleCollection)
	roles, err := db.FindAll(c, coll, nil, nil)
	if err != nil {
		log.Println("Error from FindAll while listing roles:", err)
		return nil, err
	}
	return roles, nil
}

func UpdateRolePrivileges(c *gin.Context, roleCode string, data map[string]interface{}) (string, error) {
	privileges, ok := data["privileges"]
	if !ok {
		return "", errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)
	}
	PrepareUpdateMetadata(c, data)
	coll := db.OpenCollections(util.RoleCollection)
	update := bson.M{"$set": bson.M{
		"privileges": privileges,
		"updatedAt":  data["updatedAt"],
		"updatedBy":  data["updatedBy"],
	}}
	updated, err := db.UpdateOne(c, coll, bson.M{"roleCode": roleCode}, update)
	if err != nil {
		log.Println("Error from UpdateOne while updating role:", err)
		return "", err
	}
	log.Println("Updated roles:", updated.ModifiedCount)
	RefreshCache(c, util.RoleKey, roleCode, nil)
	return "updated", nil
}
