package services

import (
	"errors"
	"log"
	"time"

	cache "MediFlow360/config/cache"
	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var recordArrayFields = []string{"allergies", "conditions", "medications", "immunizations", "visits"}

/*
* MergeRecordArrays appends the incoming entries onto the existing
* arrays, dropping exact string duplicates. Visits are kept verbatim.
 */
func MergeRecordArrays(existing, incoming map[string]interface{}) map[string][]interface{} {
	merged := map[string][]interface{}{}
	for _, field := range recordArrayFields {
		current, _ := NormalizeSlice(existing[field])
		additions, _ := NormalizeSlice(incoming[field])
		if field == "visits" {
			merged[field] = append(current, additions...)
			continue
		}
		seen := map[string]bool{}
		out := []interface{}{}
		for _, v := range current {
			key := util.GetString(v)
			if !seen[key] {
				seen[key] = true
				out = append(out, v)
			}
		}
		for _, v := range additions {
			key := util.GetString(v)
			if !seen[key] {
				seen[key] = true
				out = append(out, v)
			}
		}
		merged[field] = out
	}
	return merged
}

func canTouchRecord(c *gin.Context, patientId string) error {
	roleCode := c.GetString("roleCode")
	if roleCode == "PATIENT" && c.GetString("code") != patientId {
		return errors.New(util.INVALID_USER_TO_ACCESS)
	}
	return nil
}

/*
* UpsertPatientRecord merges history arrays into the single document
* per patient. The unique index added by migration 001 backs the
* one-record invariant.
 */
func UpsertPatientRecord(c *gin.Context, patientId string, data map[string]interface{}) (map[string]interface{}, error) {
	if err := canTouchRecord(c, patientId); err != nil {
		return nil, err
	}
	if _, err := FetchByCode(c, util.UserCollection, util.UserKey, patientId); err != nil {
		log.Println("Error while resolving patient:", err)
		return nil, err
	}

	coll := db.OpenCollections(util.PatientRecordCollection)
	existing := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"patientId": patientId}, existing); err != nil {
		existing = map[string]interface{}{}
	}
	merged := MergeRecordArrays(existing, data)

	set := bson.M{
		"patientId": patientId,
		"updatedAt": time.Now(),
		"updatedBy": c.GetString("code"),
	}
	for field, values := range merged {
		set[field] = values
	}
	if bloodGroup := util.GetString(data["bloodGroup"]); bloodGroup != "" {
		set["bloodGroup"] = bloodGroup
	}
	if len(existing) == 0 {
		set["tenantId"] = c.GetString("tenantId")
		set["createdAt"] = time.Now()
	}

	if _, err := db.UpsertOne(c, coll, bson.M{"patientId": patientId}, bson.M{"$set": set}); err != nil {
		log.Println("Error from UpsertOne while upserting patient record:", err)
		return nil, err
	}
	RefreshCache(c, util.PatientRecordKey, patientId, nil)
	RecordActivity(c, "patientRecord", "upsert", patientId, "")

	record := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"patientId": patientId}, record); err != nil {
		return nil, err
	}
	return record, nil
}

func FetchPatientRecord(c *gin.Context, patientId string) (map[string]interface{}, error) {
	if err := canTouchRecord(c, patientId); err != nil {
		return nil, err
	}
	key := util.PatientRecordKey + patientId
	if cached, exists, err := cache.GetCache(c, key); exists && err == nil {
		return cached, nil
	}
	coll := db.OpenCollections(util.PatientRecordCollection)
	record := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"patientId": patientId}, record); err != nil {
		log.Println("Error from FindOne while fetching patient record:", err)
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	if err := cache.SetCache(c, key, record); err != nil {
		log.Println("Error while caching patient record:", err)
	}
	return record, nil
}
