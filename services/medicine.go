package services

import (
	"errors"
	"fmt"
	"log"

	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ValidateMedicineInput(data map[string]interface{}) error {
	fields := []string{"name", "genericName", "form", "strength", "manufacturer"}
	for _, f := range fields {
		if err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString:", err)
			return err
		}
	}
	return nil
}

/*
* Master catalogue row, shared across tenants. Names are unique.
 */
func CreateMedicine(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := ValidateMedicineInput(data); err != nil {
		return nil, err
	}
	coll := db.OpenCollections(util.MedicineCollection)
	existing := make(map[string]interface{})
	err := db.FindOne(c, coll, bson.M{"name": data["name"]}, existing)
	if err == nil {
		return nil, errors.New(util.MEDICINE_ALREADY_EXISTS_WITH_THIS_NAME)
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error from FindOne while checking medicine name:", err)
		return nil, err
	}

	code := util.GenerateCode(util.MedicineCodePrefix)
	medicine := bson.M{
		"code":          code,
		"name":          data["name"],
		"genericName":   data["genericName"],
		"form":          data["form"],
		"strength":      data["strength"],
		"manufacturer":  data["manufacturer"],
		"scheduleClass": util.GetString(data["scheduleClass"]),
		"gstPct":        util.ToFloat(data["gstPct"]),
	}
	PrepareCreateMetadata(c, medicine)

	inserted, err := db.CreateOne(c, coll, medicine)
	if err != nil {
		log.Println("Error from CreateOne while creating medicine:", err)
		return nil, err
	}
	log.Println("Inserted medicine:", inserted.InsertedID)
	return map[string]interface{}(medicine), nil
}

func FetchMedicineByCode(c *gin.Context, medicineCode string) (map[string]interface{}, error) {
	return FetchByCode(c, util.MedicineCollection, util.MedicineKey, medicineCode)
}

/*
* List with optional name/genericName search and manufacturer filter.
 */
func FetchAllMedicines(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	if q := c.Query("q"); q != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"genericName": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	if m := c.Query("manufacturer"); m != "" {
		filter["manufacturer"] = m
	}
	coll := db.OpenCollections(util.MedicineCollection)
	medicines, err := db.FindAll(c, coll, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		log.Println("Error from FindAll while listing medicines:", err)
		return nil, err
	}
	return medicines, nil
}

var medicineUpdatableFields = []string{"name", "genericName", "form", "strength", "manufacturer", "scheduleClass", "gstPct"}

func UpdateMedicineByCode(c *gin.Context, medicineCode string, data map[string]interface{}) (string, error) {
	update := bson.M{}
	for _, f := range medicineUpdatableFields {
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

	coll := db.OpenCollections(util.MedicineCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": medicineCode}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from UpdateOne while updating medicine:", err)
		return "", err
	}
	log.Println("Updated medicines:", updated.ModifiedCount)
	RefreshCache(c, util.MedicineKey, medicineCode, nil)
	return "updated", nil
}

func DeleteMedicineByCode(c *gin.Context, medicineCode string) (string, error) {
	coll := db.OpenCollections(util.MedicineCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": medicineCode})
	if err != nil {
		log.Println("Error from DeleteOne while deleting medicine:", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(util.RECORD_NOT_FOUND)
	}
	RefreshCache(c, util.MedicineKey, medicineCode, nil)
	return fmt.Sprintf("medicine %s deleted successfully", medicineCode), nil
}
