package services

import (
	"errors"
	"log"

	db "MediFlow360/config/db"
	"MediFlow360/models"
	"MediFlow360/realtime"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* Each prescription item needs a medicine that exists in the master
* catalogue and a computable quantity. Quantity defaults to
* dosesPerDay * days when omitted.
 */
func ValidatePrescriptionItems(raw interface{}) ([]map[string]interface{}, error) {
	entries, err := NormalizeSlice(raw)
	if err != nil || len(entries) == 0 {
		return nil, errors.New(util.ITEMS_MUST_BE_ARRAY)
	}
	items := []map[string]interface{}{}
	for _, e := range entries {
		item, ok := e.(map[string]interface{})
		if !ok {
			return nil, errors.New(util.ITEMS_MUST_BE_ARRAY)
		}
		if err := util.GetTrimmedString(item, "medicineCode"); err != nil {
			return nil, err
		}
		days := util.ToInt(item["days"])
		if days <= 0 {
			days = 1
		}
		item["days"] = days
		if util.ToInt(item["quantity"]) <= 0 {
			item["quantity"] = DosesPerDay(item["frequency"]) * days
		}
		if util.ToInt(item["quantity"]) <= 0 {
			return nil, errors.New(util.QUANTITY_MUST_BE_POSITIVE)
		}
		item["isDispensed"] = false
		items = append(items, item)
	}
	return items, nil
}

/*
* DosesPerDay counts the ticked frequency flags; an absent frequency
* means once a day.
 */
func DosesPerDay(raw interface{}) int {
	freq, ok := raw.(map[string]interface{})
	if !ok {
		return 1
	}
	doses := 0
	for _, part := range []string{"morning", "afternoon", "night"} {
		if v, _ := freq[part].(bool); v {
			doses++
		}
	}
	if doses == 0 {
		return 1
	}
	return doses
}

/*
* Doctor issues a prescription for a patient; the item list is fixed
* once dispensing starts. The back-ref to an appointment is optional.
 */
func CreatePrescription(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.GetTrimmedString(data, "patientId"); err != nil {
		return nil, err
	}
	items, err := ValidatePrescriptionItems(data["items"])
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if _, err := FetchMedicineByCode(c, item["medicineCode"].(string)); err != nil {
			log.Println("Error while resolving prescribed medicine:", err)
			return nil, err
		}
	}

	doctorId := c.GetString("code")
	code := util.GenerateCode(util.PrescriptionCodePrefix)
	prescription := bson.M{
		"code":          code,
		"patientId":     data["patientId"],
		"doctorId":      doctorId,
		"tenantId":      c.GetString("tenantId"),
		"appointmentId": util.GetString(data["appointmentId"]),
		"items":         items,
		"status":        models.PrescriptionIssued,
		"notes":         util.GetString(data["notes"]),
	}
	PrepareCreateMetadata(c, prescription)

	coll := db.OpenCollections(util.PrescriptionCollection)
	inserted, err := db.CreateOne(c, coll, prescription)
	if err != nil {
		log.Println("Error from CreateOne while creating prescription:", err)
		return nil, err
	}
	log.Println("Inserted prescription:", inserted.InsertedID)

	if appointmentId := util.GetString(data["appointmentId"]); appointmentId != "" {
		appColl := db.OpenCollections(util.AppointmentCollection)
		if _, err := db.UpdateOne(c, appColl, bson.M{"code": appointmentId},
			bson.M{"$set": bson.M{"prescriptionId": code}}); err != nil {
			log.Println("Error while back-referencing appointment:", err)
		}
		RefreshCache(c, util.AppointmentKey, appointmentId, nil)
	}

	RecordActivity(c, "prescription", "create", code, "")
	Notify(c, util.GetString(data["patientId"]), "prescription", "New prescription",
		"Your doctor issued a new prescription", code)
	return map[string]interface{}(prescription), nil
}

func FetchPrescriptionByCode(c *gin.Context, prescriptionId string) (map[string]interface{}, error) {
	prescription, err := FetchByCode(c, util.PrescriptionCollection, util.PrescriptionKey, prescriptionId)
	if err != nil {
		return nil, err
	}
	code := c.GetString("code")
	if code == util.GetString(prescription["patientId"]) || code == util.GetString(prescription["doctorId"]) {
		return prescription, nil
	}
	// pharmacy staff fetch prescriptions from other tenants to dispense
	if c.GetString("roleCode") == "PHARMACY_STAFF" {
		return prescription, nil
	}
	if err := CheckTenantOwnership(c, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

func FetchAllPrescriptions(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	roleCode := c.GetString("roleCode")
	code := c.GetString("code")
	switch roleCode {
	case "PATIENT":
		filter["patientId"] = code
	case "DOCTOR":
		filter["doctorId"] = code
	case "PHARMACY_STAFF":
		if patientId := c.Query("patientId"); patientId != "" {
			filter["patientId"] = patientId
		}
	default:
		filter = TenantFilter(c, filter)
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	coll := db.OpenCollections(util.PrescriptionCollection)
	prescriptions, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while listing prescriptions:", err)
		return nil, err
	}
	return prescriptions, nil
}

/*
* Only notes can change after issue, and only by the issuing doctor.
* The item list is immutable once any item is dispensed.
 */
func UpdatePrescriptionNotes(c *gin.Context, prescriptionId string, data map[string]interface{}) (string, error) {
	prescription, err := FetchPrescriptionByCode(c, prescriptionId)
	if err != nil {
		return "", err
	}
	if c.GetString("code") != util.GetString(prescription["doctorId"]) {
		return "", errors.New(util.INVALID_USER_TO_ACCESS)
	}
	if err := util.GetTrimmedString(data, "notes"); err != nil {
		return "", errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)
	}
	PrepareUpdateMetadata(c, data)
	coll := db.OpenCollections(util.PrescriptionCollection)
	update := bson.M{"$set": bson.M{
		"notes":     data["notes"],
		"updatedAt": data["updatedAt"],
		"updatedBy": data["updatedBy"],
	}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": prescriptionId}, update); err != nil {
		log.Println("Error from UpdateOne while updating prescription:", err)
		return "", err
	}
	RefreshCache(c, util.PrescriptionKey, prescriptionId, nil)
	return "updated", nil
}

/*
* MarkItemsDispensed flips the dispensed flags for the given medicine
* codes and rolls the prescription status forward.
 */
func MarkItemsDispensed(c *gin.Context, prescriptionId string, medicineCodes map[string]bool) error {
	prescription, err := FetchPrescriptionByCode(c, prescriptionId)
	if err != nil {
		return err
	}
	entries, err := NormalizeSlice(prescription["items"])
	if err != nil {
		return errors.New(util.ITEMS_MUST_BE_ARRAY)
	}
	allDispensed := true
	anyDispensed := false
	items := []map[string]interface{}{}
	for _, e := range entries {
		item, ok := e.(map[string]interface{})
		if !ok {
			return errors.New(util.ITEMS_MUST_BE_ARRAY)
		}
		if medicineCodes[util.GetString(item["medicineCode"])] {
			item["isDispensed"] = true
		}
		if d, _ := item["isDispensed"].(bool); d {
			anyDispensed = true
		} else {
			allDispensed = false
		}
		items = append(items, item)
	}
	status := models.PrescriptionIssued
	if allDispensed {
		status = models.PrescriptionDispensed
	} else if anyDispensed {
		status = models.PrescriptionPartiallyDispensed
	}

	coll := db.OpenCollections(util.PrescriptionCollection)
	update := bson.M{"$set": bson.M{"items": items, "status": status}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": prescriptionId}, update); err != nil {
		log.Println("Error from UpdateOne while marking items dispensed:", err)
		return err
	}
	RefreshCache(c, util.PrescriptionKey, prescriptionId, nil)
	realtime.Emit(c, realtime.UserRoom(util.GetString(prescription["patientId"])), "prescription", bson.M{
		"code":   prescriptionId,
		"status": status,
	})
	return nil
}
