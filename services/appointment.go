package services

import (
	"context"
	"errors"
	"log"

	db "MediFlow360/config/db"
	"MediFlow360/models"
	"MediFlow360/realtime"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Allowed appointment status moves. Terminal states have no exits.
 */
var appointmentTransitions = map[string][]string{
	models.AppointmentRequested: {models.AppointmentConfirmed, models.AppointmentCancelled},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled, models.AppointmentNoShow},
}

func ValidAppointmentTransition(from, to string) bool {
	for _, allowed := range appointmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func ValidateAppointmentInput(data map[string]interface{}) error {
	fields := []string{"patientId", "doctorId", "reason", "date", "time"}
	for _, f := range fields {
		if err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString:", err)
			return err
		}
	}
	return nil
}

/*
* Fetch the doctor's generated day sheet and refuse days off.
 */
func fetchDoctorSlotDoc(ctx context.Context, coll *mongo.Collection, filter bson.M) (map[string]interface{}, error) {
	doc := make(map[string]interface{})
	err := db.FindOne(ctx, coll, filter, doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New(util.NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE)
		}
		return nil, err
	}
	if off, _ := doc["isWeeklyOff"].(bool); off {
		return nil, errors.New(util.DOCTOR_WEEKLY_OFF)
	}
	if leave, _ := doc["isLeave"].(bool); leave {
		return nil, errors.New(util.DOCTOR_IS_ON_LEAVE)
	}
	return doc, nil
}

func ExtractSlots(doc map[string]interface{}) ([]map[string]interface{}, error) {
	raw, err := NormalizeSlice(doc["slots"])
	if err != nil {
		return nil, errors.New("invalid slot type found in day sheet")
	}
	slots := []map[string]interface{}{}
	for _, v := range raw {
		slot, ok := v.(map[string]interface{})
		if !ok {
			return nil, errors.New("invalid slot entry found in day sheet")
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func ValidateSlot(slots []map[string]interface{}, start string) error {
	for _, slot := range slots {
		if util.GetString(slot["start"]) != start {
			continue
		}
		if available, _ := slot["isAvailable"].(bool); !available {
			return errors.New(util.SLOT_UNAVAILABLE)
		}
		if booked, _ := slot["isBooked"].(bool); booked {
			return errors.New(util.SLOT_ALREADY_BOOKED)
		}
		return nil
	}
	return errors.New(util.NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE)
}

func bookSlot(ctx context.Context, coll *mongo.Collection, doc map[string]interface{}, start, patientId string) error {
	slots, err := ExtractSlots(doc)
	if err != nil {
		return err
	}
	if err := ValidateSlot(slots, start); err != nil {
		return err
	}
	filter := bson.M{
		"doctorId":    doc["doctorId"],
		"date":        doc["date"],
		"slots.start": start,
	}
	update := bson.M{"$set": bson.M{
		"slots.$.patientId":   patientId,
		"slots.$.isAvailable": false,
		"slots.$.isBooked":    true,
	}}
	if _, err := db.UpdateOne(ctx, coll, filter, update); err != nil {
		log.Println("Error while booking slot:", err)
		return err
	}
	return nil
}

func freeSlot(ctx context.Context, appointment map[string]interface{}) {
	coll := db.OpenCollections(util.DoctorSlotCollection)
	filter := bson.M{
		"doctorId":    appointment["doctorId"],
		"date":        appointment["date"],
		"slots.start": appointment["time"],
	}
	update := bson.M{"$set": bson.M{
		"slots.$.patientId":   "",
		"slots.$.isAvailable": true,
		"slots.$.isBooked":    false,
	}}
	if _, err := db.UpdateOne(ctx, coll, filter, update); err != nil {
		log.Println("Error while freeing slot:", err)
	}
}

/*
* Validate input, normalize the date, check the doctor belongs to the
* caller's tenant, book the slot and insert the appointment in
* requested state. The doctor gets a notification.
 */
func CreateAppointment(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := ValidateAppointmentInput(data); err != nil {
		return nil, err
	}
	date, err := util.NormalizeDate(data["date"].(string))
	if err != nil {
		log.Println("Error from NormalizeDate:", err)
		return nil, err
	}
	doctorId := data["doctorId"].(string)
	patientId := data["patientId"].(string)

	doctor, err := FetchUserByCode(c, doctorId)
	if err != nil {
		log.Println("Error while resolving doctor:", err)
		return nil, err
	}
	tenantId := util.GetString(doctor["tenantId"])

	slotColl := db.OpenCollections(util.DoctorSlotCollection)
	doc, err := fetchDoctorSlotDoc(c, slotColl, bson.M{"doctorId": doctorId, "date": date})
	if err != nil {
		log.Println("Error from fetchDoctorSlotDoc:", err)
		return nil, err
	}
	if err := bookSlot(c, slotColl, doc, data["time"].(string), patientId); err != nil {
		return nil, err
	}

	code := util.GenerateCode(util.AppointmentCodePrefix)
	appointment := bson.M{
		"code":      code,
		"patientId": patientId,
		"doctorId":  doctorId,
		"tenantId":  tenantId,
		"date":      date,
		"time":      data["time"],
		"reason":    data["reason"],
		"symptoms":  util.GetString(data["symptoms"]),
		"status":    models.AppointmentRequested,
	}
	PrepareCreateMetadata(c, appointment)

	coll := db.OpenCollections(util.AppointmentCollection)
	inserted, err := db.CreateOne(c, coll, appointment)
	if err != nil {
		log.Println("Error from CreateOne while creating appointment:", err)
		return nil, err
	}
	log.Println("Inserted appointment:", inserted.InsertedID)

	RecordActivity(c, "appointment", "create", code, date+" "+util.GetString(data["time"]))
	Notify(c, doctorId, "appointment", "New appointment request",
		"Appointment requested for "+date+" "+util.GetString(data["time"]), code)
	realtime.Emit(c, realtime.UserRoom(patientId), "appointment", appointment)
	return map[string]interface{}(appointment), nil
}

func FetchAppointmentByCode(c *gin.Context, appointmentId string) (map[string]interface{}, error) {
	appointment, err := FetchByCode(c, util.AppointmentCollection, util.AppointmentKey, appointmentId)
	if err != nil {
		return nil, err
	}
	code := c.GetString("code")
	if code == util.GetString(appointment["patientId"]) || code == util.GetString(appointment["doctorId"]) {
		return appointment, nil
	}
	if err := CheckTenantOwnership(c, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

/*
* Patients see their own appointments, doctors their own schedule,
* staff and admins the tenant's. Query filters: date, status.
 */
func FetchAllAppointments(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	roleCode := c.GetString("roleCode")
	code := c.GetString("code")
	switch roleCode {
	case "PATIENT":
		filter["patientId"] = code
	case "DOCTOR":
		filter["doctorId"] = code
	default:
		filter = TenantFilter(c, filter)
	}
	if date := c.Query("date"); date != "" {
		normalized, err := util.NormalizeDate(date)
		if err != nil {
			return nil, err
		}
		filter["date"] = normalized
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if doctorId := c.Query("doctorId"); doctorId != "" && roleCode != "DOCTOR" {
		filter["doctorId"] = doctorId
	}
	coll := db.OpenCollections(util.AppointmentCollection)
	appointments, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while listing appointments:", err)
		return nil, err
	}
	return appointments, nil
}

/*
* Move the appointment along the status machine. Completion may attach
* a prescriptionId; cancellation frees the slot.
 */
func UpdateAppointmentStatus(c *gin.Context, appointmentId string, data map[string]interface{}) (string, error) {
	if err := util.GetTrimmedString(data, "status"); err != nil {
		return "", err
	}
	to := data["status"].(string)

	appointment, err := FetchAppointmentByCode(c, appointmentId)
	if err != nil {
		return "", err
	}
	from := util.GetString(appointment["status"])
	if !ValidAppointmentTransition(from, to) {
		log.Printf("Rejected appointment transition %s -> %s", from, to)
		return "", errors.New(util.INVALID_STATUS_TRANSITION)
	}

	update := bson.M{"status": to}
	if to == models.AppointmentCompleted {
		if prescriptionId := util.GetString(data["prescriptionId"]); prescriptionId != "" {
			update["prescriptionId"] = prescriptionId
		}
	}
	PrepareUpdateMetadata(c, data)
	update["updatedAt"] = data["updatedAt"]
	update["updatedBy"] = data["updatedBy"]

	coll := db.OpenCollections(util.AppointmentCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": appointmentId}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from UpdateOne while updating appointment:", err)
		return "", err
	}
	log.Println("Updated appointments:", updated.ModifiedCount)

	if to == models.AppointmentCancelled {
		freeSlot(c, appointment)
	}
	RefreshCache(c, util.AppointmentKey, appointmentId, nil)
	RecordActivity(c, "appointment", to, appointmentId, "")
	realtime.Emit(c, realtime.UserRoom(util.GetString(appointment["patientId"])), "appointment", bson.M{
		"code":   appointmentId,
		"status": to,
	})
	return "updated", nil
}

func DeleteAppointmentByCode(c *gin.Context, appointmentId string) (string, error) {
	appointment, err := FetchAppointmentByCode(c, appointmentId)
	if err != nil {
		return "", err
	}
	if util.GetString(appointment["status"]) == models.AppointmentRequested {
		freeSlot(c, appointment)
	}
	coll := db.OpenCollections(util.AppointmentCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": appointmentId})
	if err != nil {
		log.Println("Error from DeleteOne while deleting appointment:", err)
		return "", err
	}
	log.Println("Deleted appointments:", deleted.DeletedCount)
	RefreshCache(c, util.AppointmentKey, appointmentId, nil)
	return "deleted", nil
}
