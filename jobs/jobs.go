package jobs

import (
	"context"
	"log"
	"time"

	db "MediFlow360/config/db"
	"MediFlow360/realtime"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

func StartSchedulers() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily doctor timeslot scheduler...")
		RunTodayScheduler()
	})

	// Runs every day at 00:30 AM
	c.AddFunc("30 0 * * *", func() {
		log.Println("Running expiry scan...")
		RunExpiryScan(context.Background())
	})

	// Report worker, every minute
	c.AddFunc("* * * * *", func() {
		services.ProcessPendingReports(context.Background())
	})

	// Low stock sweep, Monday 06:00
	c.AddFunc("0 6 * * 1", func() {
		log.Println("Running weekly low-stock sweep...")
		RunLowStockSweep(context.Background())
	})

	c.Start()
}

func RunTodayScheduler() {
	today := time.Now()
	doctors := GetAllDoctors()

	for _, d := range doctors {
		doctor, ok := d.(map[string]interface{})
		if !ok {
			log.Println("Invalid doctor record:", d)
			continue
		}
		doctorId := util.GetString(doctor["code"])
		if doctorId == "" {
			log.Println("Invalid doctorId:", doctor)
			continue
		}
		tenantId := util.GetString(doctor["tenantId"])
		if err := CreateDailySlots(context.Background(), doctor, doctorId, tenantId, today); err != nil {
			log.Println("Error generating slots for doctor:", doctorId, err)
		}
	}
}

func GetAllDoctors() []interface{} {
	coll := db.OpenCollections(util.UserCollection)
	docs, err := db.FindAll(context.Background(), coll, bson.M{"roleCode": "DOCTOR", "isActive": true}, nil)
	if err != nil {
		log.Println("Error from the findAll function:", err)
	}
	return docs
}

func CreateDailySlots(ctx context.Context, doctor map[string]interface{}, doctorId, tenantId string, date time.Time) error {

	weekday := date.Weekday().String()
	dateStr := date.Format("2006-01-02")

	coll := db.OpenCollections(util.DoctorSlotCollection)
	count, err := db.CountDocs(ctx, coll, bson.M{"doctorId": doctorId, "date": dateStr})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	isWeeklyOff := (weekday == "Saturday" || weekday == "Sunday")
	isLeave := IsDoctorOnLeave(doctor, dateStr)

	slots := []map[string]interface{}{}
	if !isWeeklyOff && !isLeave {
		slots = Generate30MinSlots("10:00", "18:00")
	}
	record := bson.M{
		"doctorId":    doctorId,
		"tenantId":    tenantId,
		"date":        dateStr,
		"day":         weekday,
		"isWeeklyOff": isWeeklyOff,
		"isLeave":     isLeave,
		"slots":       slots,
		"createdAt":   time.Now(),
	}
	_, err = db.CreateOne(ctx, coll, record)
	return err
}

func IsDoctorOnLeave(doctor map[string]interface{}, date string) bool {
	raw, err := services.NormalizeSlice(doctor["leaveDates"])
	if err != nil {
		return false
	}
	for _, v := range raw {
		if util.GetString(v) == date {
			return true
		}
	}
	return false
}

func Generate30MinSlots(start string, end string) []map[string]interface{} {
	layout := "15:04"
	startTime, _ := time.Parse(layout, start)
	endTime, _ := time.Parse(layout, end)

	slots := []map[string]interface{}{}

	for startTime.Before(endTime) {
		slotEnd := startTime.Add(30 * time.Minute)

		slots = append(slots, map[string]interface{}{
			"start":       startTime.Format(layout),
			"end":         slotEnd.Format(layout),
			"isAvailable": true,
			"isBooked":    false,
			"patientId":   "",
		})
		startTime = slotEnd
	}
	return slots
}

/*
* RunExpiryScan flags batches expiring within 30 days so inventory
* reads can surface them, and tells each affected tenant once.
 */
func RunExpiryScan(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")

	coll := db.OpenCollections(util.InventoryCollection)
	filter := bson.M{
		"isExpiring": bson.M{"$ne": true},
		"expiryDate": bson.M{"$gt": today, "$lte": cutoff},
		"quantity":   bson.M{"$gt": 0},
	}
	batches, err := db.FindAll(ctx, coll, filter, nil)
	if err != nil {
		log.Println("Error while scanning expiring batches:", err)
		return
	}
	if len(batches) == 0 {
		return
	}
	if _, err := db.UpdateMany(ctx, coll, filter, bson.M{"$set": bson.M{"isExpiring": true}}); err != nil {
		log.Println("Error while flagging expiring batches:", err)
		return
	}

	perTenant := map[string]int{}
	for _, b := range batches {
		batch, ok := b.(map[string]interface{})
		if !ok {
			continue
		}
		perTenant[util.GetString(batch["tenantId"])]++
	}
	for tenantId, n := range perTenant {
		log.Println("Expiring batches flagged for tenant", tenantId, ":", n)
		realtime.Emit(ctx, realtime.TenantRoom(tenantId), "expiring_stock", bson.M{"count": n})
	}
}

/*
* RunLowStockSweep is the safety net behind the per-sale trigger: it
* re-checks every medicine's on-hand against its threshold in case a
* decrement-time check was missed.
 */
func RunLowStockSweep(ctx context.Context) {
	coll := db.OpenCollections(util.InventoryCollection)
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":       bson.M{"tenantId": "$tenantId", "medicineCode": "$medicineCode"},
			"onHand":    bson.M{"$sum": "$quantity"},
			"threshold": bson.M{"$max": "$thresholdQty"},
		}},
	}
	rows, err := db.Aggregate(ctx, coll, pipeline)
	if err != nil {
		log.Println("Error while aggregating stock levels:", err)
		return
	}
	for _, row := range rows {
		key, ok := row["_id"].(map[string]interface{})
		if !ok {
			continue
		}
		onHand := util.ToInt(row["onHand"])
		threshold := util.ToInt(row["threshold"])
		if !services.NeedsRestock(onHand, threshold) {
			continue
		}
		tenantId := util.GetString(key["tenantId"])
		medicineCode := util.GetString(key["medicineCode"])
		log.Println("Low stock:", medicineCode, "tenant", tenantId, "onHand", onHand)
		realtime.Emit(ctx, realtime.TenantRoom(tenantId), "low_stock", bson.M{
			"medicineCode": medicineCode,
			"onHand":       onHand,
			"threshold":    threshold,
		})

		exists, err := db.CountDocs(ctx, db.OpenCollections(util.OrderCollection),
			services.OpenRestockFilter(tenantId, medicineCode))
		if err != nil || exists > 0 {
			continue
		}
		notification := bson.M{
			"code":      util.GenerateCode(util.NotificationCodePrefix),
			"userCode":  tenantId,
			"kind":      "inventory",
			"title":     "Low stock detected",
			"body":      "Stock of " + medicineCode + " is at or below its threshold",
			"refId":     medicineCode,
			"isRead":    false,
			"createdAt": time.Now(),
		}
		if _, err := db.CreateOne(ctx, db.OpenCollections(util.NotificationCollection), notification); err != nil {
			log.Println("Error while writing low-stock notification:", err)
		}
	}
}
