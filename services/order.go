package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	db "MediFlow360/config/db"
	"MediFlow360/models"
	"MediFlow360/realtime"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* Allowed order status moves. Cancel is only reachable before the
* order ships.
 */
var orderTransitions = map[string][]string{
	models.OrderPlaced:   {models.OrderAccepted, models.OrderCancelled},
	models.OrderAccepted: {models.OrderShipped, models.OrderCancelled},
	models.OrderShipped:  {models.OrderDelivered},
}

func ValidOrderTransition(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OrderAmount totals qty * unitPrice over the lines.
func OrderAmount(lines []models.OrderLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += float64(l.Qty) * l.UnitPrice
	}
	return total
}

// SalePlan is the planned batch decrement set for one prescription item.
type SalePlan struct {
	MedicineCode string
	Allocations  []Allocation
}

/*
* PlanSaleItems plans every undispensed item before any stock moves.
* An item that cannot be covered refuses the whole dispense, leaving
* every batch untouched.
 */
func PlanSaleItems(items []interface{}, batchesByMedicine map[string][]map[string]interface{}, today string) ([]SalePlan, error) {
	plans := []SalePlan{}
	for _, e := range items {
		item, ok := e.(map[string]interface{})
		if !ok {
			return nil, errors.New(util.ITEMS_MUST_BE_ARRAY)
		}
		if already, _ := item["isDispensed"].(bool); already {
			continue
		}
		medicineCode := util.GetString(item["medicineCode"])
		allocations, err := PlanDispense(batchesByMedicine[medicineCode], util.ToInt(item["quantity"]), today)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", medicineCode, err)
		}
		plans = append(plans, SalePlan{MedicineCode: medicineCode, Allocations: allocations})
	}
	return plans, nil
}

/*
* CreateSaleOrder dispenses a prescription for a patient. All items
* are planned FEFO up front; only once every item is covered are the
* batches decremented, the lines priced from the tenant price list
* (falling back to batch MRP), the items marked dispensed and the
* inflow ledger row written.
 */
func CreateSaleOrder(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.GetTrimmedString(data, "prescriptionId"); err != nil {
		return nil, err
	}
	prescriptionId := data["prescriptionId"].(string)
	prescription, err := FetchPrescriptionByCode(c, prescriptionId)
	if err != nil {
		return nil, err
	}
	patientId := util.GetString(prescription["patientId"])
	tenantId := c.GetString("tenantId")
	today := time.Now().Format("2006-01-02")

	items, err := NormalizeSlice(prescription["items"])
	if err != nil {
		return nil, errors.New(util.ITEMS_MUST_BE_ARRAY)
	}

	batchesByMedicine := map[string][]map[string]interface{}{}
	for _, e := range items {
		item, ok := e.(map[string]interface{})
		if !ok {
			return nil, errors.New(util.ITEMS_MUST_BE_ARRAY)
		}
		if already, _ := item["isDispensed"].(bool); already {
			continue
		}
		medicineCode := util.GetString(item["medicineCode"])
		if _, seen := batchesByMedicine[medicineCode]; seen {
			continue
		}
		batches, err := fetchBatches(c, tenantId, medicineCode)
		if err != nil {
			log.Println("Error while fetching batches for dispense:", err)
			return nil, err
		}
		batchesByMedicine[medicineCode] = batches
	}

	plans, err := PlanSaleItems(items, batchesByMedicine, today)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, errors.New(util.PRESCRIPTION_ALREADY_DISPENSED)
	}

	lines := []models.OrderLine{}
	dispensed := map[string]bool{}
	for _, p := range plans {
		price, priceErr := ResolveEffectivePrice(c, tenantId, p.MedicineCode, today)
		for _, a := range p.Allocations {
			unitPrice := a.UnitPrice
			if priceErr == nil {
				unitPrice = price
			}
			lines = append(lines, models.OrderLine{
				MedicineCode: p.MedicineCode,
				BatchNo:      a.BatchNo,
				Qty:          a.Qty,
				UnitPrice:    unitPrice,
			})
		}
		if err := DecrementStock(c, tenantId, p.MedicineCode, p.Allocations); err != nil {
			return nil, err
		}
		dispensed[p.MedicineCode] = true
	}

	code := util.GenerateCode(util.OrderCodePrefix)
	now := time.Now()
	amount := OrderAmount(lines)
	order := bson.M{
		"code":           code,
		"type":           models.OrderTypeSale,
		"tenantId":       tenantId,
		"patientId":      patientId,
		"prescriptionId": prescriptionId,
		"lines":          lines,
		"amount":         amount,
		"status":         models.OrderPlaced,
		"statusHistory": []bson.M{{
			"status":    models.OrderPlaced,
			"changedAt": now,
			"changedBy": c.GetString("code"),
		}},
		"isAuto": false,
	}
	PrepareCreateMetadata(c, order)

	coll := db.OpenCollections(util.OrderCollection)
	inserted, err := db.CreateOne(c, coll, order)
	if err != nil {
		log.Println("Error from CreateOne while creating sale order:", err)
		return nil, err
	}
	log.Println("Inserted sale order:", inserted.InsertedID)

	if err := MarkItemsDispensed(c, prescriptionId, dispensed); err != nil {
		log.Println("Error while marking prescription items dispensed:", err)
	}
	RecordFinanceEntry(c, models.FinanceRefOrder, code, amount, "sale",
		"dispense of prescription "+prescriptionId)
	RecordActivity(c, "order", "create", code, "sale")
	Notify(c, patientId, "order", "Order created",
		fmt.Sprintf("Your order of %.2f was placed", amount), code)
	return map[string]interface{}(order), nil
}

/*
* CreateRestockOrder is the manual replenishment path pharmacy staff
* use; the automatic one lives in CheckLowStock.
 */
func CreateRestockOrder(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.GetTrimmedString(data, "distributorId"); err != nil {
		return nil, err
	}
	rawLines, err := NormalizeSlice(data["lines"])
	if err != nil || len(rawLines) == 0 {
		return nil, errors.New(util.LINES_MUST_BE_ARRAY)
	}
	lines := []models.OrderLine{}
	for _, l := range rawLines {
		line, ok := l.(map[string]interface{})
		if !ok {
			return nil, errors.New(util.LINES_MUST_BE_ARRAY)
		}
		qty := util.ToInt(line["qty"])
		if qty <= 0 {
			return nil, errors.New(util.QUANTITY_MUST_BE_POSITIVE)
		}
		medicineCode := util.GetString(line["medicineCode"])
		if _, err := FetchMedicineByCode(c, medicineCode); err != nil {
			return nil, err
		}
		lines = append(lines, models.OrderLine{
			MedicineCode: medicineCode,
			BatchNo:      util.GetString(line["batchNo"]),
			Qty:          qty,
			UnitPrice:    util.ToFloat(line["unitPrice"]),
		})
	}

	code := util.GenerateCode(util.OrderCodePrefix)
	now := time.Now()
	order := bson.M{
		"code":          code,
		"type":          models.OrderTypeRestock,
		"tenantId":      c.GetString("tenantId"),
		"distributorId": data["distributorId"],
		"lines":         lines,
		"amount":        OrderAmount(lines),
		"status":        models.OrderPlaced,
		"statusHistory": []bson.M{{
			"status":    models.OrderPlaced,
			"changedAt": now,
			"changedBy": c.GetString("code"),
		}},
		"isAuto": false,
	}
	PrepareCreateMetadata(c, order)

	coll := db.OpenCollections(util.OrderCollection)
	if _, err := db.CreateOne(c, coll, order); err != nil {
		log.Println("Error from CreateOne while creating restock order:", err)
		return nil, err
	}
	RecordActivity(c, "order", "create", code, "restock")
	return map[string]interface{}(order), nil
}

func FetchOrderByCode(c *gin.Context, orderId string) (map[string]interface{}, error) {
	order, err := FetchByCode(c, util.OrderCollection, util.OrderKey, orderId)
	if err != nil {
		return nil, err
	}
	code := c.GetString("code")
	if code == util.GetString(order["patientId"]) {
		return order, nil
	}
	// distributors see restock orders addressed to their tenant
	if c.GetString("roleCode") == "DISTRIBUTOR" &&
		c.GetString("tenantId") == util.GetString(order["distributorId"]) {
		return order, nil
	}
	if err := CheckTenantOwnership(c, order); err != nil {
		return nil, err
	}
	return order, nil
}

func FetchAllOrders(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	roleCode := c.GetString("roleCode")
	switch roleCode {
	case "PATIENT":
		filter["patientId"] = c.GetString("code")
	case "DISTRIBUTOR":
		filter["distributorId"] = c.GetString("tenantId")
		filter["type"] = models.OrderTypeRestock
	default:
		filter = TenantFilter(c, filter)
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if orderType := c.Query("type"); orderType != "" && roleCode != "DISTRIBUTOR" {
		filter["type"] = orderType
	}
	coll := db.OpenCollections(util.OrderCollection)
	orders, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while listing orders:", err)
		return nil, err
	}
	return orders, nil
}

/*
* Walk the order along the status machine, append to statusHistory and
* fan the change out. A delivered restock order is received into
* inventory and written to the ledger as outflow.
 */
func UpdateOrderStatus(c *gin.Context, orderId string, data map[string]interface{}) (string, error) {
	if err := util.GetTrimmedString(data, "status"); err != nil {
		return "", err
	}
	to := data["status"].(string)

	order, err := FetchOrderByCode(c, orderId)
	if err != nil {
		return "", err
	}
	from := util.GetString(order["status"])
	if !ValidOrderTransition(from, to) {
		log.Printf("Rejected order transition %s -> %s", from, to)
		return "", errors.New(util.INVALID_STATUS_TRANSITION)
	}

	now := time.Now()
	change := bson.M{
		"status":    to,
		"changedAt": now,
		"changedBy": c.GetString("code"),
	}
	coll := db.OpenCollections(util.OrderCollection)
	update := bson.M{
		"$set": bson.M{
			"status":    to,
			"updatedAt": now,
			"updatedBy": c.GetString("code"),
		},
		"$push": bson.M{"statusHistory": change},
	}
	updated, err := db.UpdateOne(c, coll, bson.M{"code": orderId}, update)
	if err != nil {
		log.Println("Error from UpdateOne while updating order:", err)
		return "", err
	}
	log.Println("Updated orders:", updated.ModifiedCount)
	RefreshCache(c, util.OrderKey, orderId, nil)

	if to == models.OrderDelivered && util.GetString(order["type"]) == models.OrderTypeRestock {
		if err := ReceiveRestock(c, order); err != nil {
			log.Println("Error while receiving restock order:", err)
		}
		RecordFinanceEntry(c, models.FinanceRefOrder, orderId,
			-util.ToFloat(order["amount"]), "restock", "restock order delivered")
	}

	RecordActivity(c, "order", to, orderId, "")
	if patientId := util.GetString(order["patientId"]); patientId != "" {
		realtime.Emit(c, realtime.UserRoom(patientId), "order", bson.M{
			"code":   orderId,
			"status": to,
		})
	}
	realtime.Emit(c, realtime.TenantRoom(util.GetString(order["tenantId"])), "order", bson.M{
		"code":   orderId,
		"status": to,
	})
	return "updated", nil
}
