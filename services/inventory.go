package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	db "MediFlow360/config/db"
	"MediFlow360/models"
	"MediFlow360/realtime"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ValidateInventoryInput(data map[string]interface{}) error {
	fields := []string{"medicineCode", "batchNo", "expiryDate", "distributorId"}
	for _, f := range fields {
		if err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString:", err)
			return err
		}
	}
	if util.ToInt(data["quantity"]) <= 0 {
		return errors.New(util.QUANTITY_MUST_BE_POSITIVE)
	}
	return nil
}

/*
* One stock batch per document. thresholdQty defaults to 10 and
* restockQty to five times the threshold.
 */
func CreateInventoryItem(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := ValidateInventoryInput(data); err != nil {
		return nil, err
	}
	expiry, err := util.NormalizeDate(data["expiryDate"].(string))
	if err != nil {
		return nil, err
	}
	if _, err := FetchMedicineByCode(c, data["medicineCode"].(string)); err != nil {
		log.Println("Error while resolving medicine for inventory:", err)
		return nil, err
	}
	threshold := util.ToInt(data["thresholdQty"])
	if threshold <= 0 {
		threshold = 10
	}
	restockQty := util.ToInt(data["restockQty"])
	if restockQty <= 0 {
		restockQty = threshold * 5
	}

	code := util.GenerateCode(util.InventoryCodePrefix)
	item := bson.M{
		"code":          code,
		"tenantId":      c.GetString("tenantId"),
		"medicineCode":  data["medicineCode"],
		"batchNo":       data["batchNo"],
		"expiryDate":    expiry,
		"quantity":      util.ToInt(data["quantity"]),
		"thresholdQty":  threshold,
		"restockQty":    restockQty,
		"mrp":           util.ToFloat(data["mrp"]),
		"purchasePrice": util.ToFloat(data["purchasePrice"]),
		"distributorId": data["distributorId"],
		"isExpiring":    false,
	}
	PrepareCreateMetadata(c, item)

	coll := db.OpenCollections(util.InventoryCollection)
	inserted, err := db.CreateOne(c, coll, item)
	if err != nil {
		log.Println("Error from CreateOne while creating inventory item:", err)
		return nil, err
	}
	log.Println("Inserted inventory item:", inserted.InsertedID)
	RecordActivity(c, "inventory", "create", code, util.GetString(data["medicineCode"]))
	return map[string]interface{}(item), nil
}

func FetchInventoryItemByCode(c *gin.Context, itemCode string) (map[string]interface{}, error) {
	item, err := FetchByCode(c, util.InventoryCollection, util.InventoryKey, itemCode)
	if err != nil {
		return nil, err
	}
	if err := CheckTenantOwnership(c, item); err != nil {
		return nil, err
	}
	return item, nil
}

func FetchAllInventory(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if medicineCode := c.Query("medicineCode"); medicineCode != "" {
		filter["medicineCode"] = medicineCode
	}
	if c.Query("lowStock") == "true" {
		filter["$expr"] = bson.M{"$lte": []interface{}{"$quantity", "$thresholdQty"}}
	}
	if c.Query("expiring") == "true" {
		filter["isExpiring"] = true
	}
	coll := db.OpenCollections(util.InventoryCollection)
	items, err := db.FindAll(c, coll, filter, options.Find().SetSort(bson.M{"expiryDate": 1}))
	if err != nil {
		log.Println("Error from FindAll while listing inventory:", err)
		return nil, err
	}
	return items, nil
}

var inventoryUpdatableFields = []string{"thresholdQty", "restockQty", "mrp", "purchasePrice", "distributorId"}

func UpdateInventoryItem(c *gin.Context, itemCode string, data map[string]interface{}) (string, error) {
	if _, err := FetchInventoryItemByCode(c, itemCode); err != nil {
		return "", err
	}
	update := bson.M{}
	for _, f := range inventoryUpdatableFields {
		if v, ok := data[f]; ok {
			update[f] = v
		}
	}
	if len(update) == 0 {
		return "", errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)
	}
	PrepareUpdateMetadata(c, data)
	update["updatedAt"] = data["updatedAt"]
	update["updatedBy"] = data["updatedBy"]

	coll := db.OpenCollections(util.InventoryCollection)
	if _, err := db.UpdateOne(c, coll, bson.M{"code": itemCode}, bson.M{"$set": update}); err != nil {
		log.Println("Error from UpdateOne while updating inventory:", err)
		return "", err
	}
	RefreshCache(c, util.InventoryKey, itemCode, nil)
	return "updated", nil
}

func DeleteInventoryItem(c *gin.Context, itemCode string) (string, error) {
	if _, err := FetchInventoryItemByCode(c, itemCode); err != nil {
		return "", err
	}
	coll := db.OpenCollections(util.InventoryCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": itemCode})
	if err != nil {
		log.Println("Error from DeleteOne while deleting inventory:", err)
		return "", err
	}
	log.Println("Deleted inventory items:", deleted.DeletedCount)
	RefreshCache(c, util.InventoryKey, itemCode, nil)
	RecordActivity(c, "inventory", "delete", itemCode, "")
	return fmt.Sprintf("inventory item %s deleted successfully", itemCode), nil
}

// Allocation is one batch decrement planned for a dispense.
type Allocation struct {
	InventoryCode string
	BatchNo       string
	Qty           int
	UnitPrice     float64
}

/*
* OnHand sums quantity across batch documents.
 */
func OnHand(batches []map[string]interface{}) int {
	total := 0
	for _, b := range batches {
		total += util.ToInt(b["quantity"])
	}
	return total
}

/*
* PlanDispense allocates a requested quantity across batches earliest
* expiry first, skipping batches already expired on the given date.
* Returns an error when the remaining stock cannot cover the request.
 */
func PlanDispense(batches []map[string]interface{}, qty int, today string) ([]Allocation, error) {
	if qty <= 0 {
		return nil, errors.New(util.QUANTITY_MUST_BE_POSITIVE)
	}
	usable := []map[string]interface{}{}
	for _, b := range batches {
		if util.GetString(b["expiryDate"]) <= today {
			continue
		}
		if util.ToInt(b["quantity"]) > 0 {
			usable = append(usable, b)
		}
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return util.GetString(usable[i]["expiryDate"]) < util.GetString(usable[j]["expiryDate"])
	})

	allocations := []Allocation{}
	remaining := qty
	for _, b := range usable {
		if remaining == 0 {
			break
		}
		take := util.ToInt(b["quantity"])
		if take > remaining {
			take = remaining
		}
		allocations = append(allocations, Allocation{
			InventoryCode: util.GetString(b["code"]),
			BatchNo:       util.GetString(b["batchNo"]),
			Qty:           take,
			UnitPrice:     util.ToFloat(b["mrp"]),
		})
		remaining -= take
	}
	if remaining > 0 {
		if len(usable) == 0 && OnHand(batches) > 0 {
			return nil, errors.New(util.BATCH_EXPIRED)
		}
		return nil, errors.New(util.INSUFFICIENT_STOCK)
	}
	return allocations, nil
}

func NeedsRestock(onHand, threshold int) bool {
	return threshold > 0 && onHand <= threshold
}

/*
* OpenRestockFilter matches restock orders still in flight for a
* medicine. Any open one, manual or automatic, suppresses the next
* automatic order.
 */
func OpenRestockFilter(tenantId, medicineCode string) bson.M {
	return bson.M{
		"tenantId":           tenantId,
		"type":               models.OrderTypeRestock,
		"lines.medicineCode": medicineCode,
		"status":             bson.M{"$in": []string{models.OrderPlaced, models.OrderAccepted, models.OrderShipped}},
	}
}

func fetchBatches(c *gin.Context, tenantId, medicineCode string) ([]map[string]interface{}, error) {
	coll := db.OpenCollections(util.InventoryCollection)
	docs, err := db.FindAll(c, coll, bson.M{"tenantId": tenantId, "medicineCode": medicineCode}, nil)
	if err != nil {
		return nil, err
	}
	batches := []map[string]interface{}{}
	for _, d := range docs {
		if b, ok := d.(map[string]interface{}); ok {
			batches = append(batches, b)
		}
	}
	return batches, nil
}

/*
* DecrementStock applies a dispense plan to the batch documents and
* runs the low-stock check afterwards.
 */
func DecrementStock(c *gin.Context, tenantId, medicineCode string, allocations []Allocation) error {
	coll := db.OpenCollections(util.InventoryCollection)
	for _, a := range allocations {
		update := bson.M{"$inc": bson.M{"quantity": -a.Qty}}
		if _, err := db.UpdateOne(c, coll, bson.M{"code": a.InventoryCode}, update); err != nil {
			log.Println("Error while decrementing batch", a.InventoryCode, ":", err)
			return err
		}
		RefreshCache(c, util.InventoryKey, a.InventoryCode, nil)
	}
	CheckLowStock(c, tenantId, medicineCode)
	return nil
}

/*
* CheckLowStock is the auto-restock trigger run after every decrement.
* When on-hand drops to the threshold it places one replenishment
* order to the batch's distributor; while that order stays open no
* second one is created.
 */
func CheckLowStock(c *gin.Context, tenantId, medicineCode string) {
	batches, err := fetchBatches(c, tenantId, medicineCode)
	if err != nil {
		log.Println("Error while fetching batches for low-stock check:", err)
		return
	}
	if len(batches) == 0 {
		return
	}
	threshold := 0
	restockQty := 0
	distributorId := ""
	unitPrice := 0.0
	for _, b := range batches {
		if t := util.ToInt(b["thresholdQty"]); t > threshold {
			threshold = t
			restockQty = util.ToInt(b["restockQty"])
			distributorId = util.GetString(b["distributorId"])
			unitPrice = util.ToFloat(b["purchasePrice"])
		}
	}
	if !NeedsRestock(OnHand(batches), threshold) {
		return
	}

	orderColl := db.OpenCollections(util.OrderCollection)
	open, err := db.CountDocs(c, orderColl, OpenRestockFilter(tenantId, medicineCode))
	if err != nil {
		log.Println("Error while checking open restock orders:", err)
		return
	}
	if open > 0 {
		return
	}
	if restockQty <= 0 {
		restockQty = threshold * 5
	}

	code := util.GenerateCode(util.OrderCodePrefix)
	now := time.Now()
	order := bson.M{
		"code":          code,
		"type":          models.OrderTypeRestock,
		"tenantId":      tenantId,
		"distributorId": distributorId,
		"lines": []bson.M{{
			"medicineCode": medicineCode,
			"batchNo":      "",
			"qty":          restockQty,
			"unitPrice":    unitPrice,
		}},
		"amount": float64(restockQty) * unitPrice,
		"status": models.OrderPlaced,
		"statusHistory": []bson.M{{
			"status":    models.OrderPlaced,
			"changedAt": now,
			"changedBy": "system",
		}},
		"isAuto":    true,
		"createdAt": now,
		"createdBy": "system",
		"updatedAt": now,
		"updatedBy": "system",
	}
	if _, err := db.CreateOne(c, orderColl, order); err != nil {
		log.Println("Error while creating auto-restock order:", err)
		return
	}
	log.Println("Auto-restock order placed:", code, "for", medicineCode)

	RecordActivity(c, "order", "auto_restock", code, medicineCode)
	Notify(c, distributorId, "order", "Restock order placed",
		fmt.Sprintf("Auto restock of %d units of %s", restockQty, medicineCode), code)
	realtime.Emit(c, realtime.TenantRoom(tenantId), "low_stock", bson.M{
		"medicineCode": medicineCode,
		"orderCode":    code,
	})
}

/*
* AdjustStock sets a batch to an absolute quantity, used by manual
* corrections and the stock-audit apply step.
 */
func AdjustStock(c *gin.Context, itemCode string, quantity int, reason string) error {
	item, err := FetchInventoryItemByCode(c, itemCode)
	if err != nil {
		return err
	}
	if quantity < 0 {
		return errors.New(util.QUANTITY_MUST_BE_POSITIVE)
	}
	coll := db.OpenCollections(util.InventoryCollection)
	update := bson.M{"$set": bson.M{
		"quantity":  quantity,
		"updatedAt": time.Now(),
		"updatedBy": c.GetString("code"),
	}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": itemCode}, update); err != nil {
		log.Println("Error from UpdateOne while adjusting stock:", err)
		return err
	}
	RefreshCache(c, util.InventoryKey, itemCode, nil)
	RecordActivity(c, "inventory", "adjust", itemCode, reason)
	CheckLowStock(c, util.GetString(item["tenantId"]), util.GetString(item["medicineCode"]))
	return nil
}

/*
* ReceiveRestock increments batch quantities when a restock order is
* delivered. Lines without a batch are received into the earliest
* matching batch.
 */
func ReceiveRestock(c *gin.Context, order map[string]interface{}) error {
	tenantId := util.GetString(order["tenantId"])
	lines, err := NormalizeSlice(order["lines"])
	if err != nil {
		return errors.New(util.LINES_MUST_BE_ARRAY)
	}
	coll := db.OpenCollections(util.InventoryCollection)
	for _, l := range lines {
		line, ok := l.(map[string]interface{})
		if !ok {
			continue
		}
		medicineCode := util.GetString(line["medicineCode"])
		qty := util.ToInt(line["qty"])
		if qty <= 0 {
			continue
		}
		filter := bson.M{"tenantId": tenantId, "medicineCode": medicineCode}
		if batchNo := util.GetString(line["batchNo"]); batchNo != "" {
			filter["batchNo"] = batchNo
		}
		item := make(map[string]interface{})
		err := db.FindOne(c, coll, filter, item)
		if err == mongo.ErrNoDocuments {
			log.Println("No batch found to receive restock of", medicineCode)
			continue
		}
		if err != nil {
			return err
		}
		itemCode := util.GetString(item["code"])
		if _, err := db.UpdateOne(c, coll, bson.M{"code": itemCode},
			bson.M{"$inc": bson.M{"quantity": qty}}); err != nil {
			log.Println("Error while receiving restock into", itemCode, ":", err)
			return err
		}
		RefreshCache(c, util.InventoryKey, itemCode, nil)
	}
	return nil
}
