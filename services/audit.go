package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	db "MediFlow360/config/db"
	"MediFlow360/models"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* ComputeAuditLine compares a counted quantity against the recorded
* on-hand quantity of one batch. variance = counted - expected; the
* value impact prices the variance at purchase cost.
 */
func ComputeAuditLine(item map[string]interface{}, counted int) models.AuditLine {
	expected := util.ToInt(item["quantity"])
	variance := counted - expected
	return models.AuditLine{
		InventoryCode: util.GetString(item["code"]),
		MedicineCode:  util.GetString(item["medicineCode"]),
		Expected:      expected,
		Counted:       counted,
		Variance:      variance,
		VarianceValue: float64(variance) * util.ToFloat(item["purchasePrice"]),
	}
}

func TotalVariance(lines []models.AuditLine) (int, float64) {
	totalQty := 0
	totalValue := 0.0
	for _, l := range lines {
		totalQty += l.Variance
		totalValue += l.VarianceValue
	}
	return totalQty, totalValue
}

/*
* CreateStockAudit takes counted quantities per inventory code,
* computes variances against live stock and stores the audit as draft.
 */
func CreateStockAudit(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	rawLines, err := NormalizeSlice(data["lines"])
	if err != nil || len(rawLines) == 0 {
		return nil, errors.New(util.AUDIT_LINES_MUST_BE_ARRAY)
	}

	lines := []models.AuditLine{}
	for _, l := range rawLines {
		entry, ok := l.(map[string]interface{})
		if !ok {
			return nil, errors.New(util.AUDIT_LINES_MUST_BE_ARRAY)
		}
		if err := util.GetTrimmedString(entry, "inventoryCode"); err != nil {
			return nil, err
		}
		counted := util.ToInt(entry["counted"])
		if counted < 0 {
			return nil, errors.New(util.QUANTITY_MUST_BE_POSITIVE)
		}
		item, err := FetchInventoryItemByCode(c, entry["inventoryCode"].(string))
		if err != nil {
			return nil, err
		}
		lines = append(lines, ComputeAuditLine(item, counted))
	}
	totalQty, totalValue := TotalVariance(lines)

	code := util.GenerateCode(util.StockAuditCodePrefix)
	audit := bson.M{
		"code":               code,
		"tenantId":           c.GetString("tenantId"),
		"lines":              lines,
		"totalVariance":      totalQty,
		"totalVarianceValue": totalValue,
		"status":             models.AuditDraft,
		"createdAt":          time.Now(),
		"createdBy":          c.GetString("code"),
	}
	coll := db.OpenCollections(util.StockAuditCollection)
	inserted, err := db.CreateOne(c, coll, audit)
	if err != nil {
		log.Println("Error from CreateOne while creating stock audit:", err)
		return nil, err
	}
	log.Println("Inserted stock audit:", inserted.InsertedID)
	RecordActivity(c, "audit", "create", code, fmt.Sprintf("variance %d", totalQty))
	return map[string]interface{}(audit), nil
}

func FetchStockAuditByCode(c *gin.Context, auditId string) (map[string]interface{}, error) {
	coll := db.OpenCollections(util.StockAuditCollection)
	audit := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": auditId}, audit); err != nil {
		log.Println("Error from FindOne while fetching stock audit:", err)
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	if err := CheckTenantOwnership(c, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

func FetchAllStockAudits(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	coll := db.OpenCollections(util.StockAuditCollection)
	audits, err := db.FindAll(c, coll, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Println("Error from FindAll while listing stock audits:", err)
		return nil, err
	}
	return audits, nil
}

/*
* ApplyStockAudit adjusts every audited batch to its counted quantity
* and books the total variance value as a signed ledger row. Applying
* twice is rejected.
 */
func ApplyStockAudit(c *gin.Context, auditId string) (string, error) {
	audit, err := FetchStockAuditByCode(c, auditId)
	if err != nil {
		return "", err
	}
	if util.GetString(audit["status"]) == models.AuditApplied {
		return "", errors.New(util.INVALID_STATUS_TRANSITION)
	}
	lines, err := NormalizeSlice(audit["lines"])
	if err != nil {
		return "", errors.New(util.AUDIT_LINES_MUST_BE_ARRAY)
	}
	for _, l := range lines {
		line, ok := l.(map[string]interface{})
		if !ok {
			continue
		}
		if util.ToInt(line["variance"]) == 0 {
			continue
		}
		if err := AdjustStock(c, util.GetString(line["inventoryCode"]),
			util.ToInt(line["counted"]), "stock audit "+auditId); err != nil {
			log.Println("Error while applying audit line:", err)
			return "", err
		}
	}
	if value := util.ToFloat(audit["totalVarianceValue"]); value != 0 {
		RecordFinanceEntry(c, models.FinanceRefAdjustment, auditId, value, "shrinkage",
			"stock audit variance")
	}
	coll := db.OpenCollections(util.StockAuditCollection)
	update := bson.M{"$set": bson.M{
		"status":    models.AuditApplied,
		"appliedAt": time.Now(),
	}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": auditId}, update); err != nil {
		log.Println("Error from UpdateOne while applying audit:", err)
		return "", err
	}
	RecordActivity(c, "audit", "apply", auditId, "")
	return "applied", nil
}
