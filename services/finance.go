package services

import (
	"errors"
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
* RecordFinanceEntry appends one signed ledger row. Positive amounts
* are inflow, negative outflow. Ledger failures only log; the write
* that produced the entry has already happened.
 */
func RecordFinanceEntry(c *gin.Context, refType, refId string, amount float64, category, note string) {
	entry := bson.M{
		"code":      util.GenerateCode(util.FinanceCodePrefix),
		"tenantId":  c.GetString("tenantId"),
		"refType":   refType,
		"refId":     refId,
		"amount":    amount,
		"category":  category,
		"note":      note,
		"entryDate": time.Now().Format("2006-01-02"),
		"createdAt": time.Now(),
		"createdBy": c.GetString("code"),
	}
	coll := db.OpenCollections(util.FinanceCollection)
	if _, err := db.CreateOne(c, coll, entry); err != nil {
		log.Println("Error while recording finance entry:", err)
	}
}

/*
* Manual adjustment or refund row entered by staff.
 */
func CreateFinanceEntry(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.GetTrimmedString(data, "category"); err != nil {
		return nil, err
	}
	amount := util.ToFloat(data["amount"])
	if amount == 0 {
		return nil, errors.New(util.AMOUNT_MUST_BE_NON_ZERO)
	}
	refType := util.GetString(data["refType"])
	if refType == "" {
		refType = models.FinanceRefAdjustment
	}
	entryDate := time.Now().Format("2006-01-02")
	if d := util.GetString(data["entryDate"]); d != "" {
		normalized, err := util.NormalizeDate(d)
		if err != nil {
			return nil, err
		}
		entryDate = normalized
	}
	entry := bson.M{
		"code":      util.GenerateCode(util.FinanceCodePrefix),
		"tenantId":  c.GetString("tenantId"),
		"refType":   refType,
		"refId":     util.GetString(data["refId"]),
		"amount":    amount,
		"category":  data["category"],
		"note":      util.GetString(data["note"]),
		"entryDate": entryDate,
		"createdAt": time.Now(),
		"createdBy": c.GetString("code"),
	}
	coll := db.OpenCollections(util.FinanceCollection)
	inserted, err := db.CreateOne(c, coll, entry)
	if err != nil {
		log.Println("Error from CreateOne while creating finance entry:", err)
		return nil, err
	}
	log.Println("Inserted finance entry:", inserted.InsertedID)
	RecordActivity(c, "finance", "create", util.GetString(entry["code"]), util.GetString(data["category"]))
	return map[string]interface{}(entry), nil
}

func FetchAllFinanceEntries(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if from := c.Query("from"); from != "" {
		normalized, err := util.NormalizeDate(from)
		if err != nil {
			return nil, err
		}
		filter["entryDate"] = bson.M{"$gte": normalized}
	}
	if to := c.Query("to"); to != "" {
		normalized, err := util.NormalizeDate(to)
		if err != nil {
			return nil, err
		}
		if existing, ok := filter["entryDate"].(bson.M); ok {
			existing["$lte"] = normalized
		} else {
			filter["entryDate"] = bson.M{"$lte": normalized}
		}
	}
	coll := db.OpenCollections(util.FinanceCollection)
	entries, err := db.FindAll(c, coll, filter, options.Find().SetSort(bson.M{"entryDate": -1}))
	if err != nil {
		log.Println("Error from FindAll while listing finance entries:", err)
		return nil, err
	}
	return entries, nil
}

/*
* BuildFinanceSummaryPipeline groups signed amounts per month and
* category, splitting inflow and outflow.
 */
func BuildFinanceSummaryPipeline(tenantId string) []bson.M {
	return []bson.M{
		{"$match": bson.M{"tenantId": tenantId}},
		{"$group": bson.M{
			"_id": bson.M{
				"month":    bson.M{"$substr": []interface{}{"$entryDate", 0, 7}},
				"category": "$category",
			},
			"inflow": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$gt": []interface{}{"$amount", 0}}, "$amount", 0},
			}},
			"outflow": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$lt": []interface{}{"$amount", 0}}, "$amount", 0},
			}},
			"net": bson.M{"$sum": "$amount"},
		}},
		{"$sort": bson.M{"_id.month": 1, "_id.category": 1}},
	}
}

func FetchFinanceSummary(c *gin.Context) ([]map[string]interface{}, error) {
	tenantId, err := GetTenantID(c)
	if err != nil {
		return nil, err
	}
	coll := db.OpenCollections(util.FinanceCollection)
	rows, err := db.Aggregate(c, coll, BuildFinanceSummaryPipeline(tenantId))
	if err != nil {
		log.Println("Error from Aggregate while summarizing finance:", err)
		return nil, err
	}
	return rows, nil
}

func FetchFinanceBalance(c *gin.Context) (map[string]interface{}, error) {
	tenantId, err := GetTenantID(c)
	if err != nil {
		return nil, err
	}
	pipeline := []bson.M{
		{"$match": bson.M{"tenantId": tenantId}},
		{"$group": bson.M{"_id": nil, "balance": bson.M{"$sum": "$amount"}}},
	}
	coll := db.OpenCollections(util.FinanceCollection)
	rows, err := db.Aggregate(c, coll, pipeline)
	if err != nil {
		log.Println("Error from Aggregate while computing balance:", err)
		return nil, err
	}
	balance := 0.0
	if len(rows) > 0 {
		balance = util.ToFloat(rows[0]["balance"])
	}
	return map[string]interface{}{"tenantId": tenantId, "balance": balance}, nil
}
