package services

import (
	"context"
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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var reportKinds = map[string]bool{
	models.ReportSalesSummary:   true,
	models.ReportTopMedicines:   true,
	models.ReportOrderStatus:    true,
	models.ReportStockValuation: true,
}

/*
* CreateReportRequest queues an async aggregation job for the cron
* worker to pick up.
 */
func CreateReportRequest(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.GetTrimmedString(data, "kind"); err != nil {
		return nil, err
	}
	kind := data["kind"].(string)
	if !reportKinds[kind] {
		return nil, errors.New(util.UNSUPPORTED_REPORT_KIND)
	}
	params, _ := data["params"].(map[string]interface{})
	if params == nil {
		params = map[string]interface{}{}
	}
	code := util.GenerateCode(util.ReportRequestCodePrefix)
	request := bson.M{
		"code":        code,
		"tenantId":    c.GetString("tenantId"),
		"kind":        kind,
		"params":      params,
		"status":      models.ReportPending,
		"requestedAt": time.Now(),
		"createdBy":   c.GetString("code"),
	}
	coll := db.OpenCollections(util.ReportRequestCollection)
	if _, err := db.CreateOne(c, coll, request); err != nil {
		log.Println("Error from CreateOne while queueing report request:", err)
		return nil, err
	}
	RecordActivity(c, "report", "request", code, kind)
	return map[string]interface{}(request), nil
}

func FetchReportRequest(c *gin.Context, requestId string) (map[string]interface{}, error) {
	coll := db.OpenCollections(util.ReportRequestCollection)
	request := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": requestId}, request); err != nil {
		log.Println("Error from FindOne while fetching report request:", err)
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	if err := CheckTenantOwnership(c, request); err != nil {
		return nil, err
	}
	return request, nil
}

func FetchAllReportRequests(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	coll := db.OpenCollections(util.ReportRequestCollection)
	requests, err := db.FindAll(c, coll, filter,
		options.Find().SetSort(bson.M{"requestedAt": -1}))
	if err != nil {
		log.Println("Error from FindAll while listing report requests:", err)
		return nil, err
	}
	return requests, nil
}

/*
* Pipeline builders, one per report kind. Sales and order reports read
* the order collection; stock valuation reads inventory.
 */
func BuildSalesSummaryPipeline(tenantId string) []bson.M {
	return []bson.M{
		{"$match": bson.M{"tenantId": tenantId, "type": models.OrderTypeSale}},
		{"$group": bson.M{
			"_id":    bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"orders": bson.M{"$sum": 1},
			"total":  bson.M{"$sum": "$amount"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
}

func BuildTopMedicinesPipeline(tenantId string, limit int) []bson.M {
	if limit <= 0 {
		limit = 10
	}
	return []bson.M{
		{"$match": bson.M{"tenantId": tenantId, "type": models.OrderTypeSale}},
		{"$unwind": "$lines"},
		{"$group": bson.M{
			"_id":     "$lines.medicineCode",
			"qty":     bson.M{"$sum": "$lines.qty"},
			"revenue": bson.M{"$sum": bson.M{"$multiply": []interface{}{"$lines.qty", "$lines.unitPrice"}}},
		}},
		{"$sort": bson.M{"qty": -1}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         util.MedicineCollection,
			"localField":   "_id",
			"foreignField": "code",
			"as":           "medicine",
		}},
	}
}

func BuildOrderStatusPipeline(tenantId string) []bson.M {
	return []bson.M{
		{"$match": bson.M{"tenantId": tenantId}},
		{"$group": bson.M{
			"_id":   bson.M{"type": "$type", "status": "$status"},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
	}
}

func BuildStockValuationPipeline(tenantId string) []bson.M {
	return []bson.M{
		{"$match": bson.M{"tenantId": tenantId}},
		{"$group": bson.M{
			"_id":     "$medicineCode",
			"onHand":  bson.M{"$sum": "$quantity"},
			"value":   bson.M{"$sum": bson.M{"$multiply": []interface{}{"$quantity", "$purchasePrice"}}},
			"batches": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"value": -1}},
	}
}

/*
* RunReport executes the pipeline for a request document. Used by the
* cron worker; no gin context is involved.
 */
func RunReport(ctx context.Context, request map[string]interface{}) ([]map[string]interface{}, error) {
	tenantId := util.GetString(request["tenantId"])
	kind := util.GetString(request["kind"])
	params, _ := db.Normalize(request["params"]).(map[string]interface{})

	switch kind {
	case models.ReportSalesSummary:
		return db.Aggregate(ctx, db.OpenCollections(util.OrderCollection), BuildSalesSummaryPipeline(tenantId))
	case models.ReportTopMedicines:
		limit := 10
		if params != nil {
			if l := util.ToInt(params["limit"]); l > 0 {
				limit = l
			}
		}
		return db.Aggregate(ctx, db.OpenCollections(util.OrderCollection), BuildTopMedicinesPipeline(tenantId, limit))
	case models.ReportOrderStatus:
		return db.Aggregate(ctx, db.OpenCollections(util.OrderCollection), BuildOrderStatusPipeline(tenantId))
	case models.ReportStockValuation:
		return db.Aggregate(ctx, db.OpenCollections(util.InventoryCollection), BuildStockValuationPipeline(tenantId))
	default:
		return nil, fmt.Errorf("%s: %s", util.UNSUPPORTED_REPORT_KIND, kind)
	}
}

/*
* ProcessPendingReports claims pending requests one at a time, runs
* the pipeline and stores result or error. The status flip to
* processing keeps two workers off the same request.
 */
func ProcessPendingReports(ctx context.Context) {
	coll := db.OpenCollections(util.ReportRequestCollection)
	for {
		request := make(map[string]interface{})
		res := coll.FindOneAndUpdate(ctx,
			bson.M{"status": models.ReportPending},
			bson.M{"$set": bson.M{"status": models.ReportProcessing}},
		)
		if err := res.Decode(&request); err != nil {
			return
		}
		code := util.GetString(request["code"])
		rows, err := RunReport(ctx, request)
		update := bson.M{
			"status":      models.ReportCompleted,
			"result":      rows,
			"completedAt": time.Now(),
		}
		if err != nil {
			log.Println("Report", code, "failed:", err)
			update = bson.M{
				"status":      models.ReportFailed,
				"error":       err.Error(),
				"completedAt": time.Now(),
			}
		}
		if _, uerr := db.UpdateOne(ctx, coll, bson.M{"code": code}, bson.M{"$set": update}); uerr != nil {
			log.Println("Error while storing report result:", uerr)
			continue
		}
		realtime.Emit(ctx, realtime.UserRoom(util.GetString(request["createdBy"])), "report", bson.M{
			"code":   code,
			"status": update["status"],
		})
	}
}
