package services

import (
	"errors"
	"log"
	"time"

	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* EffectivePrice applies the discount to the list price.
 */
func EffectivePrice(price, discountPct float64) float64 {
	if discountPct <= 0 {
		return price
	}
	if discountPct > 100 {
		discountPct = 100
	}
	return price * (100 - discountPct) / 100
}

/*
* ResolveEffectivePrice picks the price row with the latest
* effectiveFrom not after the given date.
 */
func ResolveEffectivePrice(c *gin.Context, tenantId, medicineCode, date string) (float64, error) {
	coll := db.OpenCollections(util.PriceCollection)
	filter := bson.M{
		"tenantId":      tenantId,
		"medicineCode":  medicineCode,
		"effectiveFrom": bson.M{"$lte": date},
	}
	row := make(map[string]interface{})
	err := coll.FindOne(c, filter, options.FindOne().SetSort(bson.M{"effectiveFrom": -1})).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return 0, errors.New(util.RECORD_NOT_FOUND)
	}
	if err != nil {
		return 0, err
	}
	return EffectivePrice(util.ToFloat(row["price"]), util.ToFloat(row["discountPct"])), nil
}

/*
* UpsertPrices replaces or inserts price rows per medicine and
* effective date in bulk.
 */
func UpsertPrices(c *gin.Context, data map[string]interface{}) (string, error) {
	rows, err := NormalizeSlice(data["prices"])
	if err != nil || len(rows) == 0 {
		return "", errors.New("prices must be a non empty array")
	}
	tenantId := c.GetString("tenantId")
	coll := db.OpenCollections(util.PriceCollection)
	upserted := 0
	for _, r := range rows {
		row, ok := r.(map[string]interface{})
		if !ok {
			return "", errors.New("price row must be an object")
		}
		if err := util.GetTrimmedString(row, "medicineCode"); err != nil {
			return "", err
		}
		price := util.ToFloat(row["price"])
		if price <= 0 {
			return "", errors.New("price must be positive")
		}
		effectiveFrom := time.Now().Format("2006-01-02")
		if d := util.GetString(row["effectiveFrom"]); d != "" {
			normalized, err := util.NormalizeDate(d)
			if err != nil {
				return "", err
			}
			effectiveFrom = normalized
		}
		filter := bson.M{
			"tenantId":      tenantId,
			"medicineCode":  row["medicineCode"],
			"effectiveFrom": effectiveFrom,
		}
		update := bson.M{"$set": bson.M{
			"price":       price,
			"discountPct": util.ToFloat(row["discountPct"]),
			"createdAt":   time.Now(),
			"createdBy":   c.GetString("code"),
		}}
		if _, err := db.UpsertOne(c, coll, filter, update); err != nil {
			log.Println("Error while upserting price row:", err)
			return "", err
		}
		upserted++
	}
	RecordActivity(c, "pricing", "upsert", "", "")
	log.Println("Upserted price rows:", upserted)
	return "prices updated", nil
}

func FetchPriceList(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if medicineCode := c.Query("medicineCode"); medicineCode != "" {
		filter["medicineCode"] = medicineCode
	}
	coll := db.OpenCollections(util.PriceCollection)
	rows, err := db.FindAll(c, coll, filter,
		options.Find().SetSort(bson.M{"medicineCode": 1, "effectiveFrom": -1}))
	if err != nil {
		log.Println("Error from FindAll while listing prices:", err)
		return nil, err
	}
	return rows, nil
}

/*
* FetchPriceQuote resolves the effective price for one medicine today.
 */
func FetchPriceQuote(c *gin.Context, medicineCode string) (map[string]interface{}, error) {
	tenantId, err := GetTenantID(c)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	price, err := ResolveEffectivePrice(c, tenantId, medicineCode, today)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"medicineCode": medicineCode,
		"price":        price,
		"asOf":         today,
	}, nil
}
