package migrations

import (
	"context"
	"log"

	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"go.mongodb.org/mongo-driver/bson"
)

func BackfillInventoryThresholds() {
	ctx := context.Background()
	inventory := util.InventoryCollection
	result, err := db.DB.Collection(inventory).UpdateMany(
		ctx,
		bson.M{"thresholdQty": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"thresholdQty": 10, "restockQty": 50}},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: %d documents updated\n", result.ModifiedCount)
}
