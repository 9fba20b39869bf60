package migrations

import (
	"context"
	"log"
	"time"

	db "MediFlow360/config/db"
	"MediFlow360/services"
	util "MediFlow360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Early builds allowed more than one record per patient. Keep the
* newest document for each patientId, fold the older documents'
* history arrays into it, drop the rest and add the unique index the
* upsert path relies on.
 */
func EnsurePatientRecordUniqueIndex() {
	ctx := context.Background()
	coll := db.DB.Collection(util.PatientRecordCollection)

	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	kept := map[string]map[string]interface{}{}
	removed := 0
	for cursor.Next(ctx) {
		record := bson.M{}
		cursor.Decode(&record)
		doc, _ := db.Normalize(map[string]interface{}(record)).(map[string]interface{})
		patientId, _ := doc["patientId"].(string)
		if patientId == "" {
			continue
		}
		newest, seen := kept[patientId]
		if !seen {
			kept[patientId] = doc
			continue
		}
		merged := services.MergeRecordArrays(newest, doc)
		update := bson.M{}
		for field, values := range merged {
			newest[field] = values
			update[field] = values
		}
		update["updatedAt"] = time.Now()
		if _, err := coll.UpdateOne(ctx, bson.M{"_id": newest["_id"]}, bson.M{"$set": update}); err != nil {
			log.Fatal("Migration failed:", err)
		}
		if _, err := coll.DeleteOne(ctx, bson.M{"_id": doc["_id"]}); err != nil {
			log.Fatal("Migration failed:", err)
		}
		removed++
	}
	cursor.Close(ctx)

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "patientId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: %d duplicate patient records merged and removed\n", removed)
}
