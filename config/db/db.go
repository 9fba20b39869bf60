package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

/*
* Connect dials Mongo using MONGO_URI / DB_NAME and keeps the
* shared handles used by every module.
 */
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "mediflow"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	Client = client
	DB = client.Database(name)
	log.Println("Connected to mongo database:", name)
	return nil
}

func Disconnect() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Println("Error while disconnecting mongo:", err)
	}
}

func OpenCollections(name string) *mongo.Collection {
	return DB.Collection(name)
}

/*
* Normalize rewrites driver document types into plain maps and slices
* so callers can range and assert without knowing bson internals.
 */
func Normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.D:
		m := map[string]interface{}{}
		for _, e := range t {
			m[e.Key] = Normalize(e.Value)
		}
		return m
	case primitive.M:
		m := map[string]interface{}{}
		for k, val := range t {
			m[k] = Normalize(val)
		}
		return m
	case map[string]interface{}:
		m := map[string]interface{}{}
		for k, val := range t {
			m[k] = Normalize(val)
		}
		return m
	case primitive.A:
		s := make([]interface{}, 0, len(t))
		for _, val := range t {
			s = append(s, Normalize(val))
		}
		return s
	case []interface{}:
		s := make([]interface{}, 0, len(t))
		for _, val := range t {
			s = append(s, Normalize(val))
		}
		return s
	default:
		return v
	}
}

func normalizeDoc(doc bson.M) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range doc {
		out[k] = Normalize(v)
	}
	return out
}

/*
* FindOne decodes the first match into result. Callers pass either a
* bare map or a pointer to a struct; bare maps are filled in place.
 */
func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	if m, ok := result.(map[string]interface{}); ok {
		tmp := bson.M{}
		if err := coll.FindOne(ctx, filter).Decode(&tmp); err != nil {
			return err
		}
		for k, v := range normalizeDoc(tmp) {
			m[k] = v
		}
		return nil
	}
	return coll.FindOne(ctx, filter).Decode(result)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]interface{}, error) {
	if filter == nil {
		filter = bson.M{}
	}
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []interface{}{}
	for cursor.Next(ctx) {
		doc := bson.M{}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, normalizeDoc(doc))
	}
	return docs, cursor.Err()
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func UpdateMany(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateMany(ctx, filter, update)
}

func UpsertOne(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

func CountDocs(ctx context.Context, coll *mongo.Collection, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return coll.CountDocuments(ctx, filter)
}

/*
* Aggregate runs a pipeline and returns plain maps, the shape the
* report and finance modules work with.
 */
func Aggregate(ctx context.Context, coll *mongo.Collection, pipeline interface{}) ([]map[string]interface{}, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []map[string]interface{}{}
	for cursor.Next(ctx) {
		row := bson.M{}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		rows = append(rows, normalizeDoc(row))
	}
	return rows, cursor.Err()
}
