package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

const defaultTTL = 15 * time.Minute

// EventChannel is the redis pub/sub channel bridged by the realtime hub.
const EventChannel = "mediflow:events"

func Connect() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	log.Println("Connected to redis:", addr)
	return nil
}

/*
* SetCache stores the document as JSON under key with the default TTL.
 */
func SetCache(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, payload, defaultTTL).Err()
}

/*
* GetCache returns the cached document and whether the key existed.
 */
func GetCache(ctx context.Context, key string) (map[string]interface{}, bool, error) {
	payload, err := Rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	doc := make(map[string]interface{})
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

func DeleteCache(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}

/*
* Publish pushes a realtime event onto the shared channel. Events carry
* the target room so the hub can route them to connected clients.
 */
func Publish(ctx context.Context, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return Rdb.Publish(ctx, EventChannel, payload).Err()
}

func Subscribe(ctx context.Context) *redis.PubSub {
	return Rdb.Subscribe(ctx, EventChannel)
}
