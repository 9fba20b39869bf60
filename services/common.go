package services

import (
	"errors"
	"log"
	"time"

	cache "MediFlow360/config/cache"
	db "MediFlow360/config/db"
	"MediFlow360/realtime"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
* Identity helpers. JWTAuth loads these into the context.
 */
func GetCode(c *gin.Context) (string, error) {
	code := c.GetString("code")
	if code == "" {
		return "", errors.New(util.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	return code, nil
}

func GetTenantID(c *gin.Context) (string, error) {
	tenantId := c.GetString("tenantId")
	if tenantId == "" {
		return "", errors.New(util.UNABLE_TO_FETCH_TENANT_ID)
	}
	return tenantId, nil
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool("isAdmin")
}

/*
* TenantFilter scopes a filter to the caller's tenant unless the
* caller is an admin. Every tenant-owned collection goes through this.
 */
func TenantFilter(c *gin.Context, filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	if !IsAdmin(c) {
		filter["tenantId"] = c.GetString("tenantId")
	}
	return filter
}

/*
* NormalizeSlice flattens the two array shapes mongo hands back.
 */
func NormalizeSlice(raw interface{}) ([]interface{}, error) {
	switch v := raw.(type) {
	case primitive.A:
		return []interface{}(v), nil
	case []interface{}:
		return v, nil
	case nil:
		return []interface{}{}, nil
	default:
		return nil, errors.New("unsupported array type in document")
	}
}

func PrepareCreateMetadata(c *gin.Context, doc map[string]interface{}) {
	code := c.GetString("code")
	now := time.Now()
	doc["createdAt"] = now
	doc["createdBy"] = code
	doc["updatedAt"] = now
	doc["updatedBy"] = code
}

func PrepareUpdateMetadata(c *gin.Context, data map[string]interface{}) {
	data["updatedAt"] = time.Now()
	data["updatedBy"] = c.GetString("code")
}

/*
* FetchByCode resolves a document by its surrogate code, cache first,
* and refreshes the cache on a db hit.
 */
func FetchByCode(c *gin.Context, collection, keyPrefix, code string) (map[string]interface{}, error) {
	key := keyPrefix + code
	if cached, exists, err := cache.GetCache(c, key); exists && err == nil {
		return cached, nil
	}
	coll := db.OpenCollections(collection)
	result := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": code}, result); err != nil {
		log.Println("Error from FindOne while fetching", collection, ":", err)
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	if err := cache.SetCache(c, key, result); err != nil {
		log.Println("Error while caching", collection, "doc:", err)
	}
	return result, nil
}

func RefreshCache(c *gin.Context, keyPrefix, code string, doc map[string]interface{}) {
	key := keyPrefix + code
	if err := cache.DeleteCache(c, key); err != nil {
		log.Println("Error while deleting cache key", key, ":", err)
	}
	if doc != nil {
		if err := cache.SetCache(c, key, doc); err != nil {
			log.Println("Error while caching key", key, ":", err)
		}
	}
}

/*
* CheckTenantOwnership rejects cross-tenant reads and writes before
* they happen. Admins see everything.
 */
func CheckTenantOwnership(c *gin.Context, doc map[string]interface{}) error {
	if IsAdmin(c) {
		return nil
	}
	owner := util.GetString(doc["tenantId"])
	if owner != "" && owner != c.GetString("tenantId") {
		log.Println("Cross tenant access denied for", c.GetString("code"))
		return errors.New(util.TENANT_MISMATCH)
	}
	return nil
}

/*
* RecordActivity appends a tenant Activity row and mirrors it on the
* tenant's realtime room. Logging failures never fail the write that
* produced them.
 */
func RecordActivity(c *gin.Context, resource, action, refId, detail string) {
	tenantId := c.GetString("tenantId")
	activity := bson.M{
		"code":      util.GenerateCode(util.ActivityCodePrefix),
		"tenantId":  tenantId,
		"actorCode": c.GetString("code"),
		"action":    action,
		"resource":  resource,
		"refId":     refId,
		"detail":    detail,
		"createdAt": time.Now(),
	}
	coll := db.OpenCollections(util.ActivityCollection)
	if _, err := db.CreateOne(c, coll, activity); err != nil {
		log.Println("Error while recording activity:", err)
		return
	}
	realtime.Emit(c, realtime.TenantRoom(tenantId), "activity", activity)
}

/*
* Notify appends a Notification for a user and mirrors it on the
* user's realtime room.
 */
func Notify(c *gin.Context, userCode, kind, title, body, refId string) {
	notification := bson.M{
		"code":      util.GenerateCode(util.NotificationCodePrefix),
		"userCode":  userCode,
		"tenantId":  c.GetString("tenantId"),
		"kind":      kind,
		"title":     title,
		"body":      body,
		"refId":     refId,
		"isRead":    false,
		"createdAt": time.Now(),
	}
	coll := db.OpenCollections(util.NotificationCollection)
	if _, err := db.CreateOne(c, coll, notification); err != nil {
		log.Println("Error while creating notification:", err)
		return
	}
	realtime.Emit(c, realtime.UserRoom(userCode), "notification", notification)
}
