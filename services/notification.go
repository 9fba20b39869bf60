package services

import (
	"log"
	"strconv"

	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Notifications are always scoped to the caller; nobody reads another
* user's inbox, admins included.
 */
func FetchMyNotifications(c *gin.Context) ([]interface{}, error) {
	code, err := GetCode(c)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"userCode": code}
	if c.Query("unread") == "true" {
		filter["isRead"] = false
	}
	coll := db.OpenCollections(util.NotificationCollection)
	notifications, err := db.FindAll(c, coll, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(100))
	if err != nil {
		log.Println("Error from FindAll while listing notifications:", err)
		return nil, err
	}
	return notifications, nil
}

func FetchUnreadCount(c *gin.Context) (map[string]interface{}, error) {
	code, err := GetCode(c)
	if err != nil {
		return nil, err
	}
	coll := db.OpenCollections(util.NotificationCollection)
	count, err := db.CountDocs(c, coll, bson.M{"userCode": code, "isRead": false})
	if err != nil {
		log.Println("Error from CountDocs while counting unread:", err)
		return nil, err
	}
	return map[string]interface{}{"unread": count}, nil
}

func MarkNotificationRead(c *gin.Context, notificationId string) (string, error) {
	code, err := GetCode(c)
	if err != nil {
		return "", err
	}
	coll := db.OpenCollections(util.NotificationCollection)
	filter := bson.M{"code": notificationId, "userCode": code}
	updated, err := db.UpdateOne(c, coll, filter, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		log.Println("Error from UpdateOne while marking notification read:", err)
		return "", err
	}
	log.Println("Marked notifications read:", updated.ModifiedCount)
	return "marked", nil
}

func MarkAllNotificationsRead(c *gin.Context) (string, error) {
	code, err := GetCode(c)
	if err != nil {
		return "", err
	}
	coll := db.OpenCollections(util.NotificationCollection)
	updated, err := db.UpdateMany(c, coll, bson.M{"userCode": code, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		log.Println("Error from UpdateMany while marking all read:", err)
		return "", err
	}
	return "marked " + strconv.FormatInt(updated.ModifiedCount, 10), nil
}

/*
* Activity feed for dashboards, newest first, paginated with
* page/size query params.
 */
func FetchActivityFeed(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if resource := c.Query("resource"); resource != "" {
		filter["resource"] = resource
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
	if size < 1 || size > 200 {
		size = 50
	}
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))
	coll := db.OpenCollections(util.ActivityCollection)
	activities, err := db.FindAll(c, coll, filter, opts)
	if err != nil {
		log.Println("Error from FindAll while listing activity:", err)
		return nil, err
	}
	return activities, nil
}
