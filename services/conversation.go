package services

import (
	"errors"
	"log"
	"sort"
	"time"

	db "MediFlow360/config/db"
	"MediFlow360/realtime"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* IsParticipant reports whether a user code is one of the two
* conversation participants.
 */
func IsParticipant(conversation map[string]interface{}, userCode string) bool {
	participants, err := NormalizeSlice(conversation["participants"])
	if err != nil {
		return false
	}
	for _, p := range participants {
		if util.GetString(p) == userCode {
			return true
		}
	}
	return false
}

/*
* StartConversation finds or creates the two-party conversation
* between the caller and the peer. Participants are stored sorted so
* the pair maps to one document regardless of who starts it.
 */
func StartConversation(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.GetTrimmedString(data, "peerCode"); err != nil {
		return nil, err
	}
	caller := c.GetString("code")
	peer := data["peerCode"].(string)
	if peer == caller {
		return nil, errors.New(util.PARTICIPANTS_MUST_BE_TWO)
	}
	if _, err := FetchByCode(c, util.UserCollection, util.UserKey, peer); err != nil {
		log.Println("Error while resolving conversation peer:", err)
		return nil, err
	}

	participants := []string{caller, peer}
	sort.Strings(participants)

	coll := db.OpenCollections(util.ConversationCollection)
	existing := make(map[string]interface{})
	err := db.FindOne(c, coll, bson.M{"participants": participants}, existing)
	if err == nil {
		return existing, nil
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error from FindOne while fetching conversation:", err)
		return nil, err
	}

	conversation := bson.M{
		"code":          util.GenerateCode(util.ConversationCodePrefix),
		"participants":  participants,
		"lastMessageAt": time.Time{},
		"createdAt":     time.Now(),
	}
	if _, err := db.CreateOne(c, coll, conversation); err != nil {
		log.Println("Error from CreateOne while creating conversation:", err)
		return nil, err
	}
	return map[string]interface{}(conversation), nil
}

func FetchMyConversations(c *gin.Context) ([]interface{}, error) {
	code, err := GetCode(c)
	if err != nil {
		return nil, err
	}
	coll := db.OpenCollections(util.ConversationCollection)
	conversations, err := db.FindAll(c, coll, bson.M{"participants": code},
		options.Find().SetSort(bson.M{"lastMessageAt": -1}))
	if err != nil {
		log.Println("Error from FindAll while listing conversations:", err)
		return nil, err
	}
	return conversations, nil
}

func fetchConversation(c *gin.Context, conversationCode string) (map[string]interface{}, error) {
	coll := db.OpenCollections(util.ConversationCollection)
	conversation := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": conversationCode}, conversation); err != nil {
		log.Println("Error from FindOne while fetching conversation:", err)
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	if !IsParticipant(conversation, c.GetString("code")) {
		return nil, errors.New(util.NOT_A_PARTICIPANT)
	}
	return conversation, nil
}

/*
* SendMessage appends a message, bumps lastMessageAt and mirrors the
* message to the other participant's realtime room.
 */
func SendMessage(c *gin.Context, conversationCode string, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.GetTrimmedString(data, "body"); err != nil {
		return nil, err
	}
	conversation, err := fetchConversation(c, conversationCode)
	if err != nil {
		return nil, err
	}
	sender := c.GetString("code")
	message := bson.M{
		"code":             util.GenerateCode(util.MessageCodePrefix),
		"conversationCode": conversationCode,
		"senderCode":       sender,
		"body":             data["body"],
		"sentAt":           time.Now(),
	}
	msgColl := db.OpenCollections(util.MessageCollection)
	if _, err := db.CreateOne(c, msgColl, message); err != nil {
		log.Println("Error from CreateOne while sending message:", err)
		return nil, err
	}
	convColl := db.OpenCollections(util.ConversationCollection)
	if _, err := db.UpdateOne(c, convColl, bson.M{"code": conversationCode},
		bson.M{"$set": bson.M{"lastMessageAt": message["sentAt"]}}); err != nil {
		log.Println("Error while bumping lastMessageAt:", err)
	}

	participants, _ := NormalizeSlice(conversation["participants"])
	for _, p := range participants {
		if peer := util.GetString(p); peer != sender {
			realtime.Emit(c, realtime.UserRoom(peer), "message", message)
		}
	}
	return map[string]interface{}(message), nil
}

func FetchMessages(c *gin.Context, conversationCode string) ([]interface{}, error) {
	if _, err := fetchConversation(c, conversationCode); err != nil {
		return nil, err
	}
	coll := db.OpenCollections(util.MessageCollection)
	messages, err := db.FindAll(c, coll, bson.M{"conversationCode": conversationCode},
		options.Find().SetSort(bson.M{"sentAt": 1}))
	if err != nil {
		log.Println("Error from FindAll while listing messages:", err)
		return nil, err
	}
	return messages, nil
}

/*
* MarkMessagesRead stamps readAt on the peer's unread messages.
 */
func MarkMessagesRead(c *gin.Context, conversationCode string) (string, error) {
	if _, err := fetchConversation(c, conversationCode); err != nil {
		return "", err
	}
	coll := db.OpenCollections(util.MessageCollection)
	filter := bson.M{
		"conversationCode": conversationCode,
		"senderCode":       bson.M{"$ne": c.GetString("code")},
		"readAt":           bson.M{"$exists": false},
	}
	updated, err := db.UpdateMany(c, coll, filter, bson.M{"$set": bson.M{"readAt": time.Now()}})
	if err != nil {
		log.Println("Error from UpdateMany while marking messages read:", err)
		return "", err
	}
	log.Println("Marked messages read:", updated.ModifiedCount)
	return "marked", nil
}
