package services

import (
	"errors"
	"log"
	"strings"

	authorization "MediFlow360/config/authorization"
	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const maxLoginAttempts = 5

/*
* Check that email or phoneNo plus password came in the request.
 */
func ValidateLoginInput(data map[string]interface{}) error {
	_, emailExists := data["email"]
	_, phoneExists := data["phoneNo"]
	if !emailExists && !phoneExists {
		return errors.New(util.PLEASE_PROVIDE_EMAIL_OR_PHONE)
	}
	if err := util.GetTrimmedString(data, "password"); err != nil {
		log.Println("Error from GetTrimmedString for password:", err)
		return errors.New(util.PASSWORD_NOT_PROVIDED)
	}
	if emailExists {
		if err := util.GetTrimmedString(data, "email"); err != nil {
			return errors.New(util.EMAIL_NOT_PROVIDED)
		}
	}
	if phoneExists {
		if err := util.GetTrimmedString(data, "phoneNo"); err != nil {
			return errors.New(util.PHONE_NUMBER_NOT_PROVIDED)
		}
	}
	return nil
}

func BuildLoginFilter(data map[string]interface{}) bson.M {
	filter := bson.M{}
	if v, ok := data["email"].(string); ok && v != "" {
		filter["email"] = strings.ToLower(v)
	}
	if v, ok := data["phoneNo"].(string); ok && v != "" {
		filter["phoneNo"] = v
	}
	return filter
}

func bumpLoginAttempts(c *gin.Context, userCode string, attempts int) {
	coll := db.OpenCollections(util.UserCollection)
	update := bson.M{"$set": bson.M{"loginAttempts": attempts}}
	if attempts >= maxLoginAttempts {
		update = bson.M{"$set": bson.M{"loginAttempts": attempts, "isBlocked": true}}
	}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": userCode}, update); err != nil {
		log.Println("Error while updating loginAttempts:", err)
	}
}

/*
* Find the user, verify bcrypt, track consecutive failures and block
* the account after five of them, then hand back a signed token.
 */
func Login(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := ValidateLoginInput(data); err != nil {
		return nil, err
	}
	coll := db.OpenCollections(util.UserCollection)
	user := make(map[string]interface{})
	if err := db.FindOne(c, coll, BuildLoginFilter(data), user); err != nil {
		log.Println("Error from FindOne while logging in:", err)
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}

	if blocked, _ := user["isBlocked"].(bool); blocked {
		return nil, errors.New(util.ACCOUNT_BLOCKED)
	}

	userCode := util.GetString(user["code"])
	hashed := util.GetString(user["password"])
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(data["password"].(string))); err != nil {
		attempts := util.ToInt(user["loginAttempts"]) + 1
		bumpLoginAttempts(c, userCode, attempts)
		if attempts >= maxLoginAttempts {
			return nil, errors.New(util.ACCOUNT_BLOCKED)
		}
		return nil, errors.New(util.INCORRECT_PASSWORD)
	}

	bumpLoginAttempts(c, userCode, 0)

	token, err := authorization.GenerateJWT(
		userCode,
		util.GetString(user["roleCode"]),
		util.GetString(user["tenantId"]),
		util.GetString(user["tenantType"]),
	)
	if err != nil {
		log.Println("Error while generating token:", err)
		return nil, err
	}
	return map[string]interface{}{
		"token":      token,
		"code":       userCode,
		"name":       user["name"],
		"roleCode":   user["roleCode"],
		"tenantId":   user["tenantId"],
		"tenantType": user["tenantType"],
	}, nil
}

/*
* ChangePassword verifies the old password before storing a new hash.
 */
func ChangePassword(c *gin.Context, data map[string]interface{}) (string, error) {
	code, err := GetCode(c)
	if err != nil {
		return "", err
	}
	if err := util.GetTrimmedString(data, "oldPassword"); err != nil {
		return "", err
	}
	if err := util.GetTrimmedString(data, "newPassword"); err != nil {
		return "", err
	}
	coll := db.OpenCollections(util.UserCollection)
	user := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": code}, user); err != nil {
		return "", errors.New(util.RECORD_NOT_FOUND)
	}
	hashed := util.GetString(user["password"])
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(data["oldPassword"].(string))); err != nil {
		return "", errors.New(util.INCORRECT_PASSWORD)
	}
	newHash, err := HashPassword(data["newPassword"].(string))
	if err != nil {
		return "", err
	}
	update := bson.M{"$set": bson.M{"password": newHash}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": code}, update); err != nil {
		log.Println("Error while updating password:", err)
		return "", err
	}
	RefreshCache(c, util.UserKey, code, nil)
	return "password changed", nil
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func IsDuplicateUser(c *gin.Context, email, phoneNo string) (bool, error) {
	coll := db.OpenCollections(util.UserCollection)
	filter := bson.M{"$or": []bson.M{{"email": email}, {"phoneNo": phoneNo}}}
	existing := make(map[string]interface{})
	err := db.FindOne(c, coll, filter, existing)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
