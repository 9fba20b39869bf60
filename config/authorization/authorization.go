package authorization

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	cache "MediFlow360/config/cache"
	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
)

type Claims struct {
	Code       string `json:"code"`
	RoleCode   string `json:"roleCode"`
	TenantID   string `json:"tenantId"`
	TenantType string `json:"tenantType"`
	jwt.RegisteredClaims
}

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "mediflow-dev-secret"
	}
	return []byte(s)
}

func GenerateJWT(code, roleCode, tenantId, tenantType string) (string, error) {
	claims := &Claims{
		Code:       code,
		RoleCode:   roleCode,
		TenantID:   tenantId,
		TenantType: tenantType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   code,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func ParseJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

/*
* JWTAuth validates the bearer token and loads the caller identity
* into the gin context for every downstream handler.
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New("authorization header required")))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New("invalid authorization header")))
			return
		}
		claims, err := ParseJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(err))
			return
		}
		c.Set("code", claims.Code)
		c.Set("roleCode", claims.RoleCode)
		c.Set("tenantId", claims.TenantID)
		c.Set("tenantType", claims.TenantType)
		c.Set("isAdmin", claims.RoleCode == "ADMIN")
		c.Next()
	}
}

/*
* HasPrivilege walks a role document's privileges list looking for the
* resource/action pair. Privilege entries look like
* {"resource": "inventory", "actions": ["create", "view"]}.
* An action entry of "*" grants everything on the resource.
 */
func HasPrivilege(role map[string]interface{}, resource, action string) bool {
	raw, ok := role["privileges"]
	if !ok || raw == nil {
		return false
	}
	entries, ok := normalizeSlice(raw)
	if !ok {
		return false
	}
	for _, e := range entries {
		entry, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		if util.GetString(entry["resource"]) != resource {
			continue
		}
		actions, ok := normalizeSlice(entry["actions"])
		if !ok {
			continue
		}
		for _, a := range actions {
			s := util.GetString(a)
			if s == action || s == "*" {
				return true
			}
		}
	}
	return false
}

func normalizeSlice(raw interface{}) ([]interface{}, bool) {
	switch v := raw.(type) {
	case []interface{}:
		return v, true
	case bson.A:
		return []interface{}(v), true
	default:
		return nil, false
	}
}

/*
* FetchRole resolves a role document, cache first.
 */
func FetchRole(c *gin.Context, roleCode string) (map[string]interface{}, error) {
	key := util.RoleKey + roleCode
	if cached, exists, err := cache.GetCache(c, key); exists && err == nil {
		return cached, nil
	}
	coll := db.OpenCollections(util.RoleCollection)
	role := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"roleCode": roleCode}, role); err != nil {
		return nil, errors.New("role not found: " + roleCode)
	}
	if err := cache.SetCache(c, key, role); err != nil {
		log.Println("Error while caching role:", err)
	}
	return role, nil
}

/*
* Authorize gates a route on a resource/action pair. ADMIN bypasses
* the privilege lookup.
 */
func Authorize(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleCode := c.GetString("roleCode")
		if roleCode == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(errors.New(util.INVALID_USER_TO_ACCESS)))
			return
		}
		if roleCode == "ADMIN" {
			c.Next()
			return
		}
		role, err := FetchRole(c, roleCode)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(err))
			return
		}
		if !HasPrivilege(role, resource, action) {
			log.Printf("Role %s denied %s:%s", roleCode, resource, action)
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(errors.New(util.INVALID_USER_TO_ACCESS)))
			return
		}
		c.Next()
	}
}
