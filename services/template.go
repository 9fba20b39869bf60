package services

import (
	"errors"
	"fmt"
	"log"
	"regexp"

	db "MediFlow360/config/db"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

/*
* RenderTemplate substitutes {{key}} tokens with the supplied values.
* Tokens without a value render empty; keys listed as required must be
* supplied.
 */
func RenderTemplate(html string, required []string, values map[string]interface{}) (string, error) {
	for _, key := range required {
		if _, ok := values[key]; !ok {
			return "", fmt.Errorf("%s: %s", util.TEMPLATE_PLACEHOLDER_MISSING, key)
		}
	}
	rendered := placeholderPattern.ReplaceAllStringFunc(html, func(token string) string {
		key := placeholderPattern.FindStringSubmatch(token)[1]
		if v, ok := values[key]; ok {
			return util.GetString(v)
		}
		return ""
	})
	return rendered, nil
}

// ExtractPlaceholders lists the distinct {{key}} tokens in a template.
func ExtractPlaceholders(html string) []string {
	seen := map[string]bool{}
	keys := []string{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(html, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

func CreateTemplate(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	for _, f := range []string{"name", "kind", "html"} {
		if err := util.GetTrimmedString(data, f); err != nil {
			return nil, err
		}
	}
	html := data["html"].(string)
	required := []string{}
	if raw, ok := data["placeholders"]; ok {
		entries, err := NormalizeSlice(raw)
		if err != nil {
			return nil, errors.New("placeholders must be an array of keys")
		}
		for _, e := range entries {
			required = append(required, util.GetString(e))
		}
	} else {
		required = ExtractPlaceholders(html)
	}

	code := util.GenerateCode(util.TemplateCodePrefix)
	template := bson.M{
		"code":         code,
		"tenantId":     c.GetString("tenantId"),
		"name":         data["name"],
		"kind":         data["kind"],
		"html":         html,
		"placeholders": required,
	}
	PrepareCreateMetadata(c, template)

	coll := db.OpenCollections(util.TemplateCollection)
	inserted, err := db.CreateOne(c, coll, template)
	if err != nil {
		log.Println("Error from CreateOne while creating template:", err)
		return nil, err
	}
	log.Println("Inserted template:", inserted.InsertedID)
	RecordActivity(c, "template", "create", code, util.GetString(data["name"]))
	return map[string]interface{}(template), nil
}

func FetchTemplateByCode(c *gin.Context, templateCode string) (map[string]interface{}, error) {
	template, err := FetchByCode(c, util.TemplateCollection, util.TemplateKey, templateCode)
	if err != nil {
		return nil, err
	}
	if err := CheckTenantOwnership(c, template); err != nil {
		return nil, err
	}
	return template, nil
}

func FetchAllTemplates(c *gin.Context) ([]interface{}, error) {
	filter := TenantFilter(c, bson.M{})
	if kind := c.Query("kind"); kind != "" {
		filter["kind"] = kind
	}
	coll := db.OpenCollections(util.TemplateCollection)
	templates, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while listing templates:", err)
		return nil, err
	}
	return templates, nil
}

var templateUpdatableFields = []string{"name", "kind", "html", "placeholders"}

func UpdateTemplateByCode(c *gin.Context, templateCode string, data map[string]interface{}) (string, error) {
	if _, err := FetchTemplateByCode(c, templateCode); err != nil {
		return "", err
	}
	update := bson.M{}
	for _, f := range templateUpdatableFields {
		if v, ok := data[f]; ok {
			update[f] = v
		}
	}
	if len(update) == 0 {
		return "", errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)
	}
	if html, ok := update["html"].(string); ok {
		if _, hasList := update["placeholders"]; !hasList {
			update["placeholders"] = ExtractPlaceholders(html)
		}
	}
	PrepareUpdateMetadata(c, data)
	update["updatedAt"] = data["updatedAt"]
	update["updatedBy"] = data["updatedBy"]

	coll := db.OpenCollections(util.TemplateCollection)
	if _, err := db.UpdateOne(c, coll, bson.M{"code": templateCode}, bson.M{"$set": update}); err != nil {
		log.Println("Error from UpdateOne while updating template:", err)
		return "", err
	}
	RefreshCache(c, util.TemplateKey, templateCode, nil)
	return "updated", nil
}

func DeleteTemplateByCode(c *gin.Context, templateCode string) (string, error) {
	if _, err := FetchTemplateByCode(c, templateCode); err != nil {
		return "", err
	}
	coll := db.OpenCollections(util.TemplateCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": templateCode})
	if err != nil {
		log.Println("Error from DeleteOne while deleting template:", err)
		return "", err
	}
	log.Println("Deleted templates:", deleted.DeletedCount)
	RefreshCache(c, util.TemplateKey, templateCode, nil)
	return "deleted", nil
}

/*
* RenderTemplateByCode resolves the stored template and substitutes
* the request-supplied values; the controller returns the HTML.
 */
func RenderTemplateByCode(c *gin.Context, templateCode string, values map[string]interface{}) (string, error) {
	template, err := FetchTemplateByCode(c, templateCode)
	if err != nil {
		return "", err
	}
	required := []string{}
	if entries, err := NormalizeSlice(template["placeholders"]); err == nil {
		for _, e := range entries {
			required = append(required, util.GetString(e))
		}
	}
	rendered, err := RenderTemplate(util.GetString(template["html"]), required, values)
	if err != nil {
		return "", err
	}
	RecordActivity(c, "template", "render", templateCode, "")
	return rendered, nil
}
