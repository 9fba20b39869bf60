package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/*
* Response envelopes shared by every controller.
 */
func SuccessResponse(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"data":   data,
	}
}

func FailedResponse(err error) map[string]interface{} {
	return map[string]interface{}{
		"status": "failed",
		"error":  err.Error(),
	}
}

/*
* GenerateCode builds a surrogate id like ORD-9f1c2ab4.
 */
func GenerateCode(prefix string) string {
	id := uuid.New().String()
	return fmt.Sprintf("%s-%s", prefix, id[:8])
}

/*
* GetTrimmedString validates that data[field] is a non empty string,
* trims it in place and returns an error otherwise.
 */
func GetTrimmedString(data map[string]interface{}, field string) error {
	raw, ok := data[field]
	if !ok {
		return errors.New(field + " not provided")
	}
	val, ok := raw.(string)
	if !ok {
		return errors.New(field + " must be a string")
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return errors.New(field + " is empty")
	}
	data[field] = val
	return nil
}

/*
* TrimIfExists trims data[field] when it is present and a string.
 */
func TrimIfExists(data map[string]interface{}, field string) {
	if raw, ok := data[field]; ok {
		if val, ok := raw.(string); ok {
			data[field] = strings.TrimSpace(val)
		}
	}
}

/*
* NormalizeDate accepts dd-mm-yyyy or yyyy-mm-dd and returns yyyy-mm-dd.
 */
func NormalizeDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	layouts := []string{"2006-01-02", "02-01-2006", "02/01/2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unsupported date format: %s", input)
}

func GetString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func ToInt(value interface{}) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		i, _ := v.Int64()
		return int(i)
	default:
		return 0
	}
}

func ToFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}
