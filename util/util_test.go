package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	for _, input := range []string{"2026-08-30", "30-08-2026", "30/08/2026", " 2026-08-30 "} {
		out, err := NormalizeDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, "2026-08-30", out, input)
	}

	_, err := NormalizeDate("08-30-2026")
	assert.Error(t, err)
	_, err = NormalizeDate("not a date")
	assert.Error(t, err)
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(OrderCodePrefix)
	assert.True(t, strings.HasPrefix(code, "ORD-"))
	assert.Len(t, code, len("ORD-")+8)
	assert.NotEqual(t, code, GenerateCode(OrderCodePrefix))
}

func TestGetTrimmedString(t *testing.T) {
	data := map[string]interface{}{"name": "  Asha  "}
	require.NoError(t, GetTrimmedString(data, "name"))
	assert.Equal(t, "Asha", data["name"])

	assert.Error(t, GetTrimmedString(data, "missing"))
	assert.Error(t, GetTrimmedString(map[string]interface{}{"name": 42}, "name"))
	assert.Error(t, GetTrimmedString(map[string]interface{}{"name": "   "}, "name"))
}

func TestToIntAndToFloat(t *testing.T) {
	assert.Equal(t, 5, ToInt(5))
	assert.Equal(t, 5, ToInt(int32(5)))
	assert.Equal(t, 5, ToInt(int64(5)))
	assert.Equal(t, 5, ToInt(5.0))
	assert.Equal(t, 0, ToInt("5x"))
	assert.Equal(t, 0, ToInt(nil))

	assert.Equal(t, 2.5, ToFloat(2.5))
	assert.Equal(t, 2.0, ToFloat(2))
	assert.Equal(t, 0.0, ToFloat(nil))
}

func TestResponseEnvelopes(t *testing.T) {
	ok := SuccessResponse(map[string]interface{}{"code": "X"})
	assert.Equal(t, "success", ok["status"])
	assert.NotNil(t, ok["data"])

	failed := FailedResponse(errors.New("boom"))
	assert.Equal(t, "failed", failed["status"])
	assert.Equal(t, "boom", failed["error"])
}
