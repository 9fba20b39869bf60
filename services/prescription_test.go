package services

import (
	"testing"

	util "MediFlow360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDosesPerDay(t *testing.T) {
	assert.Equal(t, 1, DosesPerDay(nil))
	assert.Equal(t, 1, DosesPerDay(map[string]interface{}{}))
	assert.Equal(t, 2, DosesPerDay(map[string]interface{}{"morning": true, "night": true}))
	assert.Equal(t, 3, DosesPerDay(map[string]interface{}{"morning": true, "afternoon": true, "night": true}))
	assert.Equal(t, 1, DosesPerDay(map[string]interface{}{"morning": false}))
}

func TestValidatePrescriptionItems_QuantityDefaulting(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"medicineCode": "MED-1",
			"days":         5,
			"frequency":    map[string]interface{}{"morning": true, "night": true},
		},
	}
	items, err := ValidatePrescriptionItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0]["quantity"])
	assert.Equal(t, false, items[0]["isDispensed"])
}

func TestValidatePrescriptionItems_ExplicitQuantityKept(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"medicineCode": "MED-1", "quantity": 7},
	}
	items, err := ValidatePrescriptionItems(raw)
	require.NoError(t, err)
	assert.Equal(t, 7, util.ToInt(items[0]["quantity"]))
	assert.Equal(t, 1, items[0]["days"])
}

func TestValidatePrescriptionItems_Errors(t *testing.T) {
	_, err := ValidatePrescriptionItems(nil)
	require.Error(t, err)
	assert.Equal(t, util.ITEMS_MUST_BE_ARRAY, err.Error())

	_, err = ValidatePrescriptionItems([]interface{}{map[string]interface{}{"days": 2}})
	assert.Error(t, err)
}
