package services

import (
	"testing"

	"MediFlow360/models"
	util "MediFlow360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidOrderTransition(t *testing.T) {
	assert.True(t, ValidOrderTransition(models.OrderPlaced, models.OrderAccepted))
	assert.True(t, ValidOrderTransition(models.OrderPlaced, models.OrderCancelled))
	assert.True(t, ValidOrderTransition(models.OrderAccepted, models.OrderShipped))
	assert.True(t, ValidOrderTransition(models.OrderShipped, models.OrderDelivered))

	assert.False(t, ValidOrderTransition(models.OrderPlaced, models.OrderDelivered))
	assert.False(t, ValidOrderTransition(models.OrderDelivered, models.OrderCancelled))
	assert.False(t, ValidOrderTransition(models.OrderCancelled, models.OrderPlaced))
	assert.False(t, ValidOrderTransition("", models.OrderPlaced))
}

func TestPlanSaleItems_AllItemsCovered(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"medicineCode": "MED-1", "quantity": 5},
		map[string]interface{}{"medicineCode": "MED-2", "quantity": 3, "isDispensed": true},
		map[string]interface{}{"medicineCode": "MED-3", "quantity": 2},
	}
	batches := map[string][]map[string]interface{}{
		"MED-1": {batch("INV-1", "B1", "2027-01-01", 10, 12)},
		"MED-3": {batch("INV-3", "B3", "2027-01-01", 2, 8)},
	}

	plans, err := PlanSaleItems(items, batches, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "MED-1", plans[0].MedicineCode)
	assert.Equal(t, 5, plans[0].Allocations[0].Qty)
	assert.Equal(t, "MED-3", plans[1].MedicineCode)
}

func TestPlanSaleItems_ShortItemRefusesWholeDispense(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"medicineCode": "MED-1", "quantity": 5},
		map[string]interface{}{"medicineCode": "MED-2", "quantity": 3},
	}
	batches := map[string][]map[string]interface{}{
		"MED-1": {batch("INV-1", "B1", "2027-01-01", 10, 12)},
		"MED-2": {batch("INV-2", "B2", "2027-01-01", 1, 8)},
	}

	plans, err := PlanSaleItems(items, batches, "2026-09-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MED-2")
	assert.Contains(t, err.Error(), util.INSUFFICIENT_STOCK)
	// nothing is planned, so nothing gets decremented
	assert.Nil(t, plans)
}

func TestOrderAmount(t *testing.T) {
	lines := []models.OrderLine{
		{MedicineCode: "MED-1", Qty: 3, UnitPrice: 10.5},
		{MedicineCode: "MED-2", Qty: 2, UnitPrice: 4},
	}
	assert.Equal(t, 39.5, OrderAmount(lines))
	assert.Equal(t, 0.0, OrderAmount(nil))
}
