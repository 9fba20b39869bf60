package services

import (
	"testing"

	"MediFlow360/models"
	util "MediFlow360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func batch(code, batchNo, expiry string, qty int, mrp float64) map[string]interface{} {
	return map[string]interface{}{
		"code":       code,
		"batchNo":    batchNo,
		"expiryDate": expiry,
		"quantity":   qty,
		"mrp":        mrp,
	}
}

func TestOnHand(t *testing.T) {
	batches := []map[string]interface{}{
		batch("INV-1", "B1", "2027-01-01", 40, 12),
		batch("INV-2", "B2", "2026-10-01", 10, 12),
	}
	assert.Equal(t, 50, OnHand(batches))
	assert.Equal(t, 0, OnHand(nil))
}

func TestPlanDispense_EarliestExpiryFirst(t *testing.T) {
	batches := []map[string]interface{}{
		batch("INV-1", "B1", "2027-01-01", 40, 12),
		batch("INV-2", "B2", "2026-10-01", 10, 11),
	}
	allocations, err := PlanDispense(batches, 15, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	assert.Equal(t, "INV-2", allocations[0].InventoryCode)
	assert.Equal(t, 10, allocations[0].Qty)
	assert.Equal(t, 11.0, allocations[0].UnitPrice)
	assert.Equal(t, "INV-1", allocations[1].InventoryCode)
	assert.Equal(t, 5, allocations[1].Qty)
}

func TestPlanDispense_SkipsExpiredBatches(t *testing.T) {
	batches := []map[string]interface{}{
		batch("INV-1", "B1", "2026-09-01", 100, 12),
		batch("INV-2", "B2", "2027-01-01", 20, 12),
	}
	// expiry on the dispense date counts as expired
	allocations, err := PlanDispense(batches, 20, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Equal(t, "INV-2", allocations[0].InventoryCode)
}

func TestPlanDispense_AllStockExpired(t *testing.T) {
	batches := []map[string]interface{}{
		batch("INV-1", "B1", "2026-08-01", 50, 12),
		batch("INV-2", "B2", "2026-09-01", 20, 12),
	}
	_, err := PlanDispense(batches, 5, "2026-09-01")
	require.Error(t, err)
	assert.Equal(t, util.BATCH_EXPIRED, err.Error())
}

func TestPlanDispense_InsufficientStock(t *testing.T) {
	batches := []map[string]interface{}{
		batch("INV-1", "B1", "2027-01-01", 5, 12),
	}
	_, err := PlanDispense(batches, 6, "2026-09-01")
	require.Error(t, err)
	assert.Equal(t, util.INSUFFICIENT_STOCK, err.Error())
}

func TestPlanDispense_RejectsNonPositiveQty(t *testing.T) {
	_, err := PlanDispense(nil, 0, "2026-09-01")
	require.Error(t, err)
	assert.Equal(t, util.QUANTITY_MUST_BE_POSITIVE, err.Error())
}

func TestOpenRestockFilter_CountsManualAndAutoOrders(t *testing.T) {
	filter := OpenRestockFilter("T-1a2b3c4d", "MED-1")

	assert.Equal(t, "T-1a2b3c4d", filter["tenantId"])
	assert.Equal(t, models.OrderTypeRestock, filter["type"])
	assert.Equal(t, "MED-1", filter["lines.medicineCode"])
	assert.NotContains(t, filter, "isAuto")

	statuses := filter["status"].(bson.M)["$in"].([]string)
	assert.ElementsMatch(t, []string{models.OrderPlaced, models.OrderAccepted, models.OrderShipped}, statuses)
	assert.NotContains(t, statuses, models.OrderDelivered)
	assert.NotContains(t, statuses, models.OrderCancelled)
}

func TestNeedsRestock(t *testing.T) {
	assert.True(t, NeedsRestock(10, 10))
	assert.True(t, NeedsRestock(3, 10))
	assert.False(t, NeedsRestock(11, 10))
	assert.False(t, NeedsRestock(0, 0))
}
