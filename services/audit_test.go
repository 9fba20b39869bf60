package services

import (
	"testing"

	"MediFlow360/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeAuditLine(t *testing.T) {
	item := map[string]interface{}{
		"code":          "INV-1",
		"medicineCode":  "MED-1",
		"quantity":      40,
		"purchasePrice": 8.5,
	}

	line := ComputeAuditLine(item, 37)
	assert.Equal(t, "INV-1", line.InventoryCode)
	assert.Equal(t, 40, line.Expected)
	assert.Equal(t, 37, line.Counted)
	assert.Equal(t, -3, line.Variance)
	assert.Equal(t, -25.5, line.VarianceValue)

	// overage counts positive
	line = ComputeAuditLine(item, 42)
	assert.Equal(t, 2, line.Variance)
	assert.Equal(t, 17.0, line.VarianceValue)
}

func TestTotalVariance(t *testing.T) {
	lines := []models.AuditLine{
		{Variance: -3, VarianceValue: -25.5},
		{Variance: 2, VarianceValue: 17},
		{Variance: 0, VarianceValue: 0},
	}
	units, value := TotalVariance(lines)
	assert.Equal(t, -1, units)
	assert.Equal(t, -8.5, value)
}
