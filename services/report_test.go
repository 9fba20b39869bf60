package services

import (
	"testing"

	"MediFlow360/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildTopMedicinesPipeline(t *testing.T) {
	pipeline := BuildTopMedicinesPipeline("T-1a2b3c4d", 5)
	require.NotEmpty(t, pipeline)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, "T-1a2b3c4d", match["tenantId"])
	assert.Equal(t, models.OrderTypeSale, match["type"])

	found := false
	for _, stage := range pipeline {
		if limit, ok := stage["$limit"]; ok {
			assert.Equal(t, 5, limit)
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildTopMedicinesPipeline_DefaultLimit(t *testing.T) {
	pipeline := BuildTopMedicinesPipeline("T-1a2b3c4d", 0)
	for _, stage := range pipeline {
		if limit, ok := stage["$limit"]; ok {
			assert.Equal(t, 10, limit)
		}
	}
}

func TestReportPipelinesScopeByTenant(t *testing.T) {
	for name, pipeline := range map[string][]bson.M{
		"sales":     BuildSalesSummaryPipeline("T-1a2b3c4d"),
		"status":    BuildOrderStatusPipeline("T-1a2b3c4d"),
		"valuation": BuildStockValuationPipeline("T-1a2b3c4d"),
		"finance":   BuildFinanceSummaryPipeline("T-1a2b3c4d"),
	} {
		require.NotEmpty(t, pipeline, name)
		match, ok := pipeline[0]["$match"].(bson.M)
		require.True(t, ok, name)
		assert.Equal(t, "T-1a2b3c4d", match["tenantId"], name)
	}
}
