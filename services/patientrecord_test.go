package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRecordArrays_DedupesStrings(t *testing.T) {
	existing := map[string]interface{}{
		"allergies":  []interface{}{"penicillin"},
		"conditions": []interface{}{"asthma"},
	}
	incoming := map[string]interface{}{
		"allergies": []interface{}{"penicillin", "sulfa"},
	}

	merged := MergeRecordArrays(existing, incoming)
	assert.Equal(t, []interface{}{"penicillin", "sulfa"}, merged["allergies"])
	assert.Equal(t, []interface{}{"asthma"}, merged["conditions"])
	assert.Empty(t, merged["medications"])
}

func TestMergeRecordArrays_VisitsAppendVerbatim(t *testing.T) {
	visit := map[string]interface{}{"date": "2026-08-01", "reason": "follow-up"}
	existing := map[string]interface{}{
		"visits": []interface{}{visit},
	}
	incoming := map[string]interface{}{
		"visits": []interface{}{visit},
	}

	merged := MergeRecordArrays(existing, incoming)
	require.Len(t, merged["visits"], 2)
}
