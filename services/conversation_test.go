package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsParticipant(t *testing.T) {
	conversation := map[string]interface{}{
		"participants": []interface{}{"U-1a2b3c4d", "U-9f8e7d6c"},
	}
	assert.True(t, IsParticipant(conversation, "U-1a2b3c4d"))
	assert.True(t, IsParticipant(conversation, "U-9f8e7d6c"))
	assert.False(t, IsParticipant(conversation, "U-deadbeef"))
	assert.False(t, IsParticipant(map[string]interface{}{"participants": "oops"}, "U-1a2b3c4d"))
}
