package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 100.0, EffectivePrice(100, 0))
	assert.Equal(t, 100.0, EffectivePrice(100, -5))
	assert.Equal(t, 75.0, EffectivePrice(100, 25))
	assert.Equal(t, 0.0, EffectivePrice(100, 100))
	// discounts past 100 clamp instead of going negative
	assert.Equal(t, 0.0, EffectivePrice(100, 150))
}
