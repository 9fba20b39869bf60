package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("U-1a2b3c4d", "DOCTOR", "T-1a2b3c4d", "hospital")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "U-1a2b3c4d", claims.Code)
	assert.Equal(t, "DOCTOR", claims.RoleCode)
	assert.Equal(t, "T-1a2b3c4d", claims.TenantID)
	assert.Equal(t, "hospital", claims.TenantType)
}

func TestParseJWT_RejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT("U-1a2b3c4d", "DOCTOR", "T-1a2b3c4d", "hospital")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestHasPrivilege(t *testing.T) {
	role := map[string]interface{}{
		"code": "PHARMACY_STAFF",
		"privileges": []interface{}{
			map[string]interface{}{
				"resource": "inventory",
				"actions":  []interface{}{"create", "view", "update"},
			},
			map[string]interface{}{
				"resource": "order",
				"actions":  []interface{}{"*"},
			},
		},
	}

	assert.True(t, HasPrivilege(role, "inventory", "view"))
	assert.False(t, HasPrivilege(role, "inventory", "delete"))
	assert.True(t, HasPrivilege(role, "order", "delete"))
	assert.False(t, HasPrivilege(role, "finance", "view"))
	assert.False(t, HasPrivilege(map[string]interface{}{}, "inventory", "view"))
}
