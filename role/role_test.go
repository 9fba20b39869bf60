package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func privilegesFor(t *testing.T, roleCode string) []map[string]interface{} {
	t.Helper()
	for _, r := range Defaults() {
		if r.RoleCode == roleCode {
			return r.Privileges
		}
	}
	t.Fatalf("role %s not seeded", roleCode)
	return nil
}

func hasAction(privileges []map[string]interface{}, resource, action string) bool {
	for _, p := range privileges {
		if p["resource"] != resource {
			continue
		}
		for _, a := range p["actions"].([]interface{}) {
			if a == action || a == "*" {
				return true
			}
		}
	}
	return false
}

func TestDefaults_SeedsFourRoles(t *testing.T) {
	roles := Defaults()
	require.Len(t, roles, 4)
	for _, r := range roles {
		assert.NotEmpty(t, r.RoleCode)
		assert.NotEmpty(t, r.Privileges)
		assert.Equal(t, "system", r.CreatedBy)
	}
}

func TestDefaults_RouteResourceCoverage(t *testing.T) {
	pharmacy := privilegesFor(t, "PHARMACY_STAFF")
	assert.True(t, hasAction(pharmacy, "stockAudit", "create"))
	assert.True(t, hasAction(pharmacy, "price", "create"))
	assert.True(t, hasAction(pharmacy, "inventory", "delete"))
	assert.True(t, hasAction(pharmacy, "prescription", "view"))
	assert.False(t, hasAction(pharmacy, "prescription", "create"))

	patient := privilegesFor(t, "PATIENT")
	assert.True(t, hasAction(patient, "appointment", "create"))
	assert.True(t, hasAction(patient, "appointment", "update"))
	assert.True(t, hasAction(patient, "patientRecord", "update"))
	assert.True(t, hasAction(patient, "notification", "update"))
	assert.False(t, hasAction(patient, "inventory", "view"))

	doctor := privilegesFor(t, "DOCTOR")
	assert.True(t, hasAction(doctor, "prescription", "create"))
	assert.False(t, hasAction(doctor, "order", "create"))

	distributor := privilegesFor(t, "DISTRIBUTOR")
	assert.True(t, hasAction(distributor, "order", "update"))
	assert.False(t, hasAction(distributor, "finance", "view"))
}
