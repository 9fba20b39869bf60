package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate30MinSlots(t *testing.T) {
	slots := Generate30MinSlots("10:00", "12:00")
	require.Len(t, slots, 4)
	assert.Equal(t, "10:00", slots[0]["start"])
	assert.Equal(t, "10:30", slots[0]["end"])
	assert.Equal(t, "11:30", slots[3]["start"])
	assert.Equal(t, "12:00", slots[3]["end"])
	for _, s := range slots {
		assert.Equal(t, true, s["isAvailable"])
		assert.Equal(t, false, s["isBooked"])
	}
}

func TestIsDoctorOnLeave(t *testing.T) {
	doctor := map[string]interface{}{
		"leaveDates": []interface{}{"2026-09-01", "2026-09-02"},
	}
	assert.True(t, IsDoctorOnLeave(doctor, "2026-09-01"))
	assert.False(t, IsDoctorOnLeave(doctor, "2026-09-03"))
	assert.False(t, IsDoctorOnLeave(map[string]interface{}{}, "2026-09-01"))
}
