package services

import (
	"testing"

	"MediFlow360/models"
	util "MediFlow360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidAppointmentTransition(t *testing.T) {
	assert.True(t, ValidAppointmentTransition(models.AppointmentRequested, models.AppointmentConfirmed))
	assert.True(t, ValidAppointmentTransition(models.AppointmentRequested, models.AppointmentCancelled))
	assert.True(t, ValidAppointmentTransition(models.AppointmentConfirmed, models.AppointmentCompleted))
	assert.True(t, ValidAppointmentTransition(models.AppointmentConfirmed, models.AppointmentNoShow))

	assert.False(t, ValidAppointmentTransition(models.AppointmentRequested, models.AppointmentCompleted))
	assert.False(t, ValidAppointmentTransition(models.AppointmentCompleted, models.AppointmentCancelled))
	assert.False(t, ValidAppointmentTransition(models.AppointmentCancelled, models.AppointmentRequested))
}

func slotDoc(slots []map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"doctorId": "U-doc1",
		"date":     "2026-09-05",
		"slots":    toSlice(slots),
	}
}

func toSlice(slots []map[string]interface{}) []interface{} {
	out := []interface{}{}
	for _, s := range slots {
		out = append(out, s)
	}
	return out
}

func TestExtractSlots(t *testing.T) {
	doc := slotDoc([]map[string]interface{}{
		{"start": "10:00", "end": "10:30", "isAvailable": true, "isBooked": false},
	})
	slots, err := ExtractSlots(doc)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0]["start"])

	_, err = ExtractSlots(map[string]interface{}{"slots": "oops"})
	assert.Error(t, err)
}

func TestValidateSlot(t *testing.T) {
	slots := []map[string]interface{}{
		{"start": "10:00", "isAvailable": true, "isBooked": false},
		{"start": "10:30", "isAvailable": false, "isBooked": false},
		{"start": "11:00", "isAvailable": true, "isBooked": true},
	}

	assert.NoError(t, ValidateSlot(slots, "10:00"))

	err := ValidateSlot(slots, "10:30")
	require.Error(t, err)
	assert.Equal(t, util.SLOT_UNAVAILABLE, err.Error())

	err = ValidateSlot(slots, "11:00")
	require.Error(t, err)
	assert.Equal(t, util.SLOT_ALREADY_BOOKED, err.Error())

	err = ValidateSlot(slots, "12:00")
	require.Error(t, err)
	assert.Equal(t, util.NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE, err.Error())
}
