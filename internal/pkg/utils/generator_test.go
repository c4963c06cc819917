package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAppointmentStorageKey(t *testing.T) {
	now := time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC)

	key := GenerateAppointmentStorageKey("2024-06-17", "Appointment With Jane Doe", now)

	assert.Equal(t, "appointments/2024-06-17/appointment-with-jane-doe-1718636400000.ics", key)
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
