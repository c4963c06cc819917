package config

import (
	"appointment-skill/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	t.Setenv("CHECK_FREEBUSY", "true")
	t.Setenv("SEND_EMAIL", "true")

	internalConfig := NewInternalConfig()

	assert.Equal(t, constvars.DefaultSkillName, internalConfig.Skill.Name)
	assert.Equal(t, constvars.DefaultAppointmentDurationMinutes, internalConfig.Skill.AppointmentDurationInMinutes)
	assert.Equal(t, constvars.DefaultLocale, internalConfig.Skill.DefaultLocale)
	assert.True(t, internalConfig.Calendar.CheckFreeBusy)
	assert.True(t, internalConfig.Appointment.SendEmail)
	assert.Equal(t, constvars.CalendarProviderGoogle, internalConfig.Calendar.Provider)
}

func TestMissingRequiredKeys(t *testing.T) {
	internalConfig := &InternalConfig{
		Appointment: Appointment{
			FromName:  "Dr. Smith",
			FromEmail: "clinic@example.com",
		},
	}

	assert.Equal(t, []string{"S3_PERSISTENCE_BUCKET", "NOTIFY_EMAIL"}, internalConfig.MissingRequiredKeys())

	internalConfig.Appointment.StorageBucket = "appointments"
	internalConfig.Appointment.NotifyEmail = "owner@example.com"
	assert.Empty(t, internalConfig.MissingRequiredKeys())
}

func TestNewDriverConfigGoogle(t *testing.T) {
	t.Setenv("REDIRECT_URIS", "urn:ietf:wg:oauth:2.0:oob,http://localhost")
	t.Setenv("EXPIRE_DATE", "1718636400000")

	driverConfig := NewDriverConfig()

	assert.Equal(t, []string{"urn:ietf:wg:oauth:2.0:oob", "http://localhost"}, driverConfig.Google.RedirectURIs)
	assert.Equal(t, int64(1718636400000), driverConfig.Google.ExpireDate)
}
