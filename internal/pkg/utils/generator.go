package utils

import (
	"appointment-skill/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateAppointmentStorageKey builds appointments/<date>/<title-slug>-<utc millis>.ics.
func GenerateAppointmentStorageKey(appointmentDate, title string, now time.Time) string {
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	return fmt.Sprintf(constvars.AppointmentStorageKeyFormat, appointmentDate, slug, now.UTC().UnixMilli())
}
