package models

import "time"

// AppointmentRequest holds the raw slot values of a scheduling dialog.
type AppointmentRequest struct {
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Timezone string `json:"timezone" validate:"required"`
}

// AppointmentData is kept in session attributes until the booking completes.
type AppointmentData struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Start           time.Time `json:"appointmentDateTime"`
	End             time.Time `json:"appointmentEndDateTime"`
	Timezone        string    `json:"userTimezone"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	RequesterName   string    `json:"profileName"`
	RequesterEmail  string    `json:"profileEmail"`
	RequesterPhone  string    `json:"profileMobileNumber"`
}

type CalendarInvite struct {
	StorageKey  string `json:"storageKey"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"-"`
	EmailSent   bool   `json:"emailSent"`
}

// BusyPeriod is a half-open [Start, End) interval reported by a calendar.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

func (p BusyPeriod) Overlaps(start, end time.Time) bool {
	return p.Start.Before(end) && start.Before(p.End)
}
