package requests

import "appointment-skill/internal/app/models"

type BookAppointment struct {
	RequestID    string
	SessionID    string
	UserID       string
	Appointment  models.AppointmentData
	EmailSubject string
	EmailText    string
}
