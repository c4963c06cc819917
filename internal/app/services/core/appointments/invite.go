package appointments

import (
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

const (
	icalVersion          = "2.0"
	icalMethodRequest    = "REQUEST"
	icalStatusConfirmed  = "CONFIRMED"
	icalTransparencyBusy = "OPAQUE"
	icalBusyStatusProp   = "X-MICROSOFT-CDO-BUSYSTATUS"
	icalBusyStatusBusy   = "BUSY"
	icalMailtoFormat     = "mailto:%s"
)

type inviteParticipant struct {
	Name  string
	Email string
}

// buildInvite renders a single-event calendar with the appointment in UTC.
func buildInvite(uid string, appointment models.AppointmentData, organizer, attendee inviteParticipant, now time.Time) ([]byte, error) {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uid)
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, appointment.Start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, appointment.End.UTC())
	event.Props.SetText(ical.PropSummary, appointment.Title)
	event.Props.SetText(ical.PropDescription, appointment.Description)
	event.Props.SetText(ical.PropStatus, icalStatusConfirmed)
	event.Props.SetText(ical.PropTransparency, icalTransparencyBusy)
	event.Props.SetText(icalBusyStatusProp, icalBusyStatusBusy)

	organizerProp := ical.NewProp(ical.PropOrganizer)
	organizerProp.Value = fmt.Sprintf(icalMailtoFormat, organizer.Email)
	organizerProp.Params.Set(ical.ParamCommonName, organizer.Name)
	event.Props.Set(organizerProp)

	if attendee.Email != "" {
		attendeeProp := ical.NewProp(ical.PropAttendee)
		attendeeProp.Value = fmt.Sprintf(icalMailtoFormat, attendee.Email)
		attendeeProp.Params.Set(ical.ParamCommonName, attendee.Name)
		attendeeProp.Params.Set(ical.ParamRSVP, "TRUE")
		attendeeProp.Params.Set(ical.ParamParticipationStatus, "ACCEPTED")
		attendeeProp.Params.Set(ical.ParamRole, "REQ-PARTICIPANT")
		event.Props.Add(attendeeProp)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, constvars.AppointmentInviteProductID)
	cal.Props.SetText(ical.PropMethod, icalMethodRequest)
	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
