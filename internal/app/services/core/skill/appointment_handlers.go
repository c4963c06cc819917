package skill

import (
	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// appointmentSlot is the requested meeting time resolved in the user's zone.
type appointmentSlot struct {
	Date      string
	Time      string
	Timezone  string
	Start     time.Time
	End       time.Time
	Speakable string
}

func resolveAppointmentSlot(input *HandlerInput, internalConfig *config.InternalConfig) (*appointmentSlot, error) {
	timezone, err := input.TimeZone()
	if err != nil {
		return nil, err
	}
	location, err := utils.LoadUserLocation(timezone)
	if err != nil {
		return nil, err
	}

	appointmentRequest := models.AppointmentRequest{
		Date:     input.Request.SlotValue(constvars.SlotAppointmentDate),
		Time:     input.Request.SlotValue(constvars.SlotAppointmentTime),
		Timezone: location.String(),
	}
	if err := utils.ValidateStruct(appointmentRequest); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	start, err := utils.ParseAppointmentDateTime(appointmentRequest.Date, appointmentRequest.Time, location)
	if err != nil {
		return nil, err
	}

	durationInMinutes := internalConfig.Skill.AppointmentDurationInMinutes
	if durationInMinutes <= 0 {
		durationInMinutes = constvars.DefaultAppointmentDurationMinutes
	}

	return &appointmentSlot{
		Date:      appointmentRequest.Date,
		Time:      appointmentRequest.Time,
		Timezone:  appointmentRequest.Timezone,
		Start:     start,
		End:       start.Add(time.Duration(durationInMinutes) * time.Minute),
		Speakable: speakableDateTime(input, start),
	}, nil
}

// speakableDateTime renders start with the layout and day and month names of
// the request's catalog. A catalog without them gets the US English form.
func speakableDateTime(input *HandlerInput, start time.Time) string {
	layout := input.T(constvars.LocaleKeyDateTimeLayout)
	if layout == constvars.LocaleKeyDateTimeLayout {
		layout = ""
	}
	return utils.SpeakableDateTime(start, layout, catalogNames(input, constvars.LocaleKeyWeekdayNames), catalogNames(input, constvars.LocaleKeyMonthNames))
}

func catalogNames(input *HandlerInput, key string) []string {
	value := input.T(key)
	if value == key {
		return nil
	}
	return strings.Split(value, ",")
}

type checkAvailabilityIntentHandler struct {
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func (h *checkAvailabilityIntentHandler) Name() string { return "CheckAvailabilityIntentHandler" }

func (h *checkAvailabilityIntentHandler) CanHandle(input *HandlerInput) bool {
	return input.IsIntent(constvars.IntentCheckAvailability)
}

func (h *checkAvailabilityIntentHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	requestID := utils.GetRequestID(input.Ctx)
	h.Log.Info("checkAvailabilityIntentHandler.Handle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	slot, err := resolveAppointmentSlot(input, h.InternalConfig)
	if err != nil {
		return nil, err
	}

	available, err := h.AvailabilityUsecase.IsSlotAvailable(input.Ctx, slot.Start, slot.End, slot.Timezone)
	if err != nil {
		return nil, err
	}

	h.Log.Info("checkAvailabilityIntentHandler.Handle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingAvailableKey, available),
	)

	if !available {
		return NewResponseBuilder().
			Speak(input.T(constvars.LocaleKeyTimeNotAvailable, slot.Speakable)).
			Reprompt(input.T(constvars.LocaleKeyTimeNotAvailableReprompt, slot.Speakable)).
			GetResponse(), nil
	}

	input.SessionAttributes[constvars.SessionAttributeAppointmentDate] = slot.Date
	input.SessionAttributes[constvars.SessionAttributeAppointmentTime] = slot.Time

	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyTimeAvailable, slot.Speakable)).
		Reprompt(input.T(constvars.LocaleKeyTimeAvailableReprompt, slot.Speakable)).
		GetResponse(), nil
}

type startedInProgressScheduleAppointmentIntentHandler struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func (h *startedInProgressScheduleAppointmentIntentHandler) Name() string {
	return "StartedInProgressScheduleAppointmentIntentHandler"
}

func (h *startedInProgressScheduleAppointmentIntentHandler) CanHandle(input *HandlerInput) bool {
	return input.IsIntent(constvars.IntentScheduleAppointment) && input.DialogState() != constvars.DialogStateCompleted
}

// Handle asks for explicit confirmation once both slots are filled and
// otherwise hands slot filling back to the platform.
func (h *startedInProgressScheduleAppointmentIntentHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	requestID := utils.GetRequestID(input.Ctx)
	currentIntent := input.Request.Request.Intent
	h.Log.Info("startedInProgressScheduleAppointmentIntentHandler.Handle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDialogStateKey, input.DialogState()),
		zap.String(constvars.LoggingConfirmationStatusKey, input.ConfirmationStatus()),
	)

	slotsFilled := input.Request.SlotValue(constvars.SlotAppointmentDate) != "" &&
		input.Request.SlotValue(constvars.SlotAppointmentTime) != ""
	if !slotsFilled || input.ConfirmationStatus() != constvars.ConfirmationStatusNone {
		return NewResponseBuilder().
			AddDelegateDirective(currentIntent).
			GetResponse(), nil
	}

	slot, err := resolveAppointmentSlot(input, h.InternalConfig)
	if err != nil {
		return nil, err
	}

	fromName := h.InternalConfig.Appointment.FromName
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyAppointmentConfirm, fromName, slot.Speakable)).
		Reprompt(input.T(constvars.LocaleKeyAppointmentConfirmReprompt, fromName, slot.Speakable)).
		AddConfirmIntentDirective(currentIntent).
		GetResponse(), nil
}

type completedScheduleAppointmentIntentHandler struct {
	AvailabilityUsecase contracts.AvailabilityUsecase
	AppointmentUsecase  contracts.AppointmentUsecase
	LockService         contracts.LockerService
	// ResourceLimiter may be nil, which disables the per-user quota.
	ResourceLimiter contracts.ResourceLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func (h *completedScheduleAppointmentIntentHandler) Name() string {
	return "CompletedScheduleAppointmentIntentHandler"
}

func (h *completedScheduleAppointmentIntentHandler) CanHandle(input *HandlerInput) bool {
	return input.IsIntent(constvars.IntentScheduleAppointment) && input.DialogState() == constvars.DialogStateCompleted
}

func (h *completedScheduleAppointmentIntentHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	requestID := utils.GetRequestID(input.Ctx)
	h.Log.Info("completedScheduleAppointmentIntentHandler.Handle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConfirmationStatusKey, input.ConfirmationStatus()),
	)

	slot, err := resolveAppointmentSlot(input, h.InternalConfig)
	if err != nil {
		return nil, err
	}

	if input.ConfirmationStatus() == constvars.ConfirmationStatusDenied {
		h.Log.Info("completedScheduleAppointmentIntentHandler.Handle confirmation denied",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return NewResponseBuilder().
			Speak(input.T(constvars.LocaleKeyNoConfirm)).
			Reprompt(input.T(constvars.LocaleKeyNoConfirmReprompt)).
			GetResponse(), nil
	}

	profile, err := input.Profile()
	if err != nil {
		return nil, err
	}

	appointmentData := models.AppointmentData{
		Title:           input.T(constvars.LocaleKeyAppointmentTitle, profile.Name),
		Description:     input.T(constvars.LocaleKeyAppointmentDescription, profile.Name),
		Start:           slot.Start,
		End:             slot.End,
		Timezone:        slot.Timezone,
		AppointmentDate: slot.Date,
		AppointmentTime: slot.Time,
		RequesterName:   profile.Name,
		RequesterEmail:  profile.Email,
		RequesterPhone:  profile.MobileNumber.String(),
	}
	input.SessionAttributes[constvars.SessionAttributeAppointmentData] = appointmentData

	available, err := h.AvailabilityUsecase.IsSlotAvailable(input.Ctx, slot.Start, slot.End, slot.Timezone)
	if err != nil {
		return nil, err
	}
	if !available {
		h.Log.Info("completedScheduleAppointmentIntentHandler.Handle slot is busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time(constvars.LoggingStartKey, slot.Start),
		)
		return NewResponseBuilder().
			Speak(input.T(constvars.LocaleKeyTimeNotAvailable, slot.Speakable)).
			Reprompt(input.T(constvars.LocaleKeyTimeNotAvailableReprompt, slot.Speakable)).
			GetResponse(), nil
	}

	allowed, err := h.withinBookingQuota(input)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return NewResponseBuilder().
			Speak(input.T(constvars.LocaleKeyBookingLimitReached)).
			WithShouldEndSession(true).
			GetResponse(), nil
	}

	fromName := h.InternalConfig.Appointment.FromName
	bookRequest := &requests.BookAppointment{
		RequestID:    input.Request.Request.RequestID,
		SessionID:    input.Request.SessionID(),
		UserID:       input.Request.UserID(),
		Appointment:  appointmentData,
		EmailSubject: input.T(constvars.LocaleKeyEmailSubject, profile.Name, fromName),
		EmailText:    input.T(constvars.LocaleKeyEmailText, profile.Name, fromName, appointmentData.RequesterPhone),
	}
	if err := h.bookOnce(input, bookRequest); err != nil {
		return nil, err
	}

	delete(input.SessionAttributes, constvars.SessionAttributeAppointmentData)

	speech := input.T(constvars.LocaleKeyAppointmentConfirmCompleted, fromName, slot.Speakable)
	return NewResponseBuilder().
		Speak(speech).
		WithSimpleCard(input.T(constvars.LocaleKeyAppointmentTitle, fromName), speech).
		GetResponse(), nil
}

// bookOnce books under a lock keyed by the platform request id, so a
// redelivered request answers without booking twice. The lock is released
// only when booking fails.
func (h *completedScheduleAppointmentIntentHandler) bookOnce(input *HandlerInput, bookRequest *requests.BookAppointment) error {
	requestID := utils.GetRequestID(input.Ctx)
	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, bookRequest.RequestID)
	lockTTL := time.Duration(h.InternalConfig.Redis.BookingLockTTLInSeconds) * time.Second

	acquired, lockValue, err := h.LockService.TryLock(input.Ctx, lockKey, lockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		h.Log.Warn("completedScheduleAppointmentIntentHandler.Handle request already booked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil
	}

	invite, err := h.AppointmentUsecase.BookAppointment(input.Ctx, bookRequest)
	if err != nil {
		if unlockErr := h.LockService.Unlock(input.Ctx, lockKey, lockValue); unlockErr != nil {
			h.Log.Error("completedScheduleAppointmentIntentHandler.Handle error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
		return err
	}

	utils.LogBusinessEvent(h.Log, "appointment_booked", requestID,
		zap.String(constvars.LoggingStorageKey, invite.StorageKey),
		zap.Bool(constvars.LoggingEmailSentKey, invite.EmailSent),
	)
	return nil
}

func (h *completedScheduleAppointmentIntentHandler) withinBookingQuota(input *HandlerInput) (bool, error) {
	if h.ResourceLimiter == nil {
		return true, nil
	}

	decision, err := h.ResourceLimiter.ApplyResourceLimiter(input.Ctx, &models.ResourceLimit{
		ResourceName:     input.Request.UserID(),
		LimiterGroupName: constvars.BookingQuotaLimiterGroup,
		Window:           time.Duration(h.InternalConfig.Redis.BookingQuotaWindowInSeconds) * time.Second,
		MaxQuota:         h.InternalConfig.Redis.BookingQuotaPerUser,
	})
	if err != nil {
		return false, err
	}
	if !decision.Allowed {
		h.Log.Warn("completedScheduleAppointmentIntentHandler.Handle booking quota reached",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(input.Ctx)),
			zap.Duration(constvars.LoggingRetryAfterKey, decision.RetryAfter),
		)
	}
	return decision.Allowed, nil
}
