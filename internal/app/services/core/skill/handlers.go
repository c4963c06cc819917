package skill

import (
	"appointment-skill/internal/app/config"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequestHandler answers the requests it claims through CanHandle. The
// dispatcher asks handlers in registration order and the first claim wins.
type RequestHandler interface {
	Name() string
	CanHandle(input *HandlerInput) bool
	Handle(input *HandlerInput) (*responses.ResponseBody, error)
}

type invalidConfigHandler struct{}

func (h *invalidConfigHandler) Name() string { return "InvalidConfigHandler" }

func (h *invalidConfigHandler) CanHandle(input *HandlerInput) bool {
	return input.Attributes.InvalidConfig
}

func (h *invalidConfigHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyNotConfigured)).
		GetResponse(), nil
}

var permissionErrorMessages = map[string]string{
	constvars.PermissionErrorNoName:              constvars.LocaleKeyNoName,
	constvars.PermissionErrorNoEmail:             constvars.LocaleKeyNoEmail,
	constvars.PermissionErrorNoPhone:             constvars.LocaleKeyNoPhone,
	constvars.PermissionErrorPermissionsRequired: constvars.LocaleKeyPermissionsRequired,
}

type invalidPermissionsHandler struct{}

func (h *invalidPermissionsHandler) Name() string { return "InvalidPermissionsHandler" }

func (h *invalidPermissionsHandler) CanHandle(input *HandlerInput) bool {
	return input.Attributes.PermissionsError != ""
}

func (h *invalidPermissionsHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	key, ok := permissionErrorMessages[input.Attributes.PermissionsError]
	if !ok {
		return nil, exceptions.ErrUnknownPermissionError(input.Attributes.PermissionsError)
	}
	return NewResponseBuilder().
		Speak(input.T(key)).
		GetResponse(), nil
}

type launchRequestHandler struct {
	InternalConfig *config.InternalConfig
}

func (h *launchRequestHandler) Name() string { return "LaunchRequestHandler" }

func (h *launchRequestHandler) CanHandle(input *HandlerInput) bool {
	return input.RequestType() == constvars.RequestTypeLaunch
}

func (h *launchRequestHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyWelcome, h.InternalConfig.Skill.Name)).
		Reprompt(input.T(constvars.LocaleKeyGeneralReprompt)).
		GetResponse(), nil
}

type yesIntentHandler struct{}

func (h *yesIntentHandler) Name() string { return "YesIntentHandler" }

func (h *yesIntentHandler) CanHandle(input *HandlerInput) bool {
	return input.IsIntent(constvars.IntentYes)
}

// Handle starts a fresh scheduling dialog, pre-filled with a slot the user
// already checked.
func (h *yesIntentHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	intent := &requests.Intent{
		Name:               constvars.IntentScheduleAppointment,
		ConfirmationStatus: constvars.ConfirmationStatusNone,
		Slots:              map[string]*requests.Slot{},
	}
	for _, slotName := range []string{constvars.SlotAppointmentDate, constvars.SlotAppointmentTime} {
		if value := input.SessionString(slotName); value != "" {
			intent.Slots[slotName] = &requests.Slot{
				Name:               slotName,
				Value:              value,
				ConfirmationStatus: constvars.ConfirmationStatusNone,
			}
		}
	}

	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyYesSchedule)).
		AddDelegateDirective(intent).
		GetResponse(), nil
}

type noIntentHandler struct{}

func (h *noIntentHandler) Name() string { return "NoIntentHandler" }

func (h *noIntentHandler) CanHandle(input *HandlerInput) bool {
	return input.IsIntent(constvars.IntentNo)
}

func (h *noIntentHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyNoSchedule)).
		GetResponse(), nil
}

type helpIntentHandler struct{}

func (h *helpIntentHandler) Name() string { return "HelpIntentHandler" }

func (h *helpIntentHandler) CanHandle(input *HandlerInput) bool {
	return input.IsIntent(constvars.IntentHelp)
}

func (h *helpIntentHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyHelp)).
		Reprompt(input.T(constvars.LocaleKeyGeneralReprompt)).
		GetResponse(), nil
}

type cancelAndStopIntentHandler struct{}

func (h *cancelAndStopIntentHandler) Name() string { return "CancelAndStopIntentHandler" }

func (h *cancelAndStopIntentHandler) CanHandle(input *HandlerInput) bool {
	return input.IsIntent(constvars.IntentCancel, constvars.IntentStop)
}

func (h *cancelAndStopIntentHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyGoodbye)).
		WithShouldEndSession(true).
		GetResponse(), nil
}

type sessionEndedRequestHandler struct {
	Log *zap.Logger
}

func (h *sessionEndedRequestHandler) Name() string { return "SessionEndedRequestHandler" }

func (h *sessionEndedRequestHandler) CanHandle(input *HandlerInput) bool {
	return input.RequestType() == constvars.RequestTypeSessionEnded
}

func (h *sessionEndedRequestHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(input.Ctx)),
		zap.String(constvars.LoggingSessionIDKey, input.Request.SessionID()),
		zap.String(constvars.LoggingReasonKey, input.Request.Request.Reason),
	}
	if requestErr := input.Request.Request.Error; requestErr != nil {
		fields = append(fields,
			zap.String(constvars.LoggingErrorCodeKey, requestErr.Type),
			zap.String(constvars.LoggingErrorMessageKey, requestErr.Message),
		)
	}
	h.Log.Info("sessionEndedRequestHandler.Handle session ended", fields...)

	return NewResponseBuilder().GetResponse(), nil
}

// intentReflectorHandler echoes intents no other handler claims.
type intentReflectorHandler struct{}

func (h *intentReflectorHandler) Name() string { return "IntentReflectorHandler" }

func (h *intentReflectorHandler) CanHandle(input *HandlerInput) bool {
	return input.RequestType() == constvars.RequestTypeIntent
}

func (h *intentReflectorHandler) Handle(input *HandlerInput) (*responses.ResponseBody, error) {
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyReflector, input.IntentName())).
		GetResponse(), nil
}
