package skill

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"context"
)

// RequestAttributes live for a single request and are set by the interceptors.
type RequestAttributes struct {
	InvalidConfig    bool
	MissingConfig    []string
	PermissionsError string
}

// HandlerInput carries everything a handler may read or change for one request.
type HandlerInput struct {
	Ctx               context.Context
	Request           *requests.SkillRequest
	SessionAttributes map[string]interface{}
	Attributes        RequestAttributes
	ProfileClient     contracts.ProfileClient
	Localizer         contracts.Localizer

	profile *models.Profile
}

func newHandlerInput(ctx context.Context, request *requests.SkillRequest, profileClient contracts.ProfileClient) *HandlerInput {
	sessionAttributes := make(map[string]interface{})
	if request.Session != nil {
		for key, value := range request.Session.Attributes {
			sessionAttributes[key] = value
		}
	}
	return &HandlerInput{
		Ctx:               ctx,
		Request:           request,
		SessionAttributes: sessionAttributes,
		ProfileClient:     profileClient,
	}
}

func (in *HandlerInput) RequestType() string {
	return in.Request.Request.Type
}

func (in *HandlerInput) IntentName() string {
	return in.Request.IntentName()
}

func (in *HandlerInput) IsIntent(names ...string) bool {
	if in.RequestType() != constvars.RequestTypeIntent {
		return false
	}
	intentName := in.IntentName()
	for _, name := range names {
		if intentName == name {
			return true
		}
	}
	return false
}

func (in *HandlerInput) DialogState() string {
	return in.Request.Request.DialogState
}

func (in *HandlerInput) ConfirmationStatus() string {
	if in.Request.Request.Intent == nil {
		return ""
	}
	return in.Request.Request.Intent.ConfirmationStatus
}

func (in *HandlerInput) T(key string, args ...interface{}) string {
	if in.Localizer == nil {
		return key
	}
	return in.Localizer.T(key, args...)
}

// SessionString reads a string session attribute, "" when absent.
func (in *HandlerInput) SessionString(key string) string {
	value, _ := in.SessionAttributes[key].(string)
	return value
}

func (in *HandlerInput) TimeZone() (string, error) {
	return in.ProfileClient.GetSystemTimeZone(in.Ctx, in.Request.Context.System.Device.DeviceID)
}

// Profile fetches the requester profile once per request. Failed fetches are
// not cached.
func (in *HandlerInput) Profile() (*models.Profile, error) {
	if in.profile != nil {
		return in.profile, nil
	}

	name, err := in.ProfileClient.GetProfileName(in.Ctx)
	if err != nil {
		return nil, err
	}
	email, err := in.ProfileClient.GetProfileEmail(in.Ctx)
	if err != nil {
		return nil, err
	}
	mobileNumber, err := in.ProfileClient.GetProfileMobileNumber(in.Ctx)
	if err != nil {
		return nil, err
	}

	in.profile = &models.Profile{
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
	}
	return in.profile, nil
}
