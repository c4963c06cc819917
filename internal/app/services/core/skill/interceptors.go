package skill

import (
	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequestInterceptor runs before handler selection.
type RequestInterceptor interface {
	Name() string
	Process(input *HandlerInput) error
}

type environmentCheckInterceptor struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func (i *environmentCheckInterceptor) Name() string {
	return "environmentCheckInterceptor"
}

func (i *environmentCheckInterceptor) Process(input *HandlerInput) error {
	missing := i.InternalConfig.MissingRequiredKeys()
	if len(missing) == 0 {
		return nil
	}

	i.Log.Warn("environmentCheckInterceptor.Process required configuration missing",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(input.Ctx)),
		zap.Strings(constvars.LoggingMissingConfigKey, missing),
	)
	input.Attributes.InvalidConfig = true
	input.Attributes.MissingConfig = missing
	return nil
}

type permissionsCheckInterceptor struct {
	Log *zap.Logger
}

func (i *permissionsCheckInterceptor) Name() string {
	return "permissionsCheckInterceptor"
}

// Process never fails the request. Profile errors other than a denied
// permission are logged and the handlers fetch the profile again.
func (i *permissionsCheckInterceptor) Process(input *HandlerInput) error {
	if input.RequestType() == constvars.RequestTypeSessionEnded {
		return nil
	}
	requestID := utils.GetRequestID(input.Ctx)

	profile, err := input.Profile()
	if err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusForbidden {
			input.Attributes.PermissionsError = constvars.PermissionErrorPermissionsRequired
		} else {
			i.Log.Warn("permissionsCheckInterceptor.Process error fetching profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil
		}
	} else {
		switch {
		case profile.Name == "":
			input.Attributes.PermissionsError = constvars.PermissionErrorNoName
		case profile.Email == "":
			input.Attributes.PermissionsError = constvars.PermissionErrorNoEmail
		case profile.MobileNumber.IsEmpty():
			input.Attributes.PermissionsError = constvars.PermissionErrorNoPhone
		}
	}

	if input.Attributes.PermissionsError != "" {
		i.Log.Info("permissionsCheckInterceptor.Process permissions error set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPermissionsErrorKey, input.Attributes.PermissionsError),
		)
	}
	return nil
}

type localizationInterceptor struct {
	LocalizationService contracts.LocalizationService
}

func (i *localizationInterceptor) Name() string {
	return "localizationInterceptor"
}

func (i *localizationInterceptor) Process(input *HandlerInput) error {
	input.Localizer = i.LocalizationService.Localizer(input.Request.Request.Locale)
	return nil
}
