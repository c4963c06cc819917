package skill

import (
	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

const errorHandlerName = "ErrorHandler"

type skillUsecase struct {
	InternalConfig       *config.InternalConfig
	ProfileClientFactory contracts.ProfileClientFactory
	Interceptors         []RequestInterceptor
	Handlers             []RequestHandler
	ErrorHandler         *errorHandler
	Log                  *zap.Logger
	Now                  func() time.Time
}

func NewSkillUsecase(
	internalConfig *config.InternalConfig,
	profileClientFactory contracts.ProfileClientFactory,
	localizationService contracts.LocalizationService,
	availabilityUsecase contracts.AvailabilityUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
	lockService contracts.LockerService,
	resourceLimiter contracts.ResourceLimiter,
	logger *zap.Logger,
) contracts.SkillUsecase {
	return &skillUsecase{
		InternalConfig:       internalConfig,
		ProfileClientFactory: profileClientFactory,
		Interceptors: []RequestInterceptor{
			&environmentCheckInterceptor{InternalConfig: internalConfig, Log: logger},
			&permissionsCheckInterceptor{Log: logger},
			&localizationInterceptor{LocalizationService: localizationService},
		},
		Handlers: []RequestHandler{
			&invalidConfigHandler{},
			&invalidPermissionsHandler{},
			&launchRequestHandler{InternalConfig: internalConfig},
			&checkAvailabilityIntentHandler{
				AvailabilityUsecase: availabilityUsecase,
				InternalConfig:      internalConfig,
				Log:                 logger,
			},
			&startedInProgressScheduleAppointmentIntentHandler{InternalConfig: internalConfig, Log: logger},
			&completedScheduleAppointmentIntentHandler{
				AvailabilityUsecase: availabilityUsecase,
				AppointmentUsecase:  appointmentUsecase,
				LockService:         lockService,
				ResourceLimiter:     resourceLimiter,
				InternalConfig:      internalConfig,
				Log:                 logger,
			},
			&yesIntentHandler{},
			&noIntentHandler{},
			&helpIntentHandler{},
			&cancelAndStopIntentHandler{},
			&sessionEndedRequestHandler{Log: logger},
			&intentReflectorHandler{},
		},
		ErrorHandler: &errorHandler{LocalizationService: localizationService, Log: logger},
		Log:          logger,
		Now:          time.Now,
	}
}

func (uc *skillUsecase) HandleRequest(ctx context.Context, request *requests.SkillRequest) (*responses.SkillResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("skillUsecase.HandleRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSkillRequestIDKey, request.Request.RequestID),
		zap.String(constvars.LoggingRequestTypeKey, request.Request.Type),
		zap.String(constvars.LoggingIntentNameKey, request.IntentName()),
		zap.String(constvars.LoggingDialogStateKey, request.Request.DialogState),
	)

	err := uc.verifyRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	system := request.Context.System
	input := newHandlerInput(ctx, request, uc.ProfileClientFactory.NewProfileClient(system.APIEndpoint, system.APIAccessToken))

	body, handlerName, err := uc.dispatch(input)
	if err != nil {
		body = uc.ErrorHandler.Handle(input, err)
		handlerName = errorHandlerName
	}

	response := &responses.SkillResponse{
		Version:           constvars.SkillResponseVersion,
		SessionAttributes: input.SessionAttributes,
		Response:          *body,
	}

	uc.Log.Info("skillUsecase.HandleRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHandlerKey, handlerName),
		zap.String(constvars.LoggingLocaleKey, input.Localizer.Locale()),
	)
	return response, nil
}

// dispatch runs the interceptors, then the first handler that claims the
// request. A panic anywhere in between becomes an error.
func (uc *skillUsecase) dispatch(input *HandlerInput) (body *responses.ResponseBody, handlerName string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			uc.Log.Error("skillUsecase.dispatch recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(input.Ctx)),
				zap.String(constvars.LoggingHandlerKey, handlerName),
				zap.Any("panic", recovered),
				zap.Stack("stack"),
			)
			body = nil
			err = exceptions.ErrHandlerPanic(recovered)
		}
	}()

	for _, interceptor := range uc.Interceptors {
		handlerName = interceptor.Name()
		if err = interceptor.Process(input); err != nil {
			return nil, handlerName, err
		}
	}

	for _, handler := range uc.Handlers {
		if handler.CanHandle(input) {
			handlerName = handler.Name()
			body, err = handler.Handle(input)
			return body, handlerName, err
		}
	}

	return nil, "", exceptions.ErrUnhandledRequest(input.RequestType())
}

func (uc *skillUsecase) verifyRequest(ctx context.Context, request *requests.SkillRequest) error {
	requestID := utils.GetRequestID(ctx)

	expectedApplicationID := uc.InternalConfig.Skill.ApplicationID
	if expectedApplicationID != "" && request.ApplicationID() != expectedApplicationID {
		utils.LogSecurityEvent(uc.Log, "invalid_application_id", requestID, "medium",
			zap.String("application_id", request.ApplicationID()),
		)
		return exceptions.ErrInvalidApplicationID(request.ApplicationID())
	}

	toleranceInSeconds := uc.InternalConfig.Skill.TimestampToleranceInSeconds
	if toleranceInSeconds <= 0 {
		return nil
	}
	tolerance := time.Duration(toleranceInSeconds) * time.Second

	timestamp, err := time.Parse(time.RFC3339, request.Request.Timestamp)
	if err != nil {
		uc.Log.Warn("skillUsecase.verifyRequest error parsing timestamp",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotParseRequestTimestamp(err)
	}

	drift := uc.Now().Sub(timestamp)
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		utils.LogSecurityEvent(uc.Log, "request_timestamp_out_of_tolerance", requestID, "low",
			zap.String("timestamp", request.Request.Timestamp),
			zap.Duration(constvars.LoggingDurationKey, drift),
		)
		return exceptions.ErrRequestTimestampOutOfTolerance(request.Request.Timestamp, tolerance)
	}
	return nil
}
