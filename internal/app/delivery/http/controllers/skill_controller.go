package controllers

import (
	"context"
	"net/http"
	"time"

	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SkillController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SkillUsecase   contracts.SkillUsecase
}

func NewSkillController(logger *zap.Logger, internalConfig *config.InternalConfig, skillUsecase contracts.SkillUsecase) *SkillController {
	return &SkillController{
		Log:            logger,
		InternalConfig: internalConfig,
		SkillUsecase:   skillUsecase,
	}
}

func (ctrl *SkillController) HandleSkillRequest(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		ctrl.Log.Error("SkillController.HandleSkillRequest requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SkillController.HandleSkillRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.SkillRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("SkillController.HandleSkillRequest failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("SkillController.HandleSkillRequest validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	response, err := ctrl.SkillUsecase.HandleRequest(ctx, &request)
	if err != nil {
		ctrl.Log.Error("SkillController.HandleSkillRequest error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSkillRequestIDKey, request.Request.RequestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SkillController.HandleSkillRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSkillRequestIDKey, request.Request.RequestID),
		zap.String(constvars.LoggingRequestTypeKey, request.Request.Type),
	)
	utils.BuildRawResponse(w, constvars.StatusOK, response)
}

// Healthz reports liveness only; backing services are not checked.
func (ctrl *SkillController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", nil)
}
