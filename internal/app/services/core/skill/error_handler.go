package skill

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/responses"
	"appointment-skill/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type errorHandler struct {
	LocalizationService contracts.LocalizationService
	Log                 *zap.Logger
}

// Handle turns any dialog failure into the generic retry prompt.
func (h *errorHandler) Handle(input *HandlerInput, err error) *responses.ResponseBody {
	request, _ := json.Marshal(input.Request.Request)
	h.Log.Error("errorHandler.Handle error handled",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(input.Ctx)),
		zap.ByteString(constvars.LoggingRequestKey, request),
		zap.Error(err),
	)

	if input.Localizer == nil {
		input.Localizer = h.LocalizationService.Localizer(input.Request.Request.Locale)
	}
	return NewResponseBuilder().
		Speak(input.T(constvars.LocaleKeyError)).
		GetResponse()
}
