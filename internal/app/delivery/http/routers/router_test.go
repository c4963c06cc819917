package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/delivery/http/controllers"
	"appointment-skill/internal/app/delivery/http/middlewares"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"appointment-skill/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSkillUsecase struct {
	mock.Mock
}

func (m *MockSkillUsecase) HandleRequest(ctx context.Context, request *requests.SkillRequest) (*responses.SkillResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SkillResponse), args.Error(1)
}

func newTestRouter(usecase *MockSkillUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "api",
			MaxRequests:                100,
			MaxTimeRequestsPerSeconds:  1,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewSkillController(logger, internalConfig, usecase),
	)
	return router
}

func launchRequestBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(requests.SkillRequest{
		Version: "1.0",
		Request: requests.Request{
			Type:      constvars.RequestTypeLaunch,
			RequestID: "amzn1.echo-api.request.1",
			Timestamp: "2024-06-10T09:00:00Z",
			Locale:    "en-US",
		},
	})
	require.NoError(t, err)
	return body
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(new(MockSkillUsecase))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestSkillRoute(t *testing.T) {
	t.Run("returns skill response as raw body", func(t *testing.T) {
		usecase := new(MockSkillUsecase)
		usecase.On("HandleRequest", mock.Anything, mock.MatchedBy(func(r *requests.SkillRequest) bool {
			return r.Request.Type == constvars.RequestTypeLaunch
		})).Return(&responses.SkillResponse{
			Version: "1.0",
			Response: responses.ResponseBody{
				OutputSpeech: &responses.OutputSpeech{Type: "SSML", SSML: "<speak>hi</speak>"},
			},
		}, nil)
		router := newTestRouter(usecase)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/skill", bytes.NewReader(launchRequestBody(t)))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderXRequestID, "req-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-1", rec.Header().Get(constvars.HeaderXRequestID))

		var got responses.SkillResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "1.0", got.Version)
		require.NotNil(t, got.Response.OutputSpeech)
		assert.Equal(t, "<speak>hi</speak>", got.Response.OutputSpeech.SSML)
		usecase.AssertExpectations(t)
	})

	t.Run("malformed json", func(t *testing.T) {
		usecase := new(MockSkillUsecase)
		router := newTestRouter(usecase)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/skill", bytes.NewBufferString("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "HandleRequest", mock.Anything, mock.Anything)
	})

	t.Run("missing request type", func(t *testing.T) {
		usecase := new(MockSkillUsecase)
		router := newTestRouter(usecase)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/skill", bytes.NewBufferString(`{"version":"1.0","request":{"requestId":"x"}}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "HandleRequest", mock.Anything, mock.Anything)
	})

	t.Run("verification failure keeps its status", func(t *testing.T) {
		usecase := new(MockSkillUsecase)
		usecase.On("HandleRequest", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrInvalidApplicationID("amzn1.ask.skill.other"))
		router := newTestRouter(usecase)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/skill", bytes.NewReader(launchRequestBody(t))))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})

	t.Run("dispatcher runs under the request timeout", func(t *testing.T) {
		usecase := new(MockSkillUsecase)
		usecase.On("HandleRequest", mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= 5*time.Second
		}), mock.Anything).Return(&responses.SkillResponse{Version: "1.0"}, nil)
		router := newTestRouter(usecase)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/skill", bytes.NewReader(launchRequestBody(t))))

		assert.Equal(t, http.StatusOK, rec.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("unknown route", func(t *testing.T) {
		router := newTestRouter(new(MockSkillUsecase))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v2/skill", bytes.NewReader(launchRequestBody(t))))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
