package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"appointment-skill/internal/pkg/utils"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSkillUsecase struct {
	mock.Mock
}

func (m *mockSkillUsecase) HandleRequest(ctx context.Context, request *requests.SkillRequest) (*responses.SkillResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SkillResponse), args.Error(1)
}

func TestHandler(t *testing.T) {
	request := requests.SkillRequest{
		Version: "1.0",
		Request: requests.Request{Type: "LaunchRequest", RequestID: "skill-req-1"},
	}

	t.Run("uses the lambda request id", func(t *testing.T) {
		usecase := new(mockSkillUsecase)
		usecase.On("HandleRequest", mock.MatchedBy(func(ctx context.Context) bool {
			return utils.GetRequestID(ctx) == "aws-req-1"
		}), mock.Anything).Return(&responses.SkillResponse{Version: "1.0"}, nil)

		h := &handler{skillUsecase: usecase, log: zap.NewNop(), timeout: time.Second}
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "aws-req-1"})

		response, err := h.handle(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "1.0", response.Version)
		usecase.AssertExpectations(t)
	})

	t.Run("falls back to the skill request id", func(t *testing.T) {
		usecase := new(mockSkillUsecase)
		usecase.On("HandleRequest", mock.MatchedBy(func(ctx context.Context) bool {
			return utils.GetRequestID(ctx) == "skill-req-1"
		}), mock.Anything).Return(&responses.SkillResponse{Version: "1.0"}, nil)

		h := &handler{skillUsecase: usecase, log: zap.NewNop(), timeout: time.Second}

		_, err := h.handle(context.Background(), request)
		require.NoError(t, err)
		usecase.AssertExpectations(t)
	})

	t.Run("returns usecase errors", func(t *testing.T) {
		usecase := new(mockSkillUsecase)
		usecase.On("HandleRequest", mock.Anything, mock.Anything).Return(nil, errors.New("forbidden"))

		h := &handler{skillUsecase: usecase, log: zap.NewNop(), timeout: time.Second}

		_, err := h.handle(context.Background(), request)
		assert.EqualError(t, err, "forbidden")
	})
}
