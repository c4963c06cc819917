package main

import (
	"context"
	"log"
	"time"

	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/setup"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"appointment-skill/internal/pkg/utils"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	// The Lambda base image ships without zoneinfo.
	_ "time/tzdata"
)

type handler struct {
	skillUsecase contracts.SkillUsecase
	log          *zap.Logger
	timeout      time.Duration
}

func (h *handler) handle(ctx context.Context, request requests.SkillRequest) (*responses.SkillResponse, error) {
	requestID := request.Request.RequestID
	if lambdaContext, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lambdaContext.AwsRequestID
	}
	ctx = utils.WithRequestID(ctx, requestID)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	response, err := h.skillUsecase.HandleRequest(ctx, &request)
	if err != nil {
		h.log.Error("Lambda invocation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSkillRequestIDKey, request.Request.RequestID),
			zap.Error(err),
		)
		return nil, err
	}
	return response, nil
}

func main() {
	ctx := context.Background()

	bootstrap, err := setup.NewBootstrap(ctx)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	skillUsecase, err := setup.NewSkillUsecase(ctx, bootstrap)
	if err != nil {
		bootstrap.Logger.Fatal("Error wiring the skill", zap.Error(err))
	}

	h := &handler{
		skillUsecase: skillUsecase,
		log:          bootstrap.Logger,
		timeout:      time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
	lambda.Start(h.handle)
}
