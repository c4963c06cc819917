package contracts

import (
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"context"
)

type SkillUsecase interface {
	HandleRequest(ctx context.Context, request *requests.SkillRequest) (*responses.SkillResponse, error)
}
