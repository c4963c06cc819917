package contracts

import (
	"appointment-skill/internal/app/models"
	"context"
)

// ProfileClient reads the user's settings from the voice platform.
// Unset values are returned as zero values without an error.
type ProfileClient interface {
	GetSystemTimeZone(ctx context.Context, deviceID string) (string, error)
	GetProfileName(ctx context.Context) (string, error)
	GetProfileEmail(ctx context.Context) (string, error)
	GetProfileMobileNumber(ctx context.Context) (*models.MobileNumber, error)
}

type ProfileClientFactory interface {
	NewProfileClient(apiEndpoint, apiAccessToken string) ProfileClient
}
