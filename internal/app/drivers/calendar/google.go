package calendar

import (
	"appointment-skill/internal/app/config"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewGoogleOAuthConfig builds the OAuth2 client config of the calendar owner.
func NewGoogleOAuthConfig(driverConfig *config.DriverConfig) *oauth2.Config {
	redirectURL := ""
	if len(driverConfig.Google.RedirectURIs) > 0 {
		redirectURL = driverConfig.Google.RedirectURIs[0]
	}
	return &oauth2.Config{
		ClientID:     driverConfig.Google.ClientID,
		ClientSecret: driverConfig.Google.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{driverConfig.Google.Scope},
	}
}

// NewGoogleToken restores the stored owner token. The token source refreshes it
// with the refresh token once it expires.
func NewGoogleToken(driverConfig *config.DriverConfig) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  driverConfig.Google.AccessToken,
		TokenType:    driverConfig.Google.TokenType,
		RefreshToken: driverConfig.Google.RefreshToken,
	}
	if driverConfig.Google.ExpireDate > 0 {
		token.Expiry = time.UnixMilli(driverConfig.Google.ExpireDate)
	}
	return token
}

func NewGoogleCalendarService(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*calendar.Service, error) {
	oauthConfig := NewGoogleOAuthConfig(driverConfig)
	client := oauthConfig.Client(ctx, NewGoogleToken(driverConfig))

	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create google calendar service: %w", err)
	}

	log.Info("Google calendar service initialized",
		zap.Bool("has_refresh_token", driverConfig.Google.RefreshToken != ""),
	)
	return service, nil
}
