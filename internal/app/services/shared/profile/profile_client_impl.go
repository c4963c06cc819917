package profile

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type profileClientFactory struct {
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewProfileClientFactory(timeout time.Duration, logger *zap.Logger) contracts.ProfileClientFactory {
	return NewProfileClientFactoryWithHTTPClient(&http.Client{Timeout: timeout}, logger)
}

func NewProfileClientFactoryWithHTTPClient(httpClient *http.Client, logger *zap.Logger) contracts.ProfileClientFactory {
	return &profileClientFactory{
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (f *profileClientFactory) NewProfileClient(apiEndpoint, apiAccessToken string) contracts.ProfileClient {
	return &profileClient{
		BaseUrl:     strings.TrimSuffix(apiEndpoint, "/"),
		AccessToken: apiAccessToken,
		HTTPClient:  f.HTTPClient,
		Log:         f.Log,
	}
}

type profileClient struct {
	BaseUrl     string
	AccessToken string
	HTTPClient  *http.Client
	Log         *zap.Logger
}

func (c *profileClient) GetSystemTimeZone(ctx context.Context, deviceID string) (string, error) {
	var timezone string
	path := fmt.Sprintf(constvars.ProfileSettingTimeZonePathFormat, deviceID)
	if err := c.getSetting(ctx, "profileClient.GetSystemTimeZone", path, &timezone); err != nil {
		return "", err
	}
	return timezone, nil
}

func (c *profileClient) GetProfileName(ctx context.Context) (string, error) {
	var name string
	if err := c.getSetting(ctx, "profileClient.GetProfileName", constvars.ProfileSettingNamePath, &name); err != nil {
		return "", err
	}
	return name, nil
}

func (c *profileClient) GetProfileEmail(ctx context.Context) (string, error) {
	var email string
	if err := c.getSetting(ctx, "profileClient.GetProfileEmail", constvars.ProfileSettingEmailPath, &email); err != nil {
		return "", err
	}
	return email, nil
}

func (c *profileClient) GetProfileMobileNumber(ctx context.Context) (*models.MobileNumber, error) {
	var mobileNumber *models.MobileNumber
	if err := c.getSetting(ctx, "profileClient.GetProfileMobileNumber", constvars.ProfileSettingMobileNumberPath, &mobileNumber); err != nil {
		return nil, err
	}
	return mobileNumber, nil
}

// getSetting leaves target untouched when the setting is not set.
func (c *profileClient) getSetting(ctx context.Context, operation, path string, target interface{}) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSettingKey, path),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+path, nil)
	if err != nil {
		c.Log.Error(operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, c.AccessToken))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error(operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == constvars.StatusNoContent:
		c.Log.Info(operation+" setting is not set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	case resp.StatusCode == constvars.StatusForbidden:
		c.Log.Warn(operation+" permission denied",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSettingKey, path),
		)
		return exceptions.ErrProfilePermissionDenied(path)
	case resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300:
		c.Log.Error(operation+" unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrProfileAPIStatus(resp.StatusCode, path)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(operation+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, path)
	}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	err = json.Unmarshal(bodyBytes, target)
	if err != nil {
		c.Log.Error(operation+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, path)
	}

	c.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
