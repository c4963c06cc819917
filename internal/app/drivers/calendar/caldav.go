package calendar

import (
	"appointment-skill/internal/app/config"
	"fmt"
	"net/http"
	"net/url"

	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
	"go.uber.org/zap"
)

func NewCalDAVClient(driverConfig *config.DriverConfig, httpClient *http.Client, log *zap.Logger) (*caldav.Client, error) {
	baseURL, err := url.Parse(driverConfig.CalDAV.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid CalDAV server URL: %w", err)
	}

	var client webdav.HTTPClient = httpClient
	if driverConfig.CalDAV.Username != "" && driverConfig.CalDAV.Password != "" {
		client = webdav.HTTPClientWithBasicAuth(client, driverConfig.CalDAV.Username, driverConfig.CalDAV.Password)
	}

	c, err := caldav.NewClient(client, baseURL.String())
	if err != nil {
		return nil, fmt.Errorf("create CalDAV client: %w", err)
	}

	log.Info("CalDAV client initialized", zap.String("host", baseURL.Host))
	return c, nil
}
