package config

import "strings"

type InternalConfig struct {
	App         App
	Skill       Skill
	Appointment Appointment
	Calendar    Calendar
	Mailer      Mailer
	MongoDB     AppMongoDB
	Redis       AppRedis
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type Skill struct {
	Name string
	// ApplicationID is not checked when empty.
	ApplicationID string
	// TimestampToleranceInSeconds is not checked when <= 0.
	TimestampToleranceInSeconds    int
	DefaultLocale                  string
	AppointmentDurationInMinutes   int
	ProfileRequestTimeoutInSeconds int
}

type Appointment struct {
	FromName      string
	FromEmail     string
	NotifyEmail   string
	SendEmail     bool
	StorageBucket string
}

type Calendar struct {
	Provider                    string
	CheckFreeBusy               bool
	FreeBusyMaxQueriesPerSecond float64
	CalDAVCalendarPath          string
}

type Mailer struct {
	Driver              string
	RabbitMQMailerQueue string
}

type AppMongoDB struct {
	DBName string
}

type AppRedis struct {
	BookingLockTTLInSeconds     int
	BookingQuotaPerUser         int
	BookingQuotaWindowInSeconds int
}

// MissingRequiredKeys lists the environment keys a booking cannot work without.
func (c *InternalConfig) MissingRequiredKeys() []string {
	required := []struct {
		key   string
		value string
	}{
		{"S3_PERSISTENCE_BUCKET", c.Appointment.StorageBucket},
		{"FROM_NAME", c.Appointment.FromName},
		{"FROM_EMAIL", c.Appointment.FromEmail},
		{"NOTIFY_EMAIL", c.Appointment.NotifyEmail},
	}

	var missing []string
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			missing = append(missing, item.key)
		}
	}
	return missing
}
