package config

import (
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
			Port:     utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Google: Google{
			ClientID:     utils.GetEnvString("CLIENT_ID", ""),
			ClientSecret: utils.GetEnvString("CLIENT_SECRET", ""),
			RedirectURIs: utils.GetEnvStringSlice("REDIRECT_URIS", nil),
			AccessToken:  utils.GetEnvString("ACCESS_TOKEN", ""),
			RefreshToken: utils.GetEnvString("REFRESH_TOKEN", ""),
			TokenType:    utils.GetEnvString("TOKEN_TYPE", "Bearer"),
			ExpireDate:   utils.GetEnvInt64("EXPIRE_DATE", 0),
			Scope:        utils.GetEnvString("SCOPE", "https://www.googleapis.com/auth/calendar.readonly"),
		},
		CalDAV: CalDAV{
			URL:      utils.GetEnvString("CALDAV_URL", ""),
			Username: utils.GetEnvString("CALDAV_USERNAME", ""),
			Password: utils.GetEnvString("CALDAV_PASSWORD", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 8),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Skill: Skill{
			Name:                           utils.GetEnvString("SKILL_NAME", constvars.DefaultSkillName),
			ApplicationID:                  utils.GetEnvString("SKILL_APPLICATION_ID", ""),
			TimestampToleranceInSeconds:    utils.GetEnvInt("SKILL_TIMESTAMP_TOLERANCE_IN_SECONDS", 150),
			DefaultLocale:                  utils.GetEnvString("SKILL_DEFAULT_LOCALE", constvars.DefaultLocale),
			AppointmentDurationInMinutes:   utils.GetEnvInt("APPOINTMENT_DURATION_IN_MINUTES", constvars.DefaultAppointmentDurationMinutes),
			ProfileRequestTimeoutInSeconds: utils.GetEnvInt("PROFILE_API_TIMEOUT_IN_SECONDS", 5),
		},
		Appointment: Appointment{
			FromName:      utils.GetEnvString("FROM_NAME", ""),
			FromEmail:     utils.GetEnvString("FROM_EMAIL", ""),
			NotifyEmail:   utils.GetEnvString("NOTIFY_EMAIL", ""),
			SendEmail:     utils.GetEnvBool("SEND_EMAIL", false),
			StorageBucket: utils.GetEnvString("S3_PERSISTENCE_BUCKET", ""),
		},
		Calendar: Calendar{
			Provider:                    utils.GetEnvString("CALENDAR_PROVIDER", constvars.CalendarProviderGoogle),
			CheckFreeBusy:               utils.GetEnvBool("CHECK_FREEBUSY", false),
			FreeBusyMaxQueriesPerSecond: utils.GetEnvFloat("FREEBUSY_MAX_QUERIES_PER_SECOND", 5),
			CalDAVCalendarPath:          utils.GetEnvString("CALDAV_CALENDAR_PATH", ""),
		},
		Mailer: Mailer{
			Driver:              utils.GetEnvString("MAILER_DRIVER", constvars.MailerDriverSMTP),
			RabbitMQMailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "appointment-mailer"),
		},
		MongoDB: AppMongoDB{
			DBName: utils.GetEnvString("MONGODB_DB_NAME", "appointment_skill"),
		},
		Redis: AppRedis{
			BookingLockTTLInSeconds:     utils.GetEnvInt("BOOKING_LOCK_TTL_IN_SECONDS", 300),
			BookingQuotaPerUser:         utils.GetEnvInt("BOOKING_QUOTA_PER_USER", 0),
			BookingQuotaWindowInSeconds: utils.GetEnvInt("BOOKING_QUOTA_WINDOW_IN_SECONDS", 86400),
		},
	}
}
