package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	DefaultSkillName                   = "Alfred scheduler"
	DefaultAppointmentDurationMinutes  = 30
	DefaultLocale                      = "en-US"
	AppointmentStorageKeyFormat        = "appointments/%s/%s-%d.ics"
	AppointmentInviteFileName          = "appointment.ics"
	AppointmentInviteProductID         = "appointment-skill/ics"
	BookingLockKeyFormat               = "booking:lock:%s"
	BookingQuotaLimiterGroup           = "BOOKING-QUOTA"
	SpeakableDateTimeLayout            = "Monday, January 2, 2006 at 3:04 PM MST"
	SlotDateLayout                     = "2006-01-02"
	SlotTimeLayout                     = "15:04"
	SlotTimeWithSecondsLayout          = "15:04:05"
	ProfileMobileNumberFormat          = "+%s%s"
	CalendarProviderGoogle             = "google"
	CalendarProviderCalDAV             = "caldav"
	MailerDriverSMTP                   = "smtp"
	MailerDriverRabbitMQ               = "rabbitmq"
	BookingsCollection                 = "bookings"
	HealthCheckPath                    = "/healthz"
	SkillEndpointPath                  = "/skill"
)
