package constvars

const SkillResponseVersion = "1.0"

// Request types
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Intent names
const (
	IntentScheduleAppointment = "ScheduleAppointmentIntent"
	IntentCheckAvailability   = "CheckAvailabilityIntent"
	IntentYes                 = "AMAZON.YesIntent"
	IntentNo                  = "AMAZON.NoIntent"
	IntentHelp                = "AMAZON.HelpIntent"
	IntentCancel              = "AMAZON.CancelIntent"
	IntentStop                = "AMAZON.StopIntent"
)

// Dialog states
const (
	DialogStateStarted    = "STARTED"
	DialogStateInProgress = "IN_PROGRESS"
	DialogStateCompleted  = "COMPLETED"
)

// Confirmation statuses
const (
	ConfirmationStatusNone      = "NONE"
	ConfirmationStatusConfirmed = "CONFIRMED"
	ConfirmationStatusDenied    = "DENIED"
)

// Directive and output types
const (
	DirectiveDialogDelegate      = "Dialog.Delegate"
	DirectiveDialogConfirmIntent = "Dialog.ConfirmIntent"
	OutputSpeechTypeSSML         = "SSML"
	CardTypeSimple               = "Simple"
	SSMLSpeakFormat              = "<speak>%s</speak>"
)

// Slot names
const (
	SlotAppointmentDate = "appointmentDate"
	SlotAppointmentTime = "appointmentTime"
)

// Session attribute keys
const (
	SessionAttributeAppointmentData = "appointmentData"
	SessionAttributeAppointmentDate = "appointmentDate"
	SessionAttributeAppointmentTime = "appointmentTime"
)

// Permission error codes set by the permissions interceptor
const (
	PermissionErrorNoName              = "no_name"
	PermissionErrorNoEmail             = "no_email"
	PermissionErrorNoPhone             = "no_phone"
	PermissionErrorPermissionsRequired = "permissions_required"
)

// Profile API paths
const (
	ProfileSettingTimeZonePathFormat = "/v2/devices/%s/settings/System.timeZone"
	ProfileSettingNamePath           = "/v2/accounts/~current/settings/Profile.name"
	ProfileSettingEmailPath          = "/v2/accounts/~current/settings/Profile.email"
	ProfileSettingMobileNumberPath   = "/v2/accounts/~current/settings/Profile.mobileNumber"
)

// Localization keys
const (
	LocaleKeyWelcome                     = "WELCOME"
	LocaleKeyGeneralReprompt             = "GENERAL_REPROMPT"
	LocaleKeyHelp                        = "HELP"
	LocaleKeyYesSchedule                 = "YES_SCHEDULE"
	LocaleKeyNoSchedule                  = "NO_SCHEDULE"
	LocaleKeyGoodbye                     = "GOODBYE"
	LocaleKeyReflector                   = "REFLECTOR"
	LocaleKeyError                       = "ERROR"
	LocaleKeyNotConfigured               = "NOT_CONFIGURED"
	LocaleKeyNoName                      = "NO_NAME"
	LocaleKeyNoEmail                     = "NO_EMAIL"
	LocaleKeyNoPhone                     = "NO_PHONE"
	LocaleKeyPermissionsRequired         = "PERMISSIONS_REQUIRED"
	LocaleKeyAppointmentConfirm          = "APPOINTMENT_CONFIRM"
	LocaleKeyAppointmentConfirmReprompt  = "APPOINTMENT_CONFIRM_REPROMPT"
	LocaleKeyAppointmentConfirmCompleted = "APPOINTMENT_CONFIRM_COMPLETED"
	LocaleKeyAppointmentTitle            = "APPOINTMENT_TITLE"
	LocaleKeyAppointmentDescription      = "APPOINTMENT_DESCRIPTION"
	LocaleKeyNoConfirm                   = "NO_CONFIRM"
	LocaleKeyNoConfirmReprompt           = "NO_CONFIRM_REPROMPT"
	LocaleKeyTimeAvailable               = "TIME_AVAILABLE"
	LocaleKeyTimeAvailableReprompt       = "TIME_AVAILABLE_REPROMPT"
	LocaleKeyTimeNotAvailable            = "TIME_NOT_AVAILABLE"
	LocaleKeyTimeNotAvailableReprompt    = "TIME_NOT_AVAILABLE_REPROMPT"
	LocaleKeyEmailSubject                = "EMAIL_SUBJECT"
	LocaleKeyEmailText                   = "EMAIL_TEXT"
	LocaleKeyBookingLimitReached         = "BOOKING_LIMIT_REACHED"
	LocaleKeyDateTimeLayout              = "DATE_TIME_LAYOUT"
	LocaleKeyWeekdayNames                = "WEEKDAY_NAMES"
	LocaleKeyMonthNames                  = "MONTH_NAMES"
)
