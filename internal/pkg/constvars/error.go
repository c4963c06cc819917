package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"oneof":    "must be one of [%s]",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientRequestExpired                = "the request is too old to be processed"
	ErrClientRequestTooLarge               = "the request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput                   = "invalid input"
	ErrDevValidationFailed               = "validation failed"
	ErrDevCannotParseJSON                = "cannot parse JSON"
	ErrDevCannotMarshalJSON              = "cannot marshal JSON"
	ErrDevCannotParseDate                = "cannot parse slot date %q"
	ErrDevCannotParseTime                = "cannot parse slot time %q"
	ErrDevInvalidTimezone                = "invalid timezone %q"
	ErrDevReadBody                       = "failed to read request body"
	ErrDevRequestBodyTooLarge            = "request body exceeds %d bytes"
	ErrDevMissingRequestID               = "request id not found in context"
	ErrDevInvalidApplicationID           = "application id %q does not match the configured skill"
	ErrDevRequestTimestampOutOfTolerance = "request timestamp %s is outside of the %s tolerance"
	ErrDevCannotParseRequestTimestamp    = "cannot parse request timestamp"
	ErrDevUnhandledRequest               = "no handler can process request type %s"
	ErrDevUnknownPermissionError         = "%s is not a known permission"
	ErrDevHandlerPanic                   = "handler panicked: %v"
	ErrDevCreateHTTPRequest              = "failed to create HTTP request"
	ErrDevSendHTTPRequest                = "failed to send HTTP request"
	ErrDevDecodeResponse                 = "failed to decode %s response"
	ErrDevProfileAPIStatus               = "profile API returned status %d for %s"
	ErrDevProfilePermissionDenied        = "profile API denied access to %s"
	ErrDevFreeBusyQuery                  = "failed to query free/busy from %s provider"
	ErrDevFreeBusyCalendarMissing        = "free/busy response has no calendar %s"
	ErrDevFreeBusyRateLimit              = "free/busy rate limiter wait failed"
	ErrDevUnknownCalendarProvider        = "unknown calendar provider %q"
	ErrDevBuildInvite                    = "failed to build calendar invite"
	ErrDevMinioFailedToCreateObject      = "failed to create object on bucket %s"
	ErrDevSMTPSendEmail                  = "failed to send email using SMTP host %s"
	ErrDevRabbitMQPublishMessage         = "failed to publish message to queue %s"
	ErrDevMongoDBInsertDocument          = "failed to insert document into collection %s"
	ErrDevRedisSetData                   = "failed to set data to redis"
	ErrDevRedisGetData                   = "failed to get data from redis with key %s"
	ErrDevRedisDeleteData                = "failed to delete data from redis"
	ErrDevRedisUnlock                    = "failed to release redis lock"
	ErrDevRedisIncrement                 = "failed to increment redis key %s"
)
