package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSkillRequestIDKey     = "skill_request_id"
	LoggingRequestTypeKey        = "request_type"
	LoggingIntentNameKey         = "intent_name"
	LoggingDialogStateKey        = "dialog_state"
	LoggingConfirmationStatusKey = "confirmation_status"
	LoggingHandlerKey            = "handler"
	LoggingLocaleKey             = "locale"
	LoggingSessionIDKey          = "session_id"
	LoggingReasonKey             = "reason"
	LoggingPermissionsErrorKey   = "permissions_error"
	LoggingMissingConfigKey      = "missing_config"
	LoggingTimezoneKey           = "timezone"
	LoggingStartKey              = "start"
	LoggingEndKey                = "end"
	LoggingAvailableKey          = "available"
	LoggingBusyCountKey          = "busy_count"
	LoggingProviderKey           = "provider"
	LoggingStorageKey            = "storage_key"
	LoggingBucketNameKey         = "bucket_name"
	LoggingRecipientsKey         = "recipients"
	LoggingEmailSentKey          = "email_sent"
	LoggingBookingIDKey          = "booking_id"
	LoggingQueueKey              = "queue"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingSettingKey            = "setting"
	LoggingURLKey                = "url"
	LoggingStatusCodeKey         = "status_code"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingErrorCodeKey          = "error_code"
	LoggingErrorMessageKey       = "error_message"
	LoggingRequestKey            = "request"
	LoggingResponseKey           = "response"
	LoggingQueryKey              = "query"
	LoggingBodySizeKey           = "body_size"
	LoggingIsClientRequestIDKey  = "is_client_request_id"
	LoggingQuotaCountKey         = "quota_count"
	LoggingRetryAfterKey         = "retry_after"
)
