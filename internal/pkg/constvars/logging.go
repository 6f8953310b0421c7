package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingEventIDKey       = "event_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingTopicKey         = "topic"
	LoggingPartitionKey     = "partition"
	LoggingOffsetKey        = "offset"
	LoggingReasonKey        = "reason"
)
