package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TMSLT_SVC_"
)

const (
	// DefaultEventTopic is the broker topic appointment events land on when
	// KAFKA_TOPIC is not set.
	DefaultEventTopic = "appointments.created"

	DefaultPhoneRegion = "US"
)

const (
	NotifyPolicyFixed   = "fixed"
	NotifyPolicyChannel = "channel"
)
