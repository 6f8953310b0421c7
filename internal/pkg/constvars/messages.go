package constvars

const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
)

const (
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevMissingRequestID       = "Request ID not found in request context"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded while processing request"
	ErrDevServerPanic            = "Recovered from panic while handling request"
)

const (
	ResponseUnknown = "unknown"
)
