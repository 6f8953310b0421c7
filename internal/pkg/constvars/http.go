package constvars

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-Id"
)

const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK       = 200
	StatusAccepted = 202

	StatusBadRequest      = 400
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
