package config

type InternalConfig struct {
	App    App
	Notify Notify
}

type App struct {
	Env                       string   `validate:"required"`
	Port                      string   `validate:"required"`
	AllowedOrigins            []string `validate:"min=1"`
	MaxRequests               int      `validate:"gt=0"`
	MaxTimeRequestsPerSeconds int      `validate:"gt=0"`
	RequestTimeoutInSeconds   int      `validate:"gt=0"`
	ShutdownTimeoutInSeconds  int      `validate:"gt=0"`
}

// Notify holds the deployment's notification channel policy. With the
// "fixed" policy the Email/SMS flags are emitted on every event as-is; with
// "channel" they are derived from which contact details survived
// normalization.
type Notify struct {
	Policy             string `validate:"oneof=fixed channel"`
	Email              bool
	SMS                bool
	DefaultPhoneRegion string `validate:"len=2,alpha"`
}
