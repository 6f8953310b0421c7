package responses

// AppointmentAccepted is the 202 body. Published reflects only this
// request's publish attempt; KafkaEnabled reflects deployment configuration.
type AppointmentAccepted struct {
	AppointmentID string `json:"appointment_id"`
	EventID       string `json:"event_id"`
	KafkaEnabled  bool   `json:"kafka_enabled"`
	Published     bool   `json:"published"`
}

// ValidationFailed is the 400 body; messages appear in rule order.
type ValidationFailed struct {
	Errors []string `json:"errors"`
}

type Health struct {
	Status string `json:"status"`
}
