package events

// AppointmentCreatedType is the constant event_type carried by every
// appointment event; it doubles as the default topic name.
const AppointmentCreatedType = "appointments.created"

// NotifyChannels flags which outbound notification channels downstream
// consumers should use for this event.
type NotifyChannels struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// AppointmentPayload is the appointment block embedded in the event.
// UserID repeats the appointment's millisecond timestamp as a string, and
// Time duplicates StartTime; both exist for consumers built against the
// older payload shape. Optional contact fields are omitted when absent,
// never serialized as null.
type AppointmentPayload struct {
	AppointmentID   string  `json:"appointment_id"`
	UserID          string  `json:"user_id"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Time            string  `json:"time"`
	Email           *string `json:"email,omitempty"`
	PhoneE164       *string `json:"phone_e164,omitempty"`
}

// AppointmentCreated is the canonical wire-stable record published to the
// broker, one per accepted booking request.
//
// JSON shape:
//
//	{
//	  "event_id": "evt-550e8400-e29b-41d4-a716-446655440000",
//	  "event_type": "appointments.created",
//	  "occurred_at": "2026-01-01T10:00:00.000000001Z",
//	  "notify": {"email": true, "sms": false},
//	  "appointment": {
//	    "appointment_id": "timeslot-1767261600000",
//	    "user_id": "1767261600000",
//	    "start_time": "2026-01-01T10:00:00Z",
//	    "end_time": "2026-01-01T10:30:00Z",
//	    "duration_minutes": 30,
//	    "time": "2026-01-01T10:00:00Z",
//	    "email": "a@b.com",
//	    "phone_e164": "+15551234567"
//	  }
//	}
type AppointmentCreated struct {
	EventID     string             `json:"event_id"`
	EventType   string             `json:"event_type"`
	OccurredAt  string             `json:"occurred_at"`
	Notify      NotifyChannels     `json:"notify"`
	Appointment AppointmentPayload `json:"appointment"`
}
