package exceptions

// ValidationKind classifies a booking validation failure so callers can
// branch without matching on display strings. The wire format stays a plain
// message list.
type ValidationKind int

const (
	ValidationContactMissing ValidationKind = iota
	ValidationContactUnreachable
	ValidationPhoneInvalid
	ValidationPhoneRequiredForSMS
	ValidationAppointmentMissing
	ValidationTimeOrder
)

// FieldError pairs a machine-readable kind with the human-readable message
// exposed to the client.
type FieldError struct {
	Kind    ValidationKind
	Message string
}

// ValidationMessages flattens field errors into the client-facing message
// list, preserving rule order.
func ValidationMessages(errs []FieldError) []string {
	messages := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		messages = append(messages, fieldError.Message)
	}
	return messages
}
