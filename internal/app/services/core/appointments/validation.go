package appointments

import (
	"strings"
	"timeslot-service/internal/app/services/shared/contact"
	"timeslot-service/internal/pkg/dto/requests"
	"timeslot-service/internal/pkg/exceptions"
)

const (
	msgContactRequired     = "contact is required"
	msgContactUnreachable  = "contact.email or contact.phone is required"
	msgPhoneInvalid        = "contact.phone must be a valid phone number"
	msgPhoneRequiredForSMS = "contact.phone is required when sms notifications are enabled"
	msgAppointmentRequired = "appointment is required"
	msgEndBeforeStart      = "appointment.end_time must be after appointment.start_time"
)

// validateBookRequest applies the booking rules in a fixed order. Missing
// contact/appointment blocks are structural and stop further checks; field
// rules accumulate so the client sees every violation at once. notifySMS is
// the deployment's sms flag, fed to the phone-reachability rule.
func validateBookRequest(request *requests.BookAppointmentRequest, normalized contact.Normalized, notifySMS bool) []exceptions.FieldError {
	if request.Contact == nil {
		return []exceptions.FieldError{
			{Kind: exceptions.ValidationContactMissing, Message: msgContactRequired},
		}
	}

	var fieldErrors []exceptions.FieldError
	phoneSupplied := strings.TrimSpace(request.Contact.Phone) != ""

	if normalized.Email == nil && normalized.PhoneE164 == nil {
		if phoneSupplied {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Kind:    exceptions.ValidationPhoneInvalid,
				Message: msgPhoneInvalid,
			})
		} else {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Kind:    exceptions.ValidationContactUnreachable,
				Message: msgContactUnreachable,
			})
		}
	}

	if notifySMS && normalized.PhoneE164 == nil {
		if phoneSupplied {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Kind:    exceptions.ValidationPhoneInvalid,
				Message: msgPhoneInvalid,
			})
		} else {
			fieldErrors = append(fieldErrors, exceptions.FieldError{
				Kind:    exceptions.ValidationPhoneRequiredForSMS,
				Message: msgPhoneRequiredForSMS,
			})
		}
	}

	if request.Appointment == nil {
		return append(fieldErrors, exceptions.FieldError{
			Kind:    exceptions.ValidationAppointmentMissing,
			Message: msgAppointmentRequired,
		})
	}

	if !request.Appointment.EndTime.After(request.Appointment.StartTime) {
		fieldErrors = append(fieldErrors, exceptions.FieldError{
			Kind:    exceptions.ValidationTimeOrder,
			Message: msgEndBeforeStart,
		})
	}

	return fieldErrors
}
