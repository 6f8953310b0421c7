package contracts

import (
	"context"
	"timeslot-service/internal/app/services/shared/eventqueue"
	"timeslot-service/internal/pkg/dto/requests"
	"timeslot-service/internal/pkg/dto/responses"
	"timeslot-service/internal/pkg/exceptions"
)

// AppointmentUsecase runs the request-to-event pipeline for one booking.
// A non-empty FieldError slice means the request was rejected and the
// response is nil; otherwise the response is populated regardless of how
// the publish went.
type AppointmentUsecase interface {
	Book(ctx context.Context, request *requests.BookAppointmentRequest) (*responses.AppointmentAccepted, []exceptions.FieldError)
}

// EventPublisher is the gateway the usecase publishes through.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) eventqueue.Outcome
	Enabled() bool
}
