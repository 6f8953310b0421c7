package appointments

import (
	"context"
	"time"
	"timeslot-service/internal/app/config"
	"timeslot-service/internal/app/contracts"
	"timeslot-service/internal/app/services/shared/contact"
	"timeslot-service/internal/app/services/shared/eventqueue"
	"timeslot-service/internal/pkg/constvars"
	"timeslot-service/internal/pkg/dto/requests"
	"timeslot-service/internal/pkg/dto/responses"
	"timeslot-service/internal/pkg/events"
	"timeslot-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	log          *zap.Logger
	normalizer   *contact.Normalizer
	publisher    contracts.EventPublisher
	notifyPolicy NotifyPolicy
	notifySMS    bool
	clock        func() time.Time
}

func NewAppointmentUsecase(
	log *zap.Logger,
	normalizer *contact.Normalizer,
	publisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		log:          log,
		normalizer:   normalizer,
		publisher:    publisher,
		notifyPolicy: NewNotifyPolicy(internalConfig.Notify),
		notifySMS:    internalConfig.Notify.SMS,
		clock:        time.Now,
	}
}

// Book runs normalize -> validate -> build -> publish for one request.
// Everything it touches is request-scoped; the publisher is the only shared
// resource. A failed or disabled publish still yields an accepted response,
// only with Published false.
func (u *appointmentUsecase) Book(ctx context.Context, request *requests.BookAppointmentRequest) (*responses.AppointmentAccepted, []exceptions.FieldError) {
	var normalized contact.Normalized
	if request.Contact != nil {
		normalized = u.normalizer.Normalize(request.Contact.Email, request.Contact.Phone)
	}

	if fieldErrors := validateBookRequest(request, normalized, u.notifySMS); len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	event := buildAppointmentEvent(request.Appointment, normalized, u.notifyPolicy.Channels(normalized), u.clock())

	outcome := u.publish(ctx, event)
	u.logOutcome(event, outcome)

	return &responses.AppointmentAccepted{
		AppointmentID: event.Appointment.AppointmentID,
		EventID:       event.EventID,
		KafkaEnabled:  u.publisher.Enabled(),
		Published:     outcome.Published(),
	}, nil
}

func (u *appointmentUsecase) publish(ctx context.Context, event *events.AppointmentCreated) eventqueue.Outcome {
	payload, err := json.Marshal(event)
	if err != nil {
		// Serialization rejection folds into the same failed outcome as a
		// broker error; the request is still accepted.
		return eventqueue.Outcome{State: eventqueue.StateFailed, Reason: err.Error()}
	}
	return u.publisher.Publish(ctx, event.Appointment.AppointmentID, payload)
}

func (u *appointmentUsecase) logOutcome(event *events.AppointmentCreated, outcome eventqueue.Outcome) {
	if outcome.Published() {
		u.log.Info("Appointment event published",
			zap.String(constvars.LoggingEventIDKey, event.EventID),
			zap.String(constvars.LoggingAppointmentIDKey, event.Appointment.AppointmentID),
			zap.String(constvars.LoggingTopicKey, outcome.Topic),
			zap.Int32(constvars.LoggingPartitionKey, outcome.Partition),
			zap.Int64(constvars.LoggingOffsetKey, outcome.Offset),
		)
		return
	}
	u.log.Warn("Appointment event not published",
		zap.String(constvars.LoggingEventIDKey, event.EventID),
		zap.String(constvars.LoggingAppointmentIDKey, event.Appointment.AppointmentID),
		zap.String("state", outcome.State.String()),
		zap.String(constvars.LoggingReasonKey, outcome.Reason),
	)
}
