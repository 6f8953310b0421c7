package appointments

import (
	"context"
	"testing"
	"time"
	"timeslot-service/internal/app/config"
	"timeslot-service/internal/app/services/shared/contact"
	"timeslot-service/internal/app/services/shared/eventqueue"
	"timeslot-service/internal/pkg/dto/requests"
	"timeslot-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPublisher struct {
	enabled     bool
	outcome     eventqueue.Outcome
	calls       int
	lastKey     string
	lastPayload []byte
}

func (s *stubPublisher) Publish(ctx context.Context, key string, payload []byte) eventqueue.Outcome {
	s.calls++
	s.lastKey = key
	s.lastPayload = payload
	return s.outcome
}

func (s *stubPublisher) Enabled() bool {
	return s.enabled
}

func newTestUsecase(publisher *stubPublisher, notify config.Notify) *appointmentUsecase {
	return &appointmentUsecase{
		log:          zap.NewNop(),
		normalizer:   contact.NewNormalizer(notify.DefaultPhoneRegion),
		publisher:    publisher,
		notifyPolicy: NewNotifyPolicy(notify),
		notifySMS:    notify.SMS,
		clock:        func() time.Time { return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func fixedNotifyConfig() config.Notify {
	return config.Notify{
		Policy:             "fixed",
		Email:              true,
		SMS:                false,
		DefaultPhoneRegion: "US",
	}
}

func validBookRequest() *requests.BookAppointmentRequest {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	return &requests.BookAppointmentRequest{
		Contact: &requests.ContactRequest{Email: "a@b.com"},
		Appointment: &requests.AppointmentRequest{
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
		},
	}
}

func TestAppointmentUsecaseBook(t *testing.T) {
	t.Run("Rejected request never reaches the publisher", func(t *testing.T) {
		publisher := &stubPublisher{enabled: true}
		usecase := newTestUsecase(publisher, fixedNotifyConfig())

		response, fieldErrors := usecase.Book(context.Background(), &requests.BookAppointmentRequest{})

		assert.Nil(t, response)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "contact is required", fieldErrors[0].Message)
		assert.Zero(t, publisher.calls)
	})

	t.Run("Accepted request publishes the canonical event", func(t *testing.T) {
		publisher := &stubPublisher{
			enabled: true,
			outcome: eventqueue.Outcome{State: eventqueue.StateSuccess, Topic: "appointments.created", Partition: 2, Offset: 41},
		}
		usecase := newTestUsecase(publisher, fixedNotifyConfig())

		response, fieldErrors := usecase.Book(context.Background(), validBookRequest())

		require.Empty(t, fieldErrors)
		require.NotNil(t, response)
		assert.True(t, response.KafkaEnabled)
		assert.True(t, response.Published)
		assert.Equal(t, response.AppointmentID, publisher.lastKey)

		var published events.AppointmentCreated
		require.NoError(t, json.Unmarshal(publisher.lastPayload, &published))
		assert.Equal(t, response.EventID, published.EventID)
		assert.Equal(t, "appointments.created", published.EventType)
		assert.Equal(t, events.NotifyChannels{Email: true, SMS: false}, published.Notify)
		assert.Equal(t, 30, published.Appointment.DurationMinutes)
		require.NotNil(t, published.Appointment.Email)
		assert.Equal(t, "a@b.com", *published.Appointment.Email)
		assert.Nil(t, published.Appointment.PhoneE164)
	})

	t.Run("Absent contact fields are omitted from the payload", func(t *testing.T) {
		publisher := &stubPublisher{enabled: true, outcome: eventqueue.Outcome{State: eventqueue.StateSuccess}}
		usecase := newTestUsecase(publisher, fixedNotifyConfig())

		_, fieldErrors := usecase.Book(context.Background(), validBookRequest())

		require.Empty(t, fieldErrors)
		assert.NotContains(t, string(publisher.lastPayload), "phone_e164")
		assert.NotContains(t, string(publisher.lastPayload), "null")
	})

	t.Run("Publish failure still accepts the request", func(t *testing.T) {
		publisher := &stubPublisher{
			enabled: true,
			outcome: eventqueue.Outcome{State: eventqueue.StateFailed, Reason: "broker unreachable"},
		}
		usecase := newTestUsecase(publisher, fixedNotifyConfig())

		response, fieldErrors := usecase.Book(context.Background(), validBookRequest())

		require.Empty(t, fieldErrors)
		require.NotNil(t, response)
		assert.True(t, response.KafkaEnabled)
		assert.False(t, response.Published)
	})

	t.Run("Disabled publishing reflected in the response", func(t *testing.T) {
		publisher := &stubPublisher{
			enabled: false,
			outcome: eventqueue.Outcome{State: eventqueue.StateDisabled, Reason: "publishing disabled"},
		}
		usecase := newTestUsecase(publisher, fixedNotifyConfig())

		response, fieldErrors := usecase.Book(context.Background(), validBookRequest())

		require.Empty(t, fieldErrors)
		require.NotNil(t, response)
		assert.False(t, response.KafkaEnabled)
		assert.False(t, response.Published)
	})

	t.Run("Concurrent requests get distinct event IDs", func(t *testing.T) {
		publisher := &stubPublisher{enabled: true, outcome: eventqueue.Outcome{State: eventqueue.StateSuccess}}
		usecase := newTestUsecase(publisher, fixedNotifyConfig())

		first, _ := usecase.Book(context.Background(), validBookRequest())
		second, _ := usecase.Book(context.Background(), validBookRequest())

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.NotEqual(t, first.EventID, second.EventID)
	})

	t.Run("Channel policy derives notify flags from contact", func(t *testing.T) {
		notify := fixedNotifyConfig()
		notify.Policy = "channel"
		publisher := &stubPublisher{enabled: true, outcome: eventqueue.Outcome{State: eventqueue.StateSuccess}}
		usecase := newTestUsecase(publisher, notify)

		request := validBookRequest()
		request.Contact.Phone = "212-555-0123"
		_, fieldErrors := usecase.Book(context.Background(), request)
		require.Empty(t, fieldErrors)

		var published events.AppointmentCreated
		require.NoError(t, json.Unmarshal(publisher.lastPayload, &published))
		assert.Equal(t, events.NotifyChannels{Email: true, SMS: true}, published.Notify)
	})
}

func TestNewNotifyPolicySelection(t *testing.T) {
	fixed := NewNotifyPolicy(config.Notify{Policy: "fixed", Email: true})
	assert.IsType(t, FixedNotifyPolicy{}, fixed)

	channel := NewNotifyPolicy(config.Notify{Policy: "channel"})
	assert.IsType(t, ChannelNotifyPolicy{}, channel)
}
