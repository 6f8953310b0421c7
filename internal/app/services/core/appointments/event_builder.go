package appointments

import (
	"fmt"
	"math"
	"strconv"
	"time"
	"timeslot-service/internal/app/services/shared/contact"
	"timeslot-service/internal/pkg/dto/requests"
	"timeslot-service/internal/pkg/events"

	"github.com/google/uuid"
)

// buildAppointmentEvent assembles the canonical event. The clock instant is
// sampled once by the caller and reused for the appointment id, user id and
// occurred_at so they can never disagree within one request.
func buildAppointmentEvent(
	appointment *requests.AppointmentRequest,
	normalized contact.Normalized,
	notify events.NotifyChannels,
	now time.Time,
) *events.AppointmentCreated {
	nowUTC := now.UTC()
	unixMillis := nowUTC.UnixMilli()

	startUTC := appointment.StartTime.UTC()
	endUTC := appointment.EndTime.UTC()
	startFormatted := startUTC.Format(time.RFC3339Nano)

	return &events.AppointmentCreated{
		EventID:    fmt.Sprintf("evt-%s", uuid.NewString()),
		EventType:  events.AppointmentCreatedType,
		OccurredAt: nowUTC.Format(time.RFC3339Nano),
		Notify:     notify,
		Appointment: events.AppointmentPayload{
			AppointmentID:   fmt.Sprintf("timeslot-%d", unixMillis),
			UserID:          strconv.FormatInt(unixMillis, 10),
			StartTime:       startFormatted,
			EndTime:         endUTC.Format(time.RFC3339Nano),
			DurationMinutes: roundedMinutesBetween(startUTC, endUTC),
			Time:            startFormatted,
			Email:           normalized.Email,
			PhoneE164:       normalized.PhoneE164,
		},
	}
}

// roundedMinutesBetween rounds half away from zero, matching what consumers
// of duration_minutes already expect.
func roundedMinutesBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
