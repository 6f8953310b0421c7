package appointments

import (
	"timeslot-service/internal/app/services/shared/contact"
	"timeslot-service/internal/pkg/events"
)

// NotifyPolicy decides which notification channel flags an event carries.
// Which implementation runs is a deployment decision (APP_NOTIFY_POLICY),
// not derived per request.
type NotifyPolicy interface {
	Channels(normalized contact.Normalized) events.NotifyChannels
}
