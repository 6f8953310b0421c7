package appointments

import (
	"timeslot-service/internal/app/config"
	"timeslot-service/internal/app/services/shared/contact"
	"timeslot-service/internal/pkg/constvars"
	"timeslot-service/internal/pkg/events"
)

// FixedNotifyPolicy emits the configured flags on every event regardless of
// which contact details the request carried.
type FixedNotifyPolicy struct {
	Email bool
	SMS   bool
}

func (p FixedNotifyPolicy) Channels(contact.Normalized) events.NotifyChannels {
	return events.NotifyChannels{Email: p.Email, SMS: p.SMS}
}

// ChannelNotifyPolicy flags a channel only when the normalized contact can
// actually be reached on it.
type ChannelNotifyPolicy struct{}

func (ChannelNotifyPolicy) Channels(normalized contact.Normalized) events.NotifyChannels {
	return events.NotifyChannels{
		Email: normalized.Email != nil,
		SMS:   normalized.PhoneE164 != nil,
	}
}

// NewNotifyPolicy selects the strategy for this deployment. Unknown values
// cannot reach here; config validation rejects them at startup.
func NewNotifyPolicy(notifyConfig config.Notify) NotifyPolicy {
	if notifyConfig.Policy == constvars.NotifyPolicyChannel {
		return ChannelNotifyPolicy{}
	}
	return FixedNotifyPolicy{Email: notifyConfig.Email, SMS: notifyConfig.SMS}
}
