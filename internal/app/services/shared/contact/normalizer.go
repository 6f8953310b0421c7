package contact

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalized is the cleaned-up contact derived from raw request input.
// Nil means absent: blank email, or a phone that is blank, unparseable, or
// fails validity checks for the default region.
type Normalized struct {
	Email     *string
	PhoneE164 *string
}

// Normalizer canonicalizes contact details. It is stateless and safe for
// concurrent use; one instance is shared across all requests.
type Normalizer struct {
	defaultRegion string
}

// NewNormalizer builds a normalizer that parses phone numbers without an
// explicit country prefix against defaultRegion (ISO 3166-1 alpha-2).
func NewNormalizer(defaultRegion string) *Normalizer {
	return &Normalizer{defaultRegion: strings.ToUpper(defaultRegion)}
}

// Normalize trims the email (blank collapses to nil, no format validation)
// and canonicalizes the phone to E.164. Invalid phones collapse to nil
// silently; the validator decides whether that is an error.
func (n *Normalizer) Normalize(email, phone string) Normalized {
	return Normalized{
		Email:     n.normalizeEmail(email),
		PhoneE164: n.NormalizePhone(phone),
	}
}

func (n *Normalizer) normalizeEmail(email string) *string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizePhone parses against the default region and formats to E.164.
// An already-canonical E.164 input round-trips to itself.
func (n *Normalizer) NormalizePhone(phone string) *string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return nil
	}

	parsed, err := phonenumbers.Parse(trimmed, n.defaultRegion)
	if err != nil {
		return nil
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return nil
	}

	formatted := phonenumbers.Format(parsed, phonenumbers.E164)
	return &formatted
}
