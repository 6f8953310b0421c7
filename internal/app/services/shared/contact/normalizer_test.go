package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	normalizer := NewNormalizer("US")

	t.Run("Blank email collapses to nil", func(t *testing.T) {
		assert.Nil(t, normalizer.Normalize("", "").Email)
		assert.Nil(t, normalizer.Normalize("   ", "").Email)
	})

	t.Run("Email is trimmed but not validated", func(t *testing.T) {
		normalized := normalizer.Normalize("  not-an-email  ", "")
		require.NotNil(t, normalized.Email)
		assert.Equal(t, "not-an-email", *normalized.Email)
	})
}

func TestNormalizePhone(t *testing.T) {
	normalizer := NewNormalizer("US")

	t.Run("Blank phone collapses to nil", func(t *testing.T) {
		assert.Nil(t, normalizer.NormalizePhone(""))
		assert.Nil(t, normalizer.NormalizePhone("   "))
	})

	t.Run("National number formatted against default region", func(t *testing.T) {
		normalized := normalizer.NormalizePhone("212-555-0123")
		require.NotNil(t, normalized)
		assert.Equal(t, "+12125550123", *normalized)
	})

	t.Run("Unparseable phone collapses to nil", func(t *testing.T) {
		assert.Nil(t, normalizer.NormalizePhone("not a phone"))
	})

	t.Run("Parseable but invalid number collapses to nil", func(t *testing.T) {
		assert.Nil(t, normalizer.NormalizePhone("12345"))
	})

	t.Run("E164 input is idempotent", func(t *testing.T) {
		canonical := "+12125550123"
		once := normalizer.NormalizePhone(canonical)
		require.NotNil(t, once)
		twice := normalizer.NormalizePhone(*once)
		require.NotNil(t, twice)
		assert.Equal(t, canonical, *once)
		assert.Equal(t, *once, *twice)
	})

	t.Run("Region default drives country code", func(t *testing.T) {
		gbNormalizer := NewNormalizer("gb")
		normalized := gbNormalizer.NormalizePhone("020 7946 0958")
		require.NotNil(t, normalized)
		assert.Equal(t, "+442079460958", *normalized)
	})
}
