package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrief_Text(t *testing.T) {
	t.Run("full brief", func(t *testing.T) {
		b := Brief{
			CompanyName: "Bubey's Bite",
			Industry:    "Food & Beverage",
			Budget:      "₦60k–₦150k",
			Style:       "Warm",
			Description: "Online orders",
		}
		assert.Equal(t, "Brief • Bubey's Bite — Food & Beverage | ₦60k–₦150k | Warm — Online orders", b.Text())
	})

	t.Run("empty fields render placeholders", func(t *testing.T) {
		assert.Equal(t, "Brief • Untitled — — | — | — — —", Brief{}.Text())
	})
}

func TestBrief_Merge(t *testing.T) {
	base := Brief{CompanyName: "Acme", Style: "Modern"}

	t.Run("non-empty fields overlay", func(t *testing.T) {
		got := base.Merge(Brief{Style: "Minimal", Budget: "₦100k"})
		assert.Equal(t, "Acme", got.CompanyName)
		assert.Equal(t, "Minimal", got.Style)
		assert.Equal(t, "₦100k", got.Budget)
	})

	t.Run("empty fields keep existing values", func(t *testing.T) {
		got := base.Merge(Brief{})
		assert.Equal(t, base, got)
	})
}

func TestNewBrief(t *testing.T) {
	b := NewBrief()
	assert.Equal(t, DefaultStyle, b.Style)
	assert.Empty(t, b.CompanyName)
}
