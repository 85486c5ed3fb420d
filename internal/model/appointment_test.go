package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceAge(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain integer", "30", 30},
		{"leading digits with garbage", "30 years", 30},
		{"non-numeric", "thirty", 0},
		{"empty", "", 0},
		{"signed", "-5", -5},
		{"surrounding whitespace", " 42 ", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceAge(tt.raw))
		})
	}
}

func TestNewAppointmentID(t *testing.T) {
	id := NewAppointmentID()
	assert.True(t, strings.HasPrefix(id, "appt_"))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewAppointmentID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
