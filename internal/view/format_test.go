package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{"first and last", "Jane Doe", "JD"},
		{"middle name ignored", "Jane Q Doe", "JD"},
		{"single word", "Madonna", "M"},
		{"lowercase input", "jane doe", "JD"},
		{"empty", "", "PN"},
		{"whitespace only", "   ", "PN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.fullName))
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"date only", "2000-01-02", "January 2, 2000"},
		{"rfc3339", "2024-12-25T10:30:00Z", "December 25, 2024"},
		{"empty", "", NotProvided},
		{"garbage", "not-a-date", NotProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.value))
		})
	}
}
