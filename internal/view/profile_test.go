package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/patient-portal/internal/model"
)

func TestRenderCard(t *testing.T) {
	card := RenderCard(&model.Patient{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		ContactNo:   "555-0101",
		Gender:      "Female",
		DateOfBirth: "1994-03-10",
		Address:     "12 Main St",
	})

	assert.Equal(t, "Jane Doe", card.FullName)
	assert.Equal(t, "jane@example.com", card.Email)
	assert.Equal(t, "March 10, 1994", card.DateOfBirth)
	assert.Equal(t, "JD", card.Initials)
}

func TestRenderCardMissingFields(t *testing.T) {
	card := RenderCard(&model.Patient{Email: "jane@example.com"})

	assert.Equal(t, PlaceholderName, card.FullName)
	assert.Equal(t, NotProvided, card.ContactNo)
	assert.Equal(t, NotProvided, card.Gender)
	assert.Equal(t, NotProvided, card.Address)
	assert.Equal(t, NotProvided, card.DateOfBirth)
	assert.Equal(t, PlaceholderInitials, card.Initials)
}

func TestRenderCardNilPatient(t *testing.T) {
	card := RenderCard(nil)

	assert.Equal(t, PlaceholderName, card.FullName)
	assert.Equal(t, NotProvided, card.Email)
	assert.Equal(t, PlaceholderInitials, card.Initials)
}
