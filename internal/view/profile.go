package view

import "github.com/jwalitptl/patient-portal/internal/model"

// PlaceholderName is shown when the patient record carries no full name.
const PlaceholderName = "Patient Name"

// Card is the profile display projection. Missing fields render as fixed
// placeholders instead of empty strings.
type Card struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	ContactNo   string `json:"contactNo"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
	Initials    string `json:"initials"`
}

// RenderCard projects the patient record onto the profile display fields.
func RenderCard(patient *model.Patient) Card {
	if patient == nil {
		return Card{
			FullName:    PlaceholderName,
			Email:       NotProvided,
			ContactNo:   NotProvided,
			Gender:      NotProvided,
			Address:     NotProvided,
			DateOfBirth: NotProvided,
			Initials:    PlaceholderInitials,
		}
	}

	return Card{
		FullName:    orPlaceholder(patient.FullName, PlaceholderName),
		Email:       orPlaceholder(patient.Email, NotProvided),
		ContactNo:   orPlaceholder(patient.ContactNo, NotProvided),
		Gender:      orPlaceholder(patient.Gender, NotProvided),
		Address:     orPlaceholder(patient.Address, NotProvided),
		DateOfBirth: FormatDate(patient.DateOfBirth),
		Initials:    Initials(patient.FullName),
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
