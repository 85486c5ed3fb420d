package model

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusApproved AppointmentStatus = "approved"
)

// Appointment is one booking record. The collection holds records for all
// patients; views are always derived per patient email. Field names match the
// persisted JSON layout.
type Appointment struct {
	ID              string            `json:"id"`
	FirstName       string            `json:"firstName"`
	ContactNo       string            `json:"contactNo"`
	Email           string            `json:"email"`
	Age             int               `json:"age"`
	DateOfBirth     string            `json:"dateOfBirth"`
	AppointmentDate string            `json:"appointmentDate"`
	Reason          string            `json:"reason"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       string            `json:"createdAt"`
}

// BookingRequest carries the booking form fields. All fields are required but
// only presence is checked; age arrives as a raw string and goes through
// CoerceAge.
type BookingRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	ContactNo       string `json:"contactNo" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Age             string `json:"age" binding:"required"`
	DateOfBirth     string `json:"dateOfBirth" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
}

// NewAppointmentID returns an opaque unique id derived from the current time
// plus a random base36 suffix. Collisions are negligible, not cryptographically
// impossible.
func NewAppointmentID() string {
	return fmt.Sprintf("appt_%d_%s", time.Now().UnixMilli(), randomSuffix(9))
}

func randomSuffix(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// CoerceAge applies loose integer parsing to the submitted age: optional sign,
// then leading decimal digits, trailing garbage ignored. Non-numeric input
// yields zero and is accepted as-is; the booking flow does not reject it.
func CoerceAge(raw string) int {
	s := strings.TrimSpace(raw)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	age, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return age
}
