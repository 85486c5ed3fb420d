package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/patient-portal/internal/model"
)

// Records is the typed accessor over the two stored collections. Reads fail
// soft: an absent or malformed entry degrades to a nil patient or an empty
// collection and is never surfaced as an error to the caller.
type Records struct {
	store Store
}

func NewRecords(store Store) *Records {
	return &Records{store: store}
}

// CurrentPatient returns the stored identity record, or nil when none exists
// or the entry cannot be decoded.
func (r *Records) CurrentPatient(ctx context.Context) *model.Patient {
	raw, ok, err := r.store.Load(ctx, KeyCurrentPatient)
	if err != nil || !ok {
		if err != nil {
			log.Debug().Err(err).Str("key", KeyCurrentPatient).Msg("load failed, treating as absent")
		}
		return nil
	}

	var patient model.Patient
	if err := json.Unmarshal(raw, &patient); err != nil {
		log.Debug().Err(err).Str("key", KeyCurrentPatient).Msg("malformed entry, treating as absent")
		return nil
	}
	return &patient
}

// SaveCurrentPatient overwrites the stored identity record wholesale.
func (r *Records) SaveCurrentPatient(ctx context.Context, patient *model.Patient) error {
	raw, err := json.Marshal(patient)
	if err != nil {
		return fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.store.Save(ctx, KeyCurrentPatient, raw); err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}
	return nil
}

// Appointments returns the full stored collection across all patients. Absent
// or malformed entries degrade to an empty collection.
func (r *Records) Appointments(ctx context.Context) []model.Appointment {
	raw, ok, err := r.store.Load(ctx, KeyAppointments)
	if err != nil || !ok {
		if err != nil {
			log.Debug().Err(err).Str("key", KeyAppointments).Msg("load failed, treating as empty")
		}
		return nil
	}

	var appointments []model.Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		log.Debug().Err(err).Str("key", KeyAppointments).Msg("malformed entry, treating as empty")
		return nil
	}
	return appointments
}

// SaveAppointments replaces the stored collection.
func (r *Records) SaveAppointments(ctx context.Context, appointments []model.Appointment) error {
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	raw, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("failed to marshal appointments: %w", err)
	}
	if err := r.store.Save(ctx, KeyAppointments, raw); err != nil {
		return fmt.Errorf("failed to save appointments: %w", err)
	}
	return nil
}
