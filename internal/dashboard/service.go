package dashboard

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/patient-portal/internal/model"
	"github.com/jwalitptl/patient-portal/internal/notify"
	"github.com/jwalitptl/patient-portal/internal/store"
	"github.com/jwalitptl/patient-portal/internal/view"
	"github.com/jwalitptl/patient-portal/pkg/errors"
	"github.com/jwalitptl/patient-portal/pkg/metrics"
)

// Notice texts surfaced to the user. The wording is part of the dashboard's
// observable behavior and is kept stable.
const (
	NoticeBooked           = "Appointment booked successfully!"
	NoticeCancelled        = "Appointment cancelled successfully!"
	NoticeProfileUpdated   = "Profile updated successfully!"
	NoticeFillAllFields    = "Please fill in all fields"
	NoticeInvalidEmail     = "Please enter a valid email address"
	NoticeRescheduleUnsupp = "Reschedule functionality will be implemented in the next version."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements the appointment store/view synchronizer: every operation
// reads the stored collections, mutates them if needed, persists, and derives
// fresh views. Nothing is cached between calls.
type Service struct {
	records  *store.Records
	notifier notify.Notifier
	metrics  *metrics.Metrics
}

// NewService wires the synchronizer. metrics may be nil outside full wiring.
func NewService(records *store.Records, notifier notify.Notifier, m *metrics.Metrics) *Service {
	return &Service{
		records:  records,
		notifier: notifier,
		metrics:  m,
	}
}

// Overview is the rendered overview section: summary counts plus the three
// appointment tables keyed by display target.
type Overview struct {
	PendingCount  int               `json:"pendingCount"`
	ApprovedCount int               `json:"approvedCount"`
	Tables        map[string]string `json:"tables"`
}

// LoadOverview recomputes and renders the overview section from storage. With
// no current patient the dependent rendering is skipped silently and an empty
// overview is returned.
func (s *Service) LoadOverview(ctx context.Context) (*Overview, error) {
	screen := view.NewScreen(view.TargetPendingTable, view.TargetApprovedTable, view.TargetBookedTable)

	patient := s.records.CurrentPatient(ctx)
	if patient == nil {
		log.Debug().Msg("no current patient, skipping overview rendering")
		return &Overview{Tables: screen.Fragments()}, nil
	}

	views := DeriveViews(s.records.Appointments(ctx), patient.Email)
	if s.metrics != nil {
		s.metrics.DashboardRenders.Inc()
		s.metrics.RenderedRows.Add(float64(len(views.All)))
	}

	tables := []view.Table{
		view.RenderTable(view.TargetPendingTable, views.Pending, true),
		view.RenderTable(view.TargetApprovedTable, views.Approved, true),
		view.RenderTable(view.TargetBookedTable, views.All, false),
	}
	for _, t := range tables {
		html, err := t.HTML()
		if err != nil {
			return nil, fmt.Errorf("failed to render overview: %w", err)
		}
		screen.Set(t.Target, html)
	}

	return &Overview{
		PendingCount:  views.PendingCount(),
		ApprovedCount: views.ApprovedCount(),
		Tables:        screen.Fragments(),
	}, nil
}

// Book validates the booking form, appends a new pending appointment to the
// stored collection and persists it. Validation failure aborts with no write.
func (s *Service) Book(ctx context.Context, req *model.BookingRequest) (*model.Appointment, error) {
	if anyEmpty(req.FirstName, req.ContactNo, req.Email, req.Age, req.DateOfBirth, req.AppointmentDate, req.Reason) {
		if s.metrics != nil {
			s.metrics.BookingsRejected.Inc()
		}
		return nil, errors.Validation(NoticeFillAllFields, nil)
	}

	appointment := model.Appointment{
		ID:              model.NewAppointmentID(),
		FirstName:       req.FirstName,
		ContactNo:       req.ContactNo,
		Email:           req.Email,
		Age:             model.CoerceAge(req.Age),
		DateOfBirth:     req.DateOfBirth,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
		Status:          model.AppointmentStatusPending,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	appointments := append(s.records.Appointments(ctx), appointment)
	if err := s.records.SaveAppointments(ctx, appointments); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.BookingsTotal.Inc()
	}
	s.notice(ctx, appointment.Email, NoticeBooked, fmt.Sprintf(
		"Date: %s\nReason: %s\n\nStatus: Pending Approval",
		view.FormatDate(appointment.AppointmentDate), appointment.Reason,
	))

	log.Info().Str("appointment_id", appointment.ID).Str("email", appointment.Email).Msg("appointment booked")
	return &appointment, nil
}

// Cancel removes the appointment with the given id from the stored collection.
// It requires explicit confirmation; an unconfirmed request aborts without
// mutating storage. An id with no match is a no-op, not an error.
func (s *Service) Cancel(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return errors.NotConfirmed("cancel")
	}

	appointments := s.records.Appointments(ctx)
	kept := make([]model.Appointment, 0, len(appointments))
	removed := false
	for _, a := range appointments {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}

	if !removed {
		log.Debug().Str("appointment_id", id).Msg("cancel target not found, nothing to do")
		return nil
	}

	if err := s.records.SaveAppointments(ctx, kept); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CancellationsTotal.Inc()
	}
	if patient := s.records.CurrentPatient(ctx); patient != nil {
		s.notice(ctx, patient.Email, NoticeCancelled, fmt.Sprintf("Appointment %s has been cancelled.", id))
	}

	log.Info().Str("appointment_id", id).Msg("appointment cancelled")
	return nil
}

// Reschedule is a deliberate stub: it reports the id and tells the user the
// feature is not available yet. Storage is never touched.
func (s *Service) Reschedule(ctx context.Context, id string) string {
	if s.metrics != nil {
		s.metrics.RescheduleRequests.Inc()
	}
	log.Info().Str("appointment_id", id).Msg("reschedule requested, feature not available")

	if patient := s.records.CurrentPatient(ctx); patient != nil {
		s.notice(ctx, patient.Email, "Reschedule", NoticeRescheduleUnsupp)
	}
	return NoticeRescheduleUnsupp
}

// Profile projects the stored patient onto the profile card, substituting
// fixed placeholders when no record or individual fields are missing.
func (s *Service) Profile(ctx context.Context) view.Card {
	return view.RenderCard(s.records.CurrentPatient(ctx))
}

// EditForm returns the current patient's fields for pre-populating the edit
// form. With no current patient the user is told instead of getting an empty
// form.
func (s *Service) EditForm(ctx context.Context) (*model.UpdateProfileRequest, error) {
	patient := s.records.CurrentPatient(ctx)
	if patient == nil {
		return nil, errors.MissingIdentity()
	}
	return &model.UpdateProfileRequest{
		FullName:    patient.FullName,
		Email:       patient.Email,
		ContactNo:   patient.ContactNo,
		Gender:      patient.Gender,
		DateOfBirth: patient.DateOfBirth,
		Address:     patient.Address,
	}, nil
}

// UpdateProfile overwrites the stored patient record wholesale. All fields are
// required and the email must look like local@domain with a dot in the domain;
// failure leaves the stored record untouched.
func (s *Service) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (view.Card, error) {
	if anyEmpty(req.FullName, req.Email, req.ContactNo, req.Gender, req.DateOfBirth, req.Address) {
		return view.Card{}, errors.Validation(NoticeFillAllFields, nil)
	}
	if !emailPattern.MatchString(req.Email) {
		return view.Card{}, errors.Validation(NoticeInvalidEmail, nil)
	}

	patient := req.Patient()
	if err := s.records.SaveCurrentPatient(ctx, patient); err != nil {
		return view.Card{}, fmt.Errorf("failed to update profile: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ProfileUpdatesTotal.Inc()
	}
	s.notice(ctx, patient.Email, "Profile updated", NoticeProfileUpdated)

	log.Info().Str("email", patient.Email).Msg("profile updated")
	return view.RenderCard(patient), nil
}

// notice delivers a user notice; delivery failure never fails the operation.
func (s *Service) notice(ctx context.Context, to, subject, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, to, subject, body); err != nil {
		log.Warn().Err(err).Str("to", to).Str("subject", subject).Msg("failed to deliver notice")
	}
}

func anyEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
