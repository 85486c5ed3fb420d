package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/patient-portal/internal/model"
	"github.com/jwalitptl/patient-portal/internal/store"
	"github.com/jwalitptl/patient-portal/internal/store/memory"
	"github.com/jwalitptl/patient-portal/internal/view"
	"github.com/jwalitptl/patient-portal/pkg/errors"
)

func newTestService(t *testing.T) (*Service, *store.Records) {
	t.Helper()
	records := store.NewRecords(memory.NewStore())
	return NewService(records, nil, nil), records
}

func seedPatient(t *testing.T, records *store.Records, email string) {
	t.Helper()
	err := records.SaveCurrentPatient(context.Background(), &model.Patient{
		FullName: "Jane Doe",
		Email:    email,
		UserType: model.UserTypePatient,
	})
	require.NoError(t, err)
}

func validBooking() *model.BookingRequest {
	return &model.BookingRequest{
		FirstName:       "Jane",
		ContactNo:       "555-0101",
		Email:           "x@y.com",
		Age:             "30",
		DateOfBirth:     "1994-03-10",
		AppointmentDate: "2026-09-01",
		Reason:          "Checkup",
	}
}

func TestBookAppendsPendingAppointment(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)

	appointment, err := svc.Book(ctx, validBooking())
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, 30, appointment.Age)
	assert.NotEmpty(t, appointment.ID)
	assert.NotEmpty(t, appointment.CreatedAt)

	stored := records.Appointments(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, *appointment, stored[0])
}

func TestBookMissingFieldAbortsWithoutWrite(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)

	req := validBooking()
	req.Reason = ""

	_, err := svc.Book(ctx, req)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Equal(t, NoticeFillAllFields, appErr.Message)
	assert.Empty(t, records.Appointments(ctx))
}

func TestBookCoercesLooseAge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	req := validBooking()
	req.Age = "not-a-number"

	appointment, err := svc.Book(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, appointment.Age)
}

func TestCancelRemovesMatchingAppointment(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)

	first, err := svc.Book(ctx, validBooking())
	require.NoError(t, err)
	second, err := svc.Book(ctx, validBooking())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, first.ID, true))

	stored := records.Appointments(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, second.ID, stored[0].ID)
}

func TestCancelUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)

	_, err := svc.Book(ctx, validBooking())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, "appt_missing", true))
	assert.Len(t, records.Appointments(ctx), 1)
}

func TestCancelRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)

	appointment, err := svc.Book(ctx, validBooking())
	require.NoError(t, err)

	err = svc.Cancel(ctx, appointment.ID, false)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrNotConfirmed, appErr.Code)
	assert.Len(t, records.Appointments(ctx), 1)
}

func TestRescheduleIsStub(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)

	appointment, err := svc.Book(ctx, validBooking())
	require.NoError(t, err)

	notice := svc.Reschedule(ctx, appointment.ID)
	assert.Equal(t, NoticeRescheduleUnsupp, notice)
	assert.Len(t, records.Appointments(ctx), 1)
}

func TestLoadOverviewCounts(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)
	seedPatient(t, records, "x@y.com")

	err := records.SaveAppointments(ctx, []model.Appointment{
		{ID: "a", Email: "x@y.com", Status: model.AppointmentStatusPending},
		{ID: "b", Email: "x@y.com", Status: model.AppointmentStatusApproved},
		{ID: "c", Email: "other@y.com", Status: model.AppointmentStatusPending},
	})
	require.NoError(t, err)

	overview, err := svc.LoadOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, overview.PendingCount)
	assert.Equal(t, 1, overview.ApprovedCount)
	assert.Equal(t, 2, strings.Count(overview.Tables[view.TargetBookedTable], "<tr>"))
}

func TestLoadOverviewWithoutPatient(t *testing.T) {
	svc, _ := newTestService(t)

	overview, err := svc.LoadOverview(context.Background())
	require.NoError(t, err)

	assert.Zero(t, overview.PendingCount)
	assert.Zero(t, overview.ApprovedCount)
	assert.Empty(t, overview.Tables[view.TargetBookedTable])
}

func TestLoadOverviewRerenderIsStable(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)
	seedPatient(t, records, "x@y.com")

	_, err := svc.Book(ctx, validBooking())
	require.NoError(t, err)

	first, err := svc.LoadOverview(ctx)
	require.NoError(t, err)
	second, err := svc.LoadOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateProfileOverwritesRecord(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)
	seedPatient(t, records, "old@y.com")

	card, err := svc.UpdateProfile(ctx, &model.UpdateProfileRequest{
		FullName:    "John Smith",
		Email:       "john@example.com",
		ContactNo:   "555-0202",
		Gender:      "Male",
		DateOfBirth: "1985-06-20",
		Address:     "42 Side St",
	})
	require.NoError(t, err)
	assert.Equal(t, "JS", card.Initials)

	stored := records.CurrentPatient(ctx)
	require.NotNil(t, stored)
	assert.Equal(t, "john@example.com", stored.Email)
	assert.Equal(t, model.UserTypePatient, stored.UserType)
}

func TestUpdateProfileRejectsInvalidEmail(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)
	seedPatient(t, records, "jane@example.com")

	_, err := svc.UpdateProfile(ctx, &model.UpdateProfileRequest{
		FullName:    "Jane Doe",
		Email:       "not-an-email",
		ContactNo:   "555-0101",
		Gender:      "Female",
		DateOfBirth: "1994-03-10",
		Address:     "12 Main St",
	})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, NoticeInvalidEmail, appErr.Message)

	stored := records.CurrentPatient(ctx)
	require.NotNil(t, stored)
	assert.Equal(t, "jane@example.com", stored.Email)
}

func TestUpdateProfileRejectsDomainWithoutDot(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.UpdateProfile(ctx, &model.UpdateProfileRequest{
		FullName:    "Jane Doe",
		Email:       "jane@localhost",
		ContactNo:   "555-0101",
		Gender:      "Female",
		DateOfBirth: "1994-03-10",
		Address:     "12 Main St",
	})
	require.Error(t, err)
}

func TestEditFormRequiresPatient(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.EditForm(context.Background())
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrMissingIdentity, appErr.Code)
}

func TestEditFormPrefillsCurrentRecord(t *testing.T) {
	ctx := context.Background()
	svc, records := newTestService(t)
	seedPatient(t, records, "jane@example.com")

	form, err := svc.EditForm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", form.FullName)
	assert.Equal(t, "jane@example.com", form.Email)
}
