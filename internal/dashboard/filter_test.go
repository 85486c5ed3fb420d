package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/patient-portal/internal/model"
)

func TestDeriveViews(t *testing.T) {
	appointments := []model.Appointment{
		{ID: "a", Email: "x@y.com", Status: model.AppointmentStatusPending},
		{ID: "b", Email: "x@y.com", Status: model.AppointmentStatusApproved},
		{ID: "c", Email: "other@y.com", Status: model.AppointmentStatusPending},
		{ID: "d", Email: "x@y.com", Status: model.AppointmentStatusPending},
	}

	views := DeriveViews(appointments, "x@y.com")

	assert.Equal(t, 2, views.PendingCount())
	assert.Equal(t, 1, views.ApprovedCount())
	assert.Len(t, views.All, 3)

	// pending and approved partition by status with no overlap
	for _, a := range views.Pending {
		assert.Equal(t, model.AppointmentStatusPending, a.Status)
	}
	for _, a := range views.Approved {
		assert.Equal(t, model.AppointmentStatusApproved, a.Status)
	}

	// every pending/approved record appears in the all view
	all := make(map[string]bool)
	for _, a := range views.All {
		all[a.ID] = true
	}
	for _, a := range append(views.Pending, views.Approved...) {
		assert.True(t, all[a.ID])
	}
}

func TestDeriveViewsPreservesOrder(t *testing.T) {
	appointments := []model.Appointment{
		{ID: "3", Email: "x@y.com", Status: model.AppointmentStatusPending},
		{ID: "1", Email: "x@y.com", Status: model.AppointmentStatusPending},
		{ID: "2", Email: "x@y.com", Status: model.AppointmentStatusPending},
	}

	views := DeriveViews(appointments, "x@y.com")

	ids := make([]string, 0, len(views.All))
	for _, a := range views.All {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestDeriveViewsNoMatch(t *testing.T) {
	appointments := []model.Appointment{
		{ID: "a", Email: "someone@else.com", Status: model.AppointmentStatusPending},
	}

	views := DeriveViews(appointments, "x@y.com")

	assert.Empty(t, views.All)
	assert.Zero(t, views.PendingCount())
	assert.Zero(t, views.ApprovedCount())
}

func TestDeriveViewsEmptyCollection(t *testing.T) {
	views := DeriveViews(nil, "x@y.com")

	assert.Empty(t, views.Pending)
	assert.Empty(t, views.Approved)
	assert.Empty(t, views.All)
}
