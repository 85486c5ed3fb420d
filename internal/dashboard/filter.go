package dashboard

import "github.com/jwalitptl/patient-portal/internal/model"

// Views holds the derived appointment views for one patient. All three are
// recomputed from the stored collection on every load; nothing is cached
// between renders.
type Views struct {
	Pending  []model.Appointment
	Approved []model.Appointment
	All      []model.Appointment
}

// DeriveViews filters the full collection down to the given patient email.
// Filtering is pure and stable: input order is preserved and records for other
// patients (including orphans) are simply never included.
func DeriveViews(appointments []model.Appointment, email string) Views {
	mine := filter(appointments, func(a model.Appointment) bool {
		return a.Email == email
	})

	return Views{
		Pending: filter(mine, func(a model.Appointment) bool {
			return a.Status == model.AppointmentStatusPending
		}),
		Approved: filter(mine, func(a model.Appointment) bool {
			return a.Status == model.AppointmentStatusApproved
		}),
		All: mine,
	}
}

func (v Views) PendingCount() int  { return len(v.Pending) }
func (v Views) ApprovedCount() int { return len(v.Approved) }

func filter(appointments []model.Appointment, keep func(model.Appointment) bool) []model.Appointment {
	var out []model.Appointment
	for _, a := range appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
