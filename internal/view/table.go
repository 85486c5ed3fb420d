package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jwalitptl/patient-portal/internal/model"
)

// Named display targets for the overview section.
const (
	TargetPendingTable  = "pendingTable"
	TargetApprovedTable = "approvedTable"
	TargetBookedTable   = "bookedTable"
)

// EmptyTableMessage is the single placeholder row shown for an empty view.
const EmptyTableMessage = "No appointments found"

// Row is one rendered appointment. Every value derives from the appointment
// record alone; there is no cross-record state.
type Row struct {
	AppointmentID   string
	AppointmentDate string
	Reason          string
	FirstName       string
	ContactNo       string
	Email           string
	Age             int
	DateOfBirth     string
}

// Table is the typed rendering of one display target.
type Table struct {
	Target      string
	ShowActions bool
	Rows        []Row
}

// RenderTable builds the typed table for a display target. When showActions is
// set each row carries reschedule/cancel controls; otherwise the actions
// column renders as a dash.
func RenderTable(target string, appointments []model.Appointment, showActions bool) Table {
	t := Table{Target: target, ShowActions: showActions}
	for _, a := range appointments {
		t.Rows = append(t.Rows, Row{
			AppointmentID:   a.ID,
			AppointmentDate: FormatDate(a.AppointmentDate),
			Reason:          a.Reason,
			FirstName:       a.FirstName,
			ContactNo:       a.ContactNo,
			Email:           a.Email,
			Age:             a.Age,
			DateOfBirth:     FormatDate(a.DateOfBirth),
		})
	}
	return t
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

var tableTmpl = template.Must(template.New("table").Parse(strings.TrimSpace(`
{{- if .Empty -}}
<tr><td colspan="8" class="empty-state">{{.Message}}</td></tr>
{{- else -}}
{{- range .Rows}}
<tr>
<td>{{.AppointmentDate}}</td>
<td>{{.Reason}}</td>
<td>{{.FirstName}}</td>
<td>{{.ContactNo}}</td>
<td>{{.Email}}</td>
<td>{{.Age}}</td>
<td>{{.DateOfBirth}}</td>
{{- if $.ShowActions}}
<td class="action-buttons">
<button class="btn-action btn-reschedule" data-appointment-id="{{.AppointmentID}}" title="Reschedule">Reschedule</button>
<button class="btn-action btn-cancel" data-appointment-id="{{.AppointmentID}}" title="Cancel">Cancel</button>
</td>
{{- else}}
<td>-</td>
{{- end}}
</tr>
{{- end}}
{{- end -}}
`)))

// HTML renders the table body rows. Values pass through html/template so
// record contents are always escaped.
func (t Table) HTML() (string, error) {
	var sb strings.Builder
	data := struct {
		Table
		Message string
	}{Table: t, Message: EmptyTableMessage}

	if err := tableTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render table %q: %w", t.Target, err)
	}
	return sb.String(), nil
}
