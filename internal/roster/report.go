package roster

import (
	"sort"
	"strings"
	"time"
)

// TimeLayout is the wall-clock format used for display and export.
const TimeLayout = "2006-01-02 15:04:05"

// visitSeparator joins multiple timestamps in the AllTimestamps column.
const visitSeparator = "; "

// Row is one attendee line of a report, sorted output of BuildReport.
type Row struct {
	Name       string      `json:"name"`
	FirstSeen  time.Time   `json:"firstSeen"`
	VisitCount int         `json:"visitCount"`
	Visits     []time.Time `json:"visits"`
}

// AllTimestamps renders every visit joined with "; " for export.
func (r Row) AllTimestamps() string {
	parts := make([]string, len(r.Visits))
	for i, ts := range r.Visits {
		parts[i] = ts.Format(TimeLayout)
	}
	return strings.Join(parts, visitSeparator)
}

// BuildReport flattens the ledger into rows ordered by name ascending. The
// ledger itself stays insertion-ordered; lexicographic order is a
// presentation choice. An empty ledger yields zero rows.
func BuildReport(l *Ledger) []Row {
	names := l.Names()
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		visits := l.Visits(name)
		rows = append(rows, Row{
			Name:       name,
			FirstSeen:  visits[0],
			VisitCount: len(visits),
			Visits:     visits,
		})
	}
	return rows
}
