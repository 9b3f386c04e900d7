package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/rollcall/internal/roster"
	"github.com/grovetools/rollcall/internal/session"
)

// PrintAttendanceTable prints report rows in a formatted table.
func PrintAttendanceTable(rows []roster.Row, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tFIRST SEEN\tVISITS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\n",
			row.Name, row.FirstSeen.Format(roster.TimeLayout), row.VisitCount)
	}
	w.Flush()
}

// PrintSessionsTable prints stored ledger sessions in a formatted table.
func PrintSessionsTable(infos []session.Info, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SESSION\tATTENDEES\tCREATED\tUPDATED")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			info.Name, info.Attendees,
			info.CreatedAt.Format("2006-01-02 15:04"),
			info.UpdatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}
