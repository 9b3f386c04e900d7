package roster

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestBuildReport_SortsByName(t *testing.T) {
	l := NewLedger()
	l.Merge([]string{"Carol"}, t1)
	l.Merge([]string{"Alice"}, t1)
	l.Merge([]string{"Bob"}, t1)

	rows := BuildReport(l)

	want := []string{"Alice", "Bob", "Carol"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, name := range want {
		if rows[i].Name != name {
			t.Errorf("rows[%d].Name = %q, want %q", i, rows[i].Name, name)
		}
	}
}

func TestBuildReport_RowShape(t *testing.T) {
	l := NewLedger()
	l.Merge([]string{"Dana"}, t1)
	l.Merge([]string{"Dana"}, t2)

	rows := BuildReport(l)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if !row.FirstSeen.Equal(t1) {
		t.Errorf("FirstSeen = %v, want %v", row.FirstSeen, t1)
	}
	if row.VisitCount != 2 {
		t.Errorf("VisitCount = %d, want 2", row.VisitCount)
	}
	want := t1.Format(TimeLayout) + "; " + t2.Format(TimeLayout)
	if got := row.AllTimestamps(); got != want {
		t.Errorf("AllTimestamps() = %q, want %q", got, want)
	}
}

func TestBuildReport_EmptyLedger(t *testing.T) {
	rows := BuildReport(NewLedger())
	if len(rows) != 0 {
		t.Errorf("got %d rows for empty ledger, want 0", len(rows))
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	l := NewLedger()
	l.Merge([]string{"山田太郎", "Alice"}, t1)
	l.Merge([]string{"山田太郎"}, t2)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, BuildReport(l)); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("CSV output missing UTF-8 BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse exported CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if got := strings.Join(records[0], ","); got != "Name,FirstSeenTimestamp,VisitCount,AllTimestamps" {
		t.Errorf("header = %q", got)
	}

	// Recover (name, count) pairs and compare against the ledger.
	counts := map[string]string{}
	for _, rec := range records[1:] {
		counts[rec[0]] = rec[2]
	}
	if counts["Alice"] != "1" || counts["山田太郎"] != "2" {
		t.Errorf("recovered counts = %v", counts)
	}
}

func TestWriteCSV_Timestamps(t *testing.T) {
	l := NewLedger()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l.Merge([]string{"Alice"}, ts)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, BuildReport(l)); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if !strings.Contains(buf.String(), "2026-01-02 03:04:05") {
		t.Errorf("exported CSV missing formatted timestamp: %q", buf.String())
	}
}
