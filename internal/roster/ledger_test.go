package roster

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

var (
	t1 = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	t2 = time.Date(2026, 3, 9, 10, 15, 0, 0, time.UTC)
)

func TestLedger_MergeNewCount(t *testing.T) {
	l := NewLedger()

	if got := l.Merge([]string{"Alice", "Bob"}, t1); got != 2 {
		t.Errorf("first merge newCount = %d, want 2", got)
	}
	if got := l.Merge([]string{"Bob", "Carol"}, t2); got != 1 {
		t.Errorf("second merge newCount = %d, want 1", got)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestLedger_MergeAppendsVisitPerSubmission(t *testing.T) {
	l := NewLedger()
	names := []string{"Alice", "Bob"}

	l.Merge(names, t1)
	newCount := l.Merge(names, t2)

	if newCount != 0 {
		t.Errorf("second merge newCount = %d, want 0", newCount)
	}
	for _, name := range names {
		visits := l.Visits(name)
		want := []time.Time{t1, t2}
		if !reflect.DeepEqual(visits, want) {
			t.Errorf("Visits(%q) = %v, want %v", name, visits, want)
		}
	}
}

func TestLedger_MergeSharesOneTimestampPerBatch(t *testing.T) {
	l := NewLedger()
	l.Merge([]string{"Alice", "Bob", "Carol"}, t1)

	for _, name := range l.Names() {
		visits := l.Visits(name)
		if len(visits) != 1 || !visits[0].Equal(t1) {
			t.Errorf("Visits(%q) = %v, want [%v]", name, visits, t1)
		}
	}
}

func TestLedger_NamesKeepInsertionOrder(t *testing.T) {
	l := NewLedger()
	l.Merge([]string{"Carol"}, t1)
	l.Merge([]string{"Alice", "Bob"}, t2)

	want := []string{"Carol", "Alice", "Bob"}
	if got := l.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLedger_Clear(t *testing.T) {
	l := NewLedger()
	l.Merge([]string{"Alice", "Bob"}, t1)

	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	if rows := BuildReport(l); len(rows) != 0 {
		t.Errorf("BuildReport after Clear returned %d rows, want 0", len(rows))
	}

	// The cleared ledger must accept new merges.
	if got := l.Merge([]string{"Alice"}, t2); got != 1 {
		t.Errorf("merge after Clear newCount = %d, want 1", got)
	}
}

func TestLedger_JSONRoundTrip(t *testing.T) {
	l := NewLedger()
	l.Merge([]string{"Carol", "花子"}, t1)
	l.Merge([]string{"花子"}, t2)

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	restored := NewLedger()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(restored.Names(), l.Names()) {
		t.Errorf("restored names = %v, want %v", restored.Names(), l.Names())
	}
	for _, name := range l.Names() {
		if !reflect.DeepEqual(restored.Visits(name), l.Visits(name)) {
			t.Errorf("restored visits for %q = %v, want %v", name, restored.Visits(name), l.Visits(name))
		}
	}
}

func TestLedger_UnmarshalRejectsEmptyVisits(t *testing.T) {
	l := NewLedger()
	if err := json.Unmarshal([]byte(`[{"name":"Alice","visits":[]}]`), l); err == nil {
		t.Fatal("expected error for entry with no visits, got nil")
	}
}
