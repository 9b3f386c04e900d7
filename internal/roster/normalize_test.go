package roster

import (
	"reflect"
	"testing"
)

func TestNormalize_FiltersBlankAndShortLines(t *testing.T) {
	raw := "Alice\n\n  \nX\nBob Smith\n\tCarol\t\nY"

	got := Normalize(raw, NormalizeOptions{})

	want := []string{"Alice", "Bob Smith", "Carol"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_DeduplicatesPreservingFirstSeenOrder(t *testing.T) {
	raw := "Carol\nAlice\nCarol\nBob\nAlice"

	got := Normalize(raw, NormalizeOptions{})

	want := []string{"Carol", "Alice", "Bob"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize("", NormalizeOptions{}); len(got) != 0 {
		t.Errorf("expected no names for empty input, got %v", got)
	}
	if got := Normalize("\n\n\n", NormalizeOptions{}); len(got) != 0 {
		t.Errorf("expected no names for blank input, got %v", got)
	}
}

func TestNormalize_MinLengthCountsRunes(t *testing.T) {
	// Two-rune Japanese names must pass the default minimum even though
	// they are six bytes long.
	got := Normalize("花子\n山\n", NormalizeOptions{})

	want := []string{"花子"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_StripsRoleSuffixes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"山田太郎 (ホスト)", "山田太郎"},
		{"山田太郎（自分）", "山田太郎"},
		{"John Smith (Host)", "John Smith"},
		{"John Smith (me)", "John Smith"},
		{"John Smith (Co-host)", "John Smith"},
		{"Dana Lee (host, me)", "Dana Lee"},
		{"Dana Lee (host) (me)", "Dana Lee"},
		{"Parenthetical (but not a role)", "Parenthetical (but not a role)"},
	}
	for _, tc := range cases {
		got := Normalize(tc.in, NormalizeOptions{})
		if len(got) != 1 || got[0] != tc.want {
			t.Errorf("Normalize(%q) = %v, want [%q]", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_KeepRoleSuffixes(t *testing.T) {
	got := Normalize("John Smith (Host)", NormalizeOptions{KeepRoleSuffixes: true})

	want := []string{"John Smith (Host)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_SuffixStripCollapsesDuplicates(t *testing.T) {
	// Stripping "(host)" can make two raw lines identical; only the first
	// survives.
	got := Normalize("Alice (host)\nAlice", NormalizeOptions{})

	want := []string{"Alice"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_CustomMinLength(t *testing.T) {
	got := Normalize("Al\nBob\nCarol", NormalizeOptions{MinLength: 4})

	want := []string{"Carol"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}
