package roster

import (
	"regexp"
	"strings"
)

// DefaultMinNameLength rejects single-character OCR noise.
const DefaultMinNameLength = 2

// Trailing role annotations that extraction services are asked to remove but
// sometimes leave behind, e.g. "山田太郎 (ホスト)" or "John Smith (Host, me)".
var roleSuffixPattern = regexp.MustCompile(`(?i)\s*[（(]\s*(?:ホスト|自分|共同ホスト|ゲスト|host|co-?host|me|guest)(?:\s*[,、]\s*(?:ホスト|自分|共同ホスト|ゲスト|host|co-?host|me|guest))*\s*[)）]$`)

// NormalizeOptions controls how raw extraction output is cleaned.
type NormalizeOptions struct {
	// MinLength is the minimum rune count for a name to be kept.
	// Zero means DefaultMinNameLength.
	MinLength int

	// KeepRoleSuffixes disables the local trailing-annotation strip,
	// reproducing the behavior of trusting the extraction prompt alone.
	KeepRoleSuffixes bool
}

// Normalize splits raw extraction output into an ordered list of unique
// candidate names. Lines are trimmed; empty lines and lines shorter than the
// minimum length are dropped; duplicates keep their first position.
func Normalize(raw string, opts NormalizeOptions) []string {
	minLen := opts.MinLength
	if minLen <= 0 {
		minLen = DefaultMinNameLength
	}

	seen := make(map[string]bool)
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(line)
		if !opts.KeepRoleSuffixes {
			name = stripRoleSuffix(name)
		}
		if name == "" || len([]rune(name)) < minLen {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func stripRoleSuffix(name string) string {
	for {
		stripped := roleSuffixPattern.ReplaceAllString(name, "")
		if stripped == name {
			return name
		}
		name = strings.TrimSpace(stripped)
	}
}
