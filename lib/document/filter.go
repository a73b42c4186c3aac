package document

import (
	"strings"

	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

// Matches reports whether record passes every active predicate of spec.
func Matches(record version.VersionRecord, spec version.FilterSpec) bool {
	if spec.Search != "" && !strings.Contains(strings.ToLower(record.Version), strings.ToLower(spec.Search)) {
		return false
	}
	if spec.SelectedVersion != "" && record.Version != spec.SelectedVersion {
		return false
	}
	// Plain string comparison; only date-correct for YYYY-MM-DD.
	if spec.DateFrom != "" && record.Date < spec.DateFrom {
		return false
	}
	if spec.DateTo != "" && record.Date > spec.DateTo {
		return false
	}
	switch spec.HasContent {
	case version.HasContentYes:
		if !record.HasContent() {
			return false
		}
	case version.HasContentNo:
		if record.HasContent() {
			return false
		}
	}
	return true
}

// Filter returns the records passing spec, in input order.
func Filter(records []version.VersionRecord, spec version.FilterSpec) []version.VersionRecord {
	filtered := make([]version.VersionRecord, 0, len(records))
	for _, record := range records {
		if Matches(record, spec) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
