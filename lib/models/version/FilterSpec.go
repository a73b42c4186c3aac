package version

import (
	"fmt"
	"strings"
)

type HasContentFilter int

const (
	HasContentUnset HasContentFilter = iota
	HasContentYes
	HasContentNo
)

// ParseHasContent accepts the values the sidebar select sends ("all", "yes",
// "no") as well as plain booleans.
func ParseHasContent(s string) (HasContentFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return HasContentUnset, nil
	case "yes", "true":
		return HasContentYes, nil
	case "no", "false", "empty":
		return HasContentNo, nil
	default:
		return HasContentUnset, fmt.Errorf("unknown hasContent value: %q", s)
	}
}

func (h HasContentFilter) String() string {
	switch h {
	case HasContentYes:
		return "yes"
	case HasContentNo:
		return "no"
	default:
		return "all"
	}
}

// FilterSpec holds the active filter predicates. Zero values are inactive.
type FilterSpec struct {
	Search          string
	SelectedVersion string
	DateFrom        string
	DateTo          string
	HasContent      HasContentFilter
}

func (f FilterSpec) IsEmpty() bool {
	return f == FilterSpec{}
}
