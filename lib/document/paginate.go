package document

import "github.com/neonleaf/neonleaf-go/lib/models/version"

const DefaultPageSize = 5

// TotalPages is ceil(count/pageSize), and 0 for an empty view.
func TotalPages(count int, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the 1-indexed page of records. Pages past the end are empty;
// the page number is not clamped here, see ClampPage.
func Paginate(records []version.VersionRecord, pageSize int, page int) []version.VersionRecord {
	if pageSize <= 0 || page < 1 {
		return []version.VersionRecord{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []version.VersionRecord{}
	}
	end := min(start+pageSize, len(records))
	paged := make([]version.VersionRecord, end-start)
	copy(paged, records[start:end])
	return paged
}

// ClampPage moves page into [1, max(1, totalPages)].
func ClampPage(page int, totalPages int) int {
	upper := max(1, totalPages)
	if page < 1 {
		return 1
	}
	if page > upper {
		return upper
	}
	return page
}

// BuildPage filters, clamps the requested page and slices it.
func BuildPage(records []version.VersionRecord, spec version.FilterSpec, pageSize int, page int) version.Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	filtered := Filter(records, spec)
	totalPages := TotalPages(len(filtered), pageSize)
	current := ClampPage(page, totalPages)
	return version.Page{
		Items:      Paginate(filtered, pageSize, current),
		Page:       current,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      len(filtered),
	}
}
