package document

import "github.com/neonleaf/neonleaf-go/lib/models/version"

// UniqueVersions lists each version once, in first-seen order.
func UniqueVersions(records []version.VersionRecord) []string {
	seen := make(map[string]struct{}, len(records))
	versions := make([]string, 0, len(records))
	for _, record := range records {
		if _, ok := seen[record.Version]; ok {
			continue
		}
		seen[record.Version] = struct{}{}
		versions = append(versions, record.Version)
	}
	return versions
}

func Summarize(records []version.VersionRecord) []version.Summary {
	summaries := make([]version.Summary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, version.Summary{
			Version: record.Version,
			Date:    record.Date,
			Items:   len(record.Content),
		})
	}
	return summaries
}
