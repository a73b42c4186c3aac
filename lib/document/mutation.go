package document

import (
	"strings"

	"github.com/neonleaf/neonleaf-go/lib/exception"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

// Add inserts record at the start or the end of the document. Version (ignoring
// surrounding whitespace) and date are required; on failure doc is returned
// unchanged with a RequiredFieldError. Duplicate versions are accepted.
func Add(doc version.Document, record version.VersionRecord, atStart bool) (version.Document, error) {
	if strings.TrimSpace(record.Version) == "" {
		return doc, exception.NewRequiredFieldError("version")
	}
	if record.Date == "" {
		return doc, exception.NewRequiredFieldError("date")
	}

	records := make([]version.VersionRecord, 0, len(doc.Records)+1)
	if atStart {
		records = append(records, record.Clone())
		records = append(records, doc.Records...)
	} else {
		records = append(records, doc.Records...)
		records = append(records, record.Clone())
	}
	return doc.WithRecords(records), nil
}

// Update replaces every record whose version equals record.Version and
// returns how many were replaced. With duplicate keys all of them change.
func Update(doc version.Document, record version.VersionRecord) (version.Document, int) {
	records := make([]version.VersionRecord, len(doc.Records))
	replaced := 0
	for i, existing := range doc.Records {
		if existing.Version == record.Version {
			records[i] = record.Clone()
			replaced++
			continue
		}
		records[i] = existing
	}
	return doc.WithRecords(records), replaced
}

// Delete removes every record whose version equals key and returns how many
// were removed.
func Delete(doc version.Document, key string) (version.Document, int) {
	records := make([]version.VersionRecord, 0, len(doc.Records))
	for _, existing := range doc.Records {
		if existing.Version == key {
			continue
		}
		records = append(records, existing)
	}
	return doc.WithRecords(records), len(doc.Records) - len(records)
}

// Find returns the first record with the given version.
func Find(doc version.Document, key string) (version.VersionRecord, bool) {
	for _, existing := range doc.Records {
		if existing.Version == key {
			return existing.Clone(), true
		}
	}
	return version.VersionRecord{}, false
}
