package testutils

import (
	"encoding/json"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

// GenerateVersionRecord returns a record with a random semver-ish version, a
// YYYY-MM-DD date and zero to four content items.
func GenerateVersionRecord() version.VersionRecord {
	items := gofakeit.IntRange(0, 4)
	content := make([]string, 0, items)
	for i := 0; i < items; i++ {
		content = append(content, gofakeit.Sentence(6))
	}
	return version.VersionRecord{
		Version: fmt.Sprintf("v%d.%d.%d", gofakeit.IntRange(0, 9), gofakeit.IntRange(0, 20), gofakeit.IntRange(0, 50)),
		Date:    gofakeit.Date().Format("2006-01-02"),
		Content: content,
	}
}

func GenerateVersionRecords(count int) []version.VersionRecord {
	records := make([]version.VersionRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, GenerateVersionRecord())
	}
	return records
}

// NumberedRecords returns v1..vN dated one day apart in January 2025, every
// even-numbered record carrying one content item.
func NumberedRecords(count int) []version.VersionRecord {
	records := make([]version.VersionRecord, 0, count)
	for i := 1; i <= count; i++ {
		content := []string{}
		if i%2 == 0 {
			content = append(content, fmt.Sprintf("change %d", i))
		}
		records = append(records, version.VersionRecord{
			Version: fmt.Sprintf("v%d", i),
			Date:    fmt.Sprintf("2025-01-%02d", i),
			Content: content,
		})
	}
	return records
}

func NewDocument(name string, records []version.VersionRecord) version.Document {
	return version.Document{Name: name, Records: records}
}

// VersionsJSON renders records the way an uploaded file would look.
func VersionsJSON(records []version.VersionRecord) string {
	out, err := json.Marshal(records)
	if err != nil {
		panic(err)
	}
	return string(out)
}
