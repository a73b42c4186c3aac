package version

// VersionRecord is a single entry of a version document.
type VersionRecord struct {
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Content []string `json:"content"`
}

// Clone returns a deep copy. A nil content list becomes an empty one so the
// record always serializes with "content": [].
func (r VersionRecord) Clone() VersionRecord {
	content := make([]string, len(r.Content))
	copy(content, r.Content)
	return VersionRecord{
		Version: r.Version,
		Date:    r.Date,
		Content: content,
	}
}

func (r VersionRecord) HasContent() bool {
	return len(r.Content) > 0
}

func CloneRecords(records []VersionRecord) []VersionRecord {
	cloned := make([]VersionRecord, len(records))
	for i, record := range records {
		cloned[i] = record.Clone()
	}
	return cloned
}
