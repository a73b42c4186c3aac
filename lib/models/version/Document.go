package version

// Document is the loaded version list together with the name of the file it
// came from. Records keep insertion order.
type Document struct {
	Name    string
	Records []VersionRecord
}

// WithRecords returns a new Document with the same name and the given records.
func (d Document) WithRecords(records []VersionRecord) Document {
	return Document{
		Name:    d.Name,
		Records: records,
	}
}

func (d Document) Clone() Document {
	return d.WithRecords(CloneRecords(d.Records))
}

func (d Document) Len() int {
	return len(d.Records)
}
