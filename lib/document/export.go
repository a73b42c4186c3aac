package document

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

const exportSuffix = "_edited.json"

// Serialize renders the records, and nothing else, as JSON indented with two
// spaces. HTML characters are not escaped, which keeps the output close to a
// browser's JSON.stringify. U+2028 and U+2029 are still escaped and invalid
// UTF-8 becomes U+FFFD. A nil content list is written as [].
func Serialize(doc version.Document) (string, error) {
	records := version.CloneRecords(doc.Records)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ExportFileName turns "release.json" into "release_edited.json".
func ExportFileName(name string) string {
	base := strings.TrimSuffix(name, ".json")
	if base == "" {
		base = "versions"
	}
	return base + exportSuffix
}
