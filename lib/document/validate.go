package document

import (
	"encoding/json"

	"github.com/neonleaf/neonleaf-go/lib/exception"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

// Parse decodes raw upload text and validates its shape. Text that is not JSON
// fails with a ParseError, JSON of the wrong shape with a SchemaError.
func Parse(text string) ([]version.VersionRecord, error) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, exception.NewParseError(err)
	}
	return Validate(raw)
}

// Validate checks that raw is an array of objects carrying string "version",
// string "date" and a string array "content". Unknown keys are ignored and no
// value checks (uniqueness, emptiness, date format) are made.
func Validate(raw any) ([]version.VersionRecord, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, exception.NewSchemaError(-1, "", "expected an array")
	}

	records := make([]version.VersionRecord, 0, len(items))
	for i, item := range items {
		record, err := validateRecord(i, item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func validateRecord(index int, item any) (version.VersionRecord, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return version.VersionRecord{}, exception.NewSchemaError(index, "", "expected an object")
	}

	versionValue, err := requireString(index, obj, "version")
	if err != nil {
		return version.VersionRecord{}, err
	}
	dateValue, err := requireString(index, obj, "date")
	if err != nil {
		return version.VersionRecord{}, err
	}

	rawContent, ok := obj["content"]
	if !ok {
		return version.VersionRecord{}, exception.NewSchemaError(index, "content", "missing key content")
	}
	contentItems, ok := rawContent.([]any)
	if !ok {
		return version.VersionRecord{}, exception.NewSchemaError(index, "content", "content must be an array")
	}
	content := make([]string, 0, len(contentItems))
	for _, c := range contentItems {
		text, ok := c.(string)
		if !ok {
			return version.VersionRecord{}, exception.NewSchemaError(index, "content", "content items must be strings")
		}
		content = append(content, text)
	}

	return version.VersionRecord{
		Version: versionValue,
		Date:    dateValue,
		Content: content,
	}, nil
}

func requireString(index int, obj map[string]any, key string) (string, error) {
	value, ok := obj[key]
	if !ok {
		return "", exception.NewSchemaError(index, key, "missing key "+key)
	}
	text, ok := value.(string)
	if !ok {
		return "", exception.NewSchemaError(index, key, key+" must be a string")
	}
	return text, nil
}
