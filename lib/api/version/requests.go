package version

import "github.com/neonleaf/neonleaf-go/lib/models/version"

// AddRecordRequest is the body of POST /versions. AtStart puts the record at
// the top of the document instead of the end.
type AddRecordRequest struct {
	Version string   `json:"version" validate:"required"`
	Date    string   `json:"date" validate:"required"`
	Content []string `json:"content"`
	AtStart bool     `json:"atStart"`
}

func (r AddRecordRequest) Record() version.VersionRecord {
	return version.VersionRecord{Version: r.Version, Date: r.Date, Content: nonNil(r.Content)}
}

// UpdateRecordRequest is the body of PUT /versions/:version. The key comes
// from the path. An empty date clears the stored one.
type UpdateRecordRequest struct {
	Date    string   `json:"date"`
	Content []string `json:"content"`
}

func (r UpdateRecordRequest) Record(key string) version.VersionRecord {
	return version.VersionRecord{Version: key, Date: r.Date, Content: nonNil(r.Content)}
}

type ContentItemRequest struct {
	Text string `json:"text"`
}

type AddRecordResponse struct {
	Count int `json:"count"`
}

type UpdateRecordResponse struct {
	Replaced int `json:"replaced"`
}

type DeleteRecordResponse struct {
	Removed int `json:"removed"`
}

func nonNil(content []string) []string {
	if content == nil {
		return []string{}
	}
	return content
}
