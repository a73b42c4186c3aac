package events

// Op names a mutation applied to a loaded document.
type Op string

const (
	OpLoad          Op = "load"
	OpAdd           Op = "add"
	OpUpdate        Op = "update"
	OpDelete        Op = "delete"
	OpContentAdd    Op = "contentAdd"
	OpContentRemove Op = "contentRemove"
	OpContentSet    Op = "contentSet"
	OpReset         Op = "reset"
)

// DocumentChangedContext is passed to documentChanged hooks after a mutation
// has been applied and persisted.
type DocumentChangedContext struct {
	DocumentId string `json:"documentId"`
	Op         Op     `json:"op"`
	Version    string `json:"version,omitempty"`
	Affected   int    `json:"affected"`
	Records    int    `json:"records"`
}

// DocumentExportContext lets listeners observe an export before it is sent.
// Listeners may rewrite FileName.
type DocumentExportContext struct {
	DocumentId string
	FileName   string
	Size       int
}
