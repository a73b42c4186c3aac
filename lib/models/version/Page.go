package version

// Page is one slice of a filtered record view.
type Page struct {
	Items      []VersionRecord `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
	Total      int             `json:"total"`
}

// Summary is the per-record line shown in the version sidebar.
type Summary struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Items   int    `json:"items"`
}
