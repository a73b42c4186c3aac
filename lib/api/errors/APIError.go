package errors

// Error is the JSON body of every failed API call. Error carries the HTTP
// status code.
type Error struct {
	Message string `json:"message" example:"Document not found"`
	Error   int    `json:"error" example:"404"`
}
