package exception

import "fmt"

type DocumentNotFoundError struct {
	*AppError
	DocumentId string
}

func NewDocumentNotFoundError(documentId string) *DocumentNotFoundError {
	return &DocumentNotFoundError{
		AppError: &AppError{
			Code:    "DOCUMENT_NOT_FOUND",
			Message: fmt.Sprintf("document with id '%s' does not exist", documentId),
		},
		DocumentId: documentId,
	}
}

// RecordNotFoundError is returned by record-scoped operations (content
// editing) when no record carries the requested version.
type RecordNotFoundError struct {
	*AppError
	DocumentId string
	Version    string
}

func NewRecordNotFoundError(documentId, version string) *RecordNotFoundError {
	return &RecordNotFoundError{
		AppError: &AppError{
			Code:    "RECORD_NOT_FOUND",
			Message: fmt.Sprintf("document '%s' has no version '%s'", documentId, version),
		},
		DocumentId: documentId,
		Version:    version,
	}
}
