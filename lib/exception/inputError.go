package exception

import "fmt"

// ParseError reports input text that is not JSON at all.
type ParseError struct {
	*AppError
}

func NewParseError(cause error) *ParseError {
	return &ParseError{
		AppError: &AppError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse JSON file",
			Cause:   cause,
		},
	}
}

// SchemaError reports valid JSON of the wrong shape. Index is the offending
// array element, or -1 when the top-level value itself is wrong.
type SchemaError struct {
	*AppError
	Index int
	Field string
}

func NewSchemaError(index int, field string, reason string) *SchemaError {
	message := "Invalid JSON structure. Expected array of {version, date, content}"
	if index >= 0 {
		message = fmt.Sprintf("%s: element %d: %s", message, index, reason)
	} else if reason != "" {
		message = fmt.Sprintf("%s: %s", message, reason)
	}
	return &SchemaError{
		AppError: &AppError{
			Code:    "SCHEMA_ERROR",
			Message: message,
		},
		Index: index,
		Field: field,
	}
}

// RequiredFieldError reports an add without version or date.
type RequiredFieldError struct {
	*AppError
	Field string
}

func NewRequiredFieldError(field string) *RequiredFieldError {
	var label string
	switch field {
	case "version":
		label = "Version"
	case "date":
		label = "Date"
	default:
		label = field
	}
	return &RequiredFieldError{
		AppError: &AppError{
			Code:    "REQUIRED_FIELD",
			Message: label + " is required",
		},
		Field: field,
	}
}
