package exception

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewParseError(errors.New("unexpected end of JSON input")))

	var parseErr *ParseError
	require.True(t, errors.As(wrapped, &parseErr))
	require.Equal(t, "PARSE_ERROR", parseErr.Code)
	require.Contains(t, wrapped.Error(), "unexpected end of JSON input")

	var schemaErr *SchemaError
	require.False(t, errors.As(wrapped, &schemaErr))
}

func TestSchemaErrorMessage(t *testing.T) {
	err := NewSchemaError(2, "date", "date must be a string")
	require.Equal(t, 2, err.Index)
	require.Equal(t, "date", err.Field)
	require.Contains(t, err.Error(), "element 2")

	top := NewSchemaError(-1, "", "expected an array")
	require.Contains(t, top.Error(), "expected an array")
	require.NotContains(t, top.Error(), "element")
}

func TestRequiredFieldMessage(t *testing.T) {
	require.Equal(t, "Version is required", NewRequiredFieldError("version").Error())
	require.Equal(t, "Date is required", NewRequiredFieldError("date").Error())
}

func TestDatabaseErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError("could not save document", cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "could not save document: disk full", err.Error())
}
