package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/neonleaf/neonleaf-go/lib/exception"
)

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

func NewInvalidParamError(paramName string) Error {
	return Error{
		Message: "Invalid parameter: " + paramName,
		Error:   400,
	}
}

func NewMissingParamError(paramName string) Error {
	return Error{
		Message: "Missing parameter: " + paramName,
		Error:   400,
	}
}

var DocumentNotFoundError = Error{
	Message: "Document not found",
	Error:   404,
}

var VersionNotFoundError = Error{
	Message: "Version not found",
	Error:   404,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

var DataRetrievalError = Error{
	Message: "Failed to retrieve data",
	Error:   500,
}

var UnauthorizedError = Error{
	Message: "Unauthorized access",
	Error:   401,
}

var IncorrectPasswordError = Error{
	Message: "Incorrect password",
	Error:   401,
}

var FileTooLargeError = Error{
	Message: "File exceeds the maximum upload size",
	Error:   413,
}

var UnsupportedFileError = Error{
	Message: "Please upload a JSON file",
	Error:   415,
}

var ValidationError = Error{
	Message: "Validation failed",
	Error:   422,
}

// FromException maps an editor error to its API representation. Unknown
// errors become InternalServerError.
func FromException(err error) Error {
	var parseErr *exception.ParseError
	var schemaErr *exception.SchemaError
	var requiredErr *exception.RequiredFieldError
	var documentNotFound *exception.DocumentNotFoundError
	var recordNotFound *exception.RecordNotFoundError
	var dbErr *exception.DatabaseError

	switch {
	case stderrors.As(err, &parseErr):
		return Error{Message: parseErr.Message, Error: 400}
	case stderrors.As(err, &schemaErr):
		return Error{Message: schemaErr.Message, Error: 422}
	case stderrors.As(err, &requiredErr):
		return Error{Message: requiredErr.Message, Error: 422}
	case stderrors.As(err, &documentNotFound):
		return DocumentNotFoundError
	case stderrors.As(err, &recordNotFound):
		return VersionNotFoundError
	case stderrors.As(err, &dbErr):
		return DataRetrievalError
	default:
		return InternalServerError
	}
}

// Send writes apiErr with its own status code.
func Send(c *fiber.Ctx, apiErr Error) error {
	return c.Status(apiErr.Error).JSON(apiErr)
}

// SendException maps err with FromException and writes it.
func SendException(c *fiber.Ctx, err error) error {
	return Send(c, FromException(err))
}
