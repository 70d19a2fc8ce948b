/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application
// error code. The key is the error code (int), and the value contains the client
// detail message and HTTP status code.
//
// ErrEmptyMessage deliberately maps to HTTP 500: the deployed service has always
// reported the empty-message rejection as a server error and callers depend on
// the exact status and detail text.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Request body is not valid JSON.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process uploaded data.", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrMissingFile:           {Code: ErrMissingFile, Message: "Request is missing the file field.", Status: http.StatusBadRequest},
	ErrInvalidFilename:       {Code: ErrInvalidFilename, Message: "Invalid filename.", Status: http.StatusBadRequest},

	// 2xxx: Message Business Logic Errors
	ErrEmptyMessage: {Code: ErrEmptyMessage, Message: "Message cannot be empty.", Status: http.StatusInternalServerError},

	// 5xxx: Internal System Errors
	ErrUnknown:           {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrFileStorageFailed: {Code: ErrFileStorageFailed, Message: "File upload failed: %s", Status: http.StatusInternalServerError},
	ErrFileDecodeFailed:  {Code: ErrFileDecodeFailed, Message: "Invalid base64 file data: %s", Status: http.StatusInternalServerError},
}
