/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific request-handling and business errors both
internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse multipart or URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrMissingFile indicates that a multipart request did not carry the expected file field.
	ErrMissingFile = 1007

	// ErrInvalidFilename indicates that an uploaded filename was empty or attempted
	// to escape the upload directory.
	ErrInvalidFilename = 1008
)

// 2xxx: Message Business Logic Errors
const (
	// ErrEmptyMessage indicates that the message content was empty after trimming whitespace.
	ErrEmptyMessage = 2001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrFileStorageFailed indicates an I/O failure while writing an uploaded file.
	ErrFileStorageFailed = 5001

	// ErrFileDecodeFailed indicates that a base64 file payload could not be decoded.
	ErrFileDecodeFailed = 5002
)
