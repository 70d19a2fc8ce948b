/*
Package resp provides helper functions for constructing and sending HTTP JSON responses.

Success responses serialize the handler's payload directly; error responses use
a {"detail": "..."} envelope carrying the client-facing error message.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"actionapi/internal/pkg/errs"
	"actionapi/internal/pkg/logx"
)

// ErrorResponse is the JSON envelope returned to clients for every failed request.
type ErrorResponse struct {
	// Detail is the client-facing error description.
	Detail string `json:"detail"`
}

// RespondJSON sets the JSON content type and sends the payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondSuccess sends the payload as-is with HTTP 200 OK.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, data)
}

// RespondError sends the error's detail message with its HTTP status code.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, ErrorResponse{Detail: customErr.Message})
}
