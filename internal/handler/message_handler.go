/*
Package handler provides the HTTP handlers and routing setup for the Action API server.

This file contains the message endpoints: plain echo, echo with a multipart
file attachment, and echo with a base64-encoded file payload.
*/
package handler

import (
	"io"
	"net/http"

	"actionapi/internal/app/document"
	"actionapi/internal/app/message"
	"actionapi/internal/pkg/errs"
	"actionapi/internal/pkg/logx"
	"actionapi/internal/pkg/req"
	"actionapi/internal/pkg/resp"
)

// MessageWithFileInput is the JSON input for the base64 file variant.
type MessageWithFileInput struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	FileData string `json:"fileData"`
}

// MessageWithFileResponse composes the echo result with the upload result.
type MessageWithFileResponse struct {
	MessageResponse *message.Response        `json:"messageResponse"`
	FileUpload      *document.UploadResponse `json:"fileUpload"`
}

// HandleSendMessage creates an HTTP HandlerFunc that validates and echoes a
// user message.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input message.UserMessage
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result, customErr := message.Handle(input)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, result)
	}
}

// HandleSendMessageWithFile creates an HTTP HandlerFunc for the multipart
// variant: the uploaded file is saved first, then the message is validated.
// The save-before-validate order matches the deployed service: an empty
// message still leaves the file stored.
func HandleSendMessageWithFile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		fileUpload, customErr := saveFormFile(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input := message.UserMessage{
			UserID:   r.FormValue("userId"),
			Username: r.FormValue("username"),
			Message:  r.FormValue("message"),
		}

		messageResult, customErr := message.Handle(input)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result := MessageWithFileResponse{
			MessageResponse: messageResult,
			FileUpload:      fileUpload,
		}

		logx.Info("Combined message and file response",
			"username", input.Username,
			"filename", fileUpload.Filename,
		)
		resp.RespondSuccess(w, r, result)
	}
}

// HandleSendMessageWithBase64File creates an HTTP HandlerFunc for the JSON
// variant carrying the file as a base64 string. Decode+save and message
// validation share one failure scope: if either fails, nothing is reported
// as partially done.
func HandleSendMessageWithBase64File(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input MessageWithFileInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		fileUpload, customErr := deps.Store.SaveBase64(input.Filename, input.FileData)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		messageResult, customErr := message.Handle(message.UserMessage{
			UserID:   input.UserID,
			Username: input.Username,
			Message:  input.Message,
		})
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result := MessageWithFileResponse{
			MessageResponse: messageResult,
			FileUpload:      fileUpload,
		}

		logx.Info("Combined message and base64 file response",
			"username", input.Username,
			"filename", fileUpload.Filename,
		)
		resp.RespondSuccess(w, r, result)
	}
}

// saveFormFile reads the multipart "file" field and stores it under the
// client-supplied filename.
func saveFormFile(deps *AppDeps, r *http.Request) (*document.UploadResponse, *errs.CustomError) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errs.NewError(errs.ErrMissingFile)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errs.NewError(errs.ErrFileStorageFailed, err.Error())
	}

	return deps.Store.Save(header.Filename, data)
}
