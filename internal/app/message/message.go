/*
Package message implements the message echo service.

It validates incoming user messages and constructs the echo response that the
API returns as its placeholder business action.
*/
package message

import (
	"fmt"
	"strings"

	"actionapi/internal/pkg/errs"
	"actionapi/internal/pkg/logx"
)

// UserMessage is a message submitted by a user. It is request-scoped and
// never persisted.
type UserMessage struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Response echoes the submitted message back, annotated with a fixed prefix.
type Response struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
	Response string `json:"response"`
}

// Handle validates the message and builds the echo response.
// A message that is empty after trimming whitespace is rejected with
// ErrEmptyMessage; the original message text is echoed untrimmed.
func Handle(msg UserMessage) (*Response, *errs.CustomError) {
	if strings.TrimSpace(msg.Message) == "" {
		return nil, errs.NewError(errs.ErrEmptyMessage)
	}

	result := &Response{
		UserID:   msg.UserID,
		Username: msg.Username,
		Message:  msg.Message,
		Response: fmt.Sprintf("Echo to %s: %s", msg.Username, msg.Message),
	}

	logx.Info("Message handler output",
		"user_id", result.UserID,
		"username", result.Username,
		"response", result.Response,
	)

	return result, nil
}
