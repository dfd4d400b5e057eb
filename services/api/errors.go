package apisvc

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// server messages end up in user facing notifications: keep text only
var textPolicy = bluemonday.StrictPolicy()

// Error is a non 2xx response.
type Error struct {
	Status    int
	Message   string // the server's explanation, "" when it gave none
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

func (e *Error) ServerMessage() string { return e.Message }

func newError(status int, reqID string, body []byte) *Error {
	return &Error{
		Status:    status,
		Message:   extractMessage(body),
		RequestID: reqID,
	}
}

// extractMessage reads the "error" (or "message") string of a JSON error body.
func extractMessage(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg = sanitize(msg); msg != "" {
			return msg
		}
	}
	return ""
}

func sanitize(msg string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(msg)))
}
