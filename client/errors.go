package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	Route   string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Route, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Route, e.Code)
}

// the extension routes answer failures with {"error": "..."}
func newStatusError(route string, code int, body []byte) *StatusError {
	e := &StatusError{Route: route, Code: code}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		e.Message = payload.Error
	} else {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}

// IsStatus reports whether err is a *StatusError carrying code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
