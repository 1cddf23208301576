package chat

import (
	"fmt"
	"strings"
)

// NotFoundError reports a lookup of a chat or message id that does not
// exist, including a create/update referencing a missing chat.
type NotFoundError struct {
	Entity string // "Chat" or "Message"
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// MissingFieldsError reports required fields that were absent (or falsy)
// at creation time.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	if len(e.Fields) == 1 {
		return "missing required field: " + e.Fields[0]
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidTypeError reports a message type outside the closed set.
type InvalidTypeError struct {
	Type string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid message type %q: must be one of %s", e.Type, strings.Join(MessageTypes, ", "))
}
