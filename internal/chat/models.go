package chat

import "encoding/json"

// Chat is a named conversation. Index is a display-ordering hint assigned
// at creation (current chat count); it is freely overwritable afterwards
// and never checked for uniqueness.
type Chat struct {
	ID     int    `json:"id"`
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Shared bool   `json:"shared"`
}

// Message belongs to exactly one chat via ChatID. Content is an arbitrary
// JSON value; no schema is enforced beyond presence at creation.
type Message struct {
	ID      int             `json:"id"`
	ChatID  int             `json:"chat_id"`
	Type    string          `json:"type"`
	Author  string          `json:"author"`
	Content json.RawMessage `json:"content"`
}

// Closed set of message types.
const (
	TypeUser     = "user"
	TypeThinking = "thinking"
	TypeAnswer   = "answer"
)

// MessageTypes lists the allowed values of Message.Type, in the order they
// are reported in validation errors.
var MessageTypes = []string{TypeUser, TypeThinking, TypeAnswer}

func validType(t string) bool {
	for _, v := range MessageTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ChatPatch is a partial update of a Chat. Nil fields are left untouched;
// non-nil fields are applied even when set to a zero value.
type ChatPatch struct {
	Index  *int    `json:"index"`
	Name   *string `json:"name"`
	Shared *bool   `json:"shared"`
}

// MessagePatch is a partial update of a Message, with the same nil/non-nil
// semantics as ChatPatch. A non-nil ChatID is re-validated against the
// current chats; a non-nil Type is re-validated against MessageTypes.
type MessagePatch struct {
	ChatID  *int             `json:"chat_id"`
	Type    *string          `json:"type"`
	Author  *string          `json:"author"`
	Content *json.RawMessage `json:"content"`
}

// Snapshot is a point-in-time copy of both collections.
type Snapshot struct {
	Chats    []Chat    `json:"chats"`
	Messages []Message `json:"messages"`
}
