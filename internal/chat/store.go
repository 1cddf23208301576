package chat

import (
	"bytes"
	"encoding/json"
	"sync"
)

// Store holds the chat and message sequences for the lifetime of the
// process. It owns all mutation; handlers get a single instance injected.
// Every operation takes the mutex for its whole read-modify-write so that
// concurrent requests never observe a half-applied mutation or share an
// assigned id.
type Store struct {
	mu       sync.Mutex
	chats    []Chat
	messages []Message
}

func NewStore() *Store {
	return &Store{}
}

// nextID returns 1 for an empty collection, else max(ids)+1. This is the
// historical id policy, not a monotonic counter: deleting the record with
// the highest id makes that id available again for the next insert. Kept
// as-is for behavioral compatibility.
func nextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func (s *Store) nextChatIDLocked() int {
	ids := make([]int, len(s.chats))
	for i, c := range s.chats {
		ids[i] = c.ID
	}
	return nextID(ids)
}

func (s *Store) nextMessageIDLocked() int {
	ids := make([]int, len(s.messages))
	for i, m := range s.messages {
		ids[i] = m.ID
	}
	return nextID(ids)
}

func (s *Store) hasChatLocked(id int) bool {
	for _, c := range s.chats {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ReplaceAll swaps in new contents wholesale. Used by the seed loader; the
// previous sequences are discarded, never merged.
func (s *Store) ReplaceAll(chats []Chat, messages []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = append([]Chat(nil), chats...)
	s.messages = append([]Message(nil), messages...)
}

// Snapshot returns copies of both sequences in their current order.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Chats:    append([]Chat{}, s.chats...),
		Messages: append([]Message{}, s.messages...),
	}
}

func (s *Store) ListChats() []Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Chat{}, s.chats...)
}

func (s *Store) GetChat(id int) (Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.chats {
		if c.ID == id {
			return c, nil
		}
	}
	return Chat{}, &NotFoundError{Entity: "Chat"}
}

// InsertChat appends a new chat. Index defaults to the current chat count;
// shared defaults to the zero value passed by the caller.
func (s *Store) InsertChat(name string, shared bool) (Chat, error) {
	if name == "" {
		return Chat{}, &MissingFieldsError{Fields: []string{"name"}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := Chat{
		ID:     s.nextChatIDLocked(),
		Index:  len(s.chats),
		Name:   name,
		Shared: shared,
	}
	s.chats = append(s.chats, c)
	return c, nil
}

func (s *Store) UpdateChat(id int, patch ChatPatch) (Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chats {
		if s.chats[i].ID != id {
			continue
		}
		if patch.Index != nil {
			s.chats[i].Index = *patch.Index
		}
		if patch.Name != nil {
			s.chats[i].Name = *patch.Name
		}
		if patch.Shared != nil {
			s.chats[i].Shared = *patch.Shared
		}
		return s.chats[i], nil
	}
	return Chat{}, &NotFoundError{Entity: "Chat"}
}

// DeleteChat removes the chat and, cascading, every message referencing it.
func (s *Store) DeleteChat(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, c := range s.chats {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Entity: "Chat"}
	}
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.ChatID != id {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	s.chats = append(s.chats[:idx], s.chats[idx+1:]...)
	return nil
}

// ListMessages returns all messages, or only those referencing chatID when
// chatID > 0, preserving insertion order.
func (s *Store) ListMessages(chatID int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if chatID <= 0 {
		return append([]Message{}, s.messages...)
	}
	out := []Message{}
	for _, m := range s.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) GetMessage(id int) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return Message{}, &NotFoundError{Entity: "Message"}
}

// contentPresent treats absent and JSON null the same way the original
// presence check treated falsy values.
func contentPresent(content json.RawMessage) bool {
	return len(content) > 0 && !bytes.Equal(bytes.TrimSpace(content), []byte("null"))
}

// InsertMessage validates presence of all fields, the type against the
// closed set, and that chat_id references an existing chat, then appends.
func (s *Store) InsertMessage(chatID int, typ, author string, content json.RawMessage) (Message, error) {
	var missing []string
	if chatID == 0 {
		missing = append(missing, "chat_id")
	}
	if typ == "" {
		missing = append(missing, "type")
	}
	if author == "" {
		missing = append(missing, "author")
	}
	if !contentPresent(content) {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return Message{}, &MissingFieldsError{Fields: missing}
	}
	if !validType(typ) {
		return Message{}, &InvalidTypeError{Type: typ}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasChatLocked(chatID) {
		return Message{}, &NotFoundError{Entity: "Chat"}
	}
	m := Message{
		ID:      s.nextMessageIDLocked(),
		ChatID:  chatID,
		Type:    typ,
		Author:  author,
		Content: content,
	}
	s.messages = append(s.messages, m)
	return m, nil
}

func (s *Store) UpdateMessage(id int, patch MessagePatch) (Message, error) {
	if patch.Type != nil && !validType(*patch.Type) {
		return Message{}, &InvalidTypeError{Type: *patch.Type}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		if patch.ChatID != nil {
			if !s.hasChatLocked(*patch.ChatID) {
				return Message{}, &NotFoundError{Entity: "Chat"}
			}
			s.messages[i].ChatID = *patch.ChatID
		}
		if patch.Type != nil {
			s.messages[i].Type = *patch.Type
		}
		if patch.Author != nil {
			s.messages[i].Author = *patch.Author
		}
		if patch.Content != nil {
			s.messages[i].Content = *patch.Content
		}
		return s.messages[i], nil
	}
	return Message{}, &NotFoundError{Entity: "Message"}
}

func (s *Store) DeleteMessage(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Entity: "Message"}
}
