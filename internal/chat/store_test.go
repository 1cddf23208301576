package chat

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func content(t *testing.T, s string) json.RawMessage {
	t.Helper()
	if !json.Valid([]byte(s)) {
		t.Fatalf("invalid test content: %s", s)
	}
	return json.RawMessage(s)
}

func seedChats(t *testing.T, s *Store, names ...string) []Chat {
	t.Helper()
	out := make([]Chat, 0, len(names))
	for _, n := range names {
		c, err := s.InsertChat(n, false)
		if err != nil {
			t.Fatalf("insert chat %q: %v", n, err)
		}
		out = append(out, c)
	}
	return out
}

func TestNextID_MaxPlusOnePolicy(t *testing.T) {
	if got := nextID(nil); got != 1 {
		t.Fatalf("empty collection: want 1, got %d", got)
	}
	// max+1, not count+1
	if got := nextID([]int{1, 3}); got != 4 {
		t.Fatalf("ids [1,3]: want 4, got %d", got)
	}
	if got := nextID([]int{3, 1}); got != 4 {
		t.Fatalf("order must not matter: want 4, got %d", got)
	}
}

func TestNextID_ReusedAfterDeletingMax(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "a", "b", "c") // ids 1,2,3

	if err := s.DeleteChat(3); err != nil {
		t.Fatalf("delete chat 3: %v", err)
	}

	// max of the remaining ids is 2, so 3 is issued again
	c, err := s.InsertChat("d", false)
	if err != nil {
		t.Fatalf("insert chat d: %v", err)
	}
	if c.ID != 3 {
		t.Fatalf("expected reissued id 3, got %d", c.ID)
	}
}

func TestInsertChat_AssignsIDAndIndex(t *testing.T) {
	s := NewStore()
	chats := seedChats(t, s, "A", "B")

	if chats[0].ID != 1 || chats[1].ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", chats[0].ID, chats[1].ID)
	}
	if chats[0].Index != 0 || chats[1].Index != 1 {
		t.Fatalf("expected indexes 0,1 got %d,%d", chats[0].Index, chats[1].Index)
	}
	if chats[0].Shared || chats[1].Shared {
		t.Fatalf("shared must default to false")
	}
}

func TestInsertChat_MissingName(t *testing.T) {
	s := NewStore()
	_, err := s.InsertChat("", true)

	var mf *MissingFieldsError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(s.ListChats()) != 0 {
		t.Fatalf("store must be unchanged after a rejected insert")
	}
}

func TestUpdateChat_PartialIncludingFalsy(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "first", "second") // second has index 1

	shared := true
	got, err := s.UpdateChat(2, ChatPatch{Shared: &shared})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "second" || got.Index != 1 || !got.Shared {
		t.Fatalf("expected only shared to change, got %+v", got)
	}

	// explicitly-set falsy values are applied
	zero := 0
	off := false
	got, err = s.UpdateChat(2, ChatPatch{Index: &zero, Shared: &off})
	if err != nil {
		t.Fatalf("update falsy: %v", err)
	}
	if got.Index != 0 || got.Shared || got.Name != "second" {
		t.Fatalf("expected index=0 shared=false name untouched, got %+v", got)
	}
}

func TestUpdateChat_NotFound(t *testing.T) {
	s := NewStore()
	name := "x"
	_, err := s.UpdateChat(42, ChatPatch{Name: &name})

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Chat" {
		t.Fatalf("expected Chat NotFoundError, got %v", err)
	}
}

func TestDeleteChat_CascadesToMessages(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "keep", "drop")
	for _, chatID := range []int{1, 2, 1, 2} {
		if _, err := s.InsertMessage(chatID, TypeUser, "ana", content(t, `{"n":1}`)); err != nil {
			t.Fatalf("insert message: %v", err)
		}
	}

	if err := s.DeleteChat(2); err != nil {
		t.Fatalf("delete chat: %v", err)
	}

	msgs := s.ListMessages(0)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 surviving messages, got %d", len(msgs))
	}
	for _, m := range msgs {
		if m.ChatID != 1 {
			t.Fatalf("message %d should reference chat 1, got %d", m.ID, m.ChatID)
		}
	}
	if _, err := s.GetChat(2); err == nil {
		t.Fatalf("chat 2 should be gone")
	}
}

func TestDeleteChat_NotFoundLeavesStoreAlone(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "only")

	err := s.DeleteChat(9)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(s.ListChats()) != 1 {
		t.Fatalf("store mutated by failed delete")
	}
}

func TestInsertMessage_MissingFields(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "c")

	_, err := s.InsertMessage(0, "", "", nil)
	var mf *MissingFieldsError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	for _, f := range []string{"chat_id", "type", "author", "content"} {
		if !strings.Contains(err.Error(), f) {
			t.Fatalf("error %q should name field %s", err.Error(), f)
		}
	}

	// JSON null counts as absent
	_, err = s.InsertMessage(1, TypeUser, "ana", content(t, `null`))
	if !errors.As(err, &mf) {
		t.Fatalf("null content: expected MissingFieldsError, got %v", err)
	}

	if len(s.ListMessages(0)) != 0 {
		t.Fatalf("no message may be stored after a rejected insert")
	}
}

func TestInsertMessage_InvalidType(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "c")

	_, err := s.InsertMessage(1, "bogus", "ana", content(t, `{"x":1}`))
	var it *InvalidTypeError
	if !errors.As(err, &it) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "user, thinking, answer") {
		t.Fatalf("error should enumerate allowed values, got %q", err.Error())
	}
}

func TestInsertMessage_UnknownChat(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "c")

	_, err := s.InsertMessage(99, TypeUser, "ana", content(t, `{"x":1}`))
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Chat" {
		t.Fatalf("expected Chat NotFoundError, got %v", err)
	}
	if len(s.ListMessages(0)) != 0 {
		t.Fatalf("no message may be stored when the chat is missing")
	}
}

func TestUpdateMessage_RevalidatesPatch(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "a", "b")
	m, err := s.InsertMessage(1, TypeUser, "ana", content(t, `{"x":1}`))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	bad := "nonsense"
	if _, err := s.UpdateMessage(m.ID, MessagePatch{Type: &bad}); err == nil {
		t.Fatalf("expected invalid type to be rejected on update")
	}

	ghost := 77
	if _, err := s.UpdateMessage(m.ID, MessagePatch{ChatID: &ghost}); err == nil {
		t.Fatalf("expected unknown chat_id to be rejected on update")
	}

	// valid partial update: move to chat 2, keep everything else
	two := 2
	got, err := s.UpdateMessage(m.ID, MessagePatch{ChatID: &two})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ChatID != 2 || got.Type != TypeUser || got.Author != "ana" {
		t.Fatalf("unexpected message after update: %+v", got)
	}

	var nf *NotFoundError
	if _, err := s.UpdateMessage(999, MessagePatch{}); !errors.As(err, &nf) || nf.Entity != "Message" {
		t.Fatalf("expected Message NotFoundError, got %v", err)
	}
}

func TestDeleteMessage(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "c")
	m, err := s.InsertMessage(1, TypeAnswer, "bot", content(t, `{"x":1}`))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := s.DeleteMessage(m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var nf *NotFoundError
	if err := s.DeleteMessage(m.ID); !errors.As(err, &nf) || nf.Entity != "Message" {
		t.Fatalf("expected Message NotFoundError, got %v", err)
	}
}

func TestListMessages_FilterPreservesOrder(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "a", "b")
	authors := []string{"m1", "m2", "m3", "m4", "m5"}
	chatIDs := []int{1, 2, 1, 1, 2}
	for i := range authors {
		if _, err := s.InsertMessage(chatIDs[i], TypeUser, authors[i], content(t, `{"i":1}`)); err != nil {
			t.Fatalf("insert %s: %v", authors[i], err)
		}
	}

	got := s.ListMessages(1)
	if len(got) != 3 {
		t.Fatalf("expected 3 messages for chat 1, got %d", len(got))
	}
	want := []string{"m1", "m3", "m4"}
	for i, m := range got {
		if m.Author != want[i] {
			t.Fatalf("order broken at %d: want %s got %s", i, want[i], m.Author)
		}
	}

	if len(s.ListMessages(0)) != 5 {
		t.Fatalf("unfiltered list should return everything")
	}
}

func TestReplaceAllAndSnapshot(t *testing.T) {
	s := NewStore()
	seedChats(t, s, "old")

	s.ReplaceAll(
		[]Chat{{ID: 7, Index: 0, Name: "new", Shared: true}},
		[]Message{{ID: 9, ChatID: 7, Type: TypeUser, Author: "ana", Content: content(t, `{}`)}},
	)

	snap := s.Snapshot()
	if len(snap.Chats) != 1 || snap.Chats[0].ID != 7 {
		t.Fatalf("replace did not swap chats wholesale: %+v", snap.Chats)
	}
	if len(snap.Messages) != 1 || snap.Messages[0].ID != 9 {
		t.Fatalf("replace did not swap messages wholesale: %+v", snap.Messages)
	}

	// next ids follow the replaced contents
	c, err := s.InsertChat("after", false)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if c.ID != 8 {
		t.Fatalf("expected id 8 after replace, got %d", c.ID)
	}
}
