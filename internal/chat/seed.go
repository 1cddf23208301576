package chat

import (
	"encoding/json"
	"os"
)

// SeedFile is the on-disk seed document.
type SeedFile struct {
	Chats    []Chat    `json:"chats"`
	Messages []Message `json:"messages"`
}

// SeedLoader populates a Store from a JSON document at a fixed path.
type SeedLoader struct {
	path string
}

func NewSeedLoader(path string) *SeedLoader {
	return &SeedLoader{path: path}
}

func (l *SeedLoader) Path() string { return l.path }

// Load reads the seed document and replaces the store's contents wholesale.
// On any failure (missing file, malformed JSON) the store is left untouched
// and the error is returned for the caller to log; reset and startup both
// treat a failed load as a no-op.
func (l *SeedLoader) Load(s *Store) error {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return err
	}
	var f SeedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return err
	}
	s.ReplaceAll(f.Chats, f.Messages)
	return nil
}
