package players

import (
	"encoding/json"
	"fmt"
	"os"

	"match-canon/feature/canon"
)

// Entry is one record of a players file.
type Entry struct {
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
}

// LoadFile reads a players file. Entries need both fields; a nickname may appear once.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read players file: %w", err)
	}
	return ParseEntries(data)
}

// ParseEntries decodes and validates the content of a players file.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse players file: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Nickname == "" || e.Name == "" {
			return nil, fmt.Errorf("players entry %d: nickname and name are required", i)
		}
		if _, dup := seen[e.Nickname]; dup {
			return nil, fmt.Errorf("players entry %d: duplicate nickname %q", i, e.Nickname)
		}
		seen[e.Nickname] = struct{}{}
	}
	return entries, nil
}

// FileResolver resolves nicknames from an in-memory copy of a players file.
// It is read-only after construction and safe for concurrent use.
type FileResolver struct {
	names map[string]string
}

// NewFileResolver indexes entries by nickname.
func NewFileResolver(entries []Entry) *FileResolver {
	names := make(map[string]string, len(entries))
	for _, e := range entries {
		names[e.Nickname] = e.Name
	}
	return &FileResolver{names: names}
}

// Resolve implements canon.Resolver.
func (r *FileResolver) Resolve(nickname string) (string, error) {
	name, ok := r.names[nickname]
	if !ok {
		return "", fmt.Errorf("%q: %w", nickname, canon.ErrUnknownPlayer)
	}
	return name, nil
}

// Len returns the number of known nicknames.
func (r *FileResolver) Len() int {
	return len(r.names)
}
