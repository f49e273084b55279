// Package dockedit is the interactive editor for the dock entry list.
package dockedit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/broomlabs/wloverview/internal/dock"
	"github.com/broomlabs/wloverview/internal/ipc"
)

// Store reads and writes the dock entry list file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the current entry list. Missing or broken files start the
// editor empty, same as the overlay treats them.
func (s *Store) Load() []dock.Entry {
	return dock.Load(s.path)
}

// Save writes the entry list atomically: full marshal to a temp file in the
// same directory, then rename over the target.
func (s *Store) Save(entries []dock.Entry) error {
	if entries == nil {
		entries = []dock.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal dock entries: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace dock config: %w", err)
	}
	return nil
}

// NotifyReload asks a running daemon to reread the dock file. The daemon
// not running is not an error.
func NotifyReload() {
	_ = ipc.NewClient().Reload()
}

// Move swaps the entry at index with its neighbor in the given direction
// (-1 up, +1 down) and returns the new index. Out-of-range moves are no-ops.
func Move(entries []dock.Entry, index, direction int) int {
	target := index + direction
	if index < 0 || index >= len(entries) || target < 0 || target >= len(entries) {
		return index
	}
	entries[index], entries[target] = entries[target], entries[index]
	return target
}

// Delete removes the entry at index, preserving order.
func Delete(entries []dock.Entry, index int) []dock.Entry {
	if index < 0 || index >= len(entries) {
		return entries
	}
	return append(entries[:index], entries[index+1:]...)
}
