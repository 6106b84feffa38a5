// Package store persists the room sheet in a durable key-value store.
//
// The store mirrors a browser's localStorage contract: string keys mapped to
// string values, with Get/Set/Remove. FileKV keeps every entry in a single
// JSON object file written atomically; MemoryKV backs tests.
//
// Adapter encodes rows under StorageKey and decodes them tolerantly so that
// payloads written by older versions (without the extra pairs) still load.
// Debouncer tracks the single outstanding save so rapid edits collapse into
// one write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/treykane/room-area/internal/logging"
)

var storeLog = logging.New("store")

// KV is a string key-value store.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryKV is an in-memory KV.
type MemoryKV map[string]string

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() MemoryKV {
	return MemoryKV{}
}

func (m MemoryKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m MemoryKV) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m MemoryKV) Remove(key string) error {
	delete(m, key)
	return nil
}

// FileKV stores all entries as one JSON object on disk.
type FileKV struct {
	path string
}

// NewFileKV returns a store backed by the file at path. The file and its
// directory are created on first write.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) Get(key string) (string, bool, error) {
	entries, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

func (f *FileKV) Set(key, value string) error {
	entries, err := f.read()
	if err != nil {
		// A corrupt file would otherwise block every future save.
		storeLog.Warn("replace unreadable store file", "path", f.path, "error", err)
		entries = map[string]string{}
	}
	entries[key] = value
	return f.write(entries)
}

func (f *FileKV) Remove(key string) error {
	entries, err := f.read()
	if err != nil {
		storeLog.Warn("replace unreadable store file", "path", f.path, "error", err)
		entries = map[string]string{}
	}
	if _, ok := entries[key]; !ok && err == nil {
		return nil
	}
	delete(entries, key)
	return f.write(entries)
}

func (f *FileKV) read() (map[string]string, error) {
	entries := map[string]string{}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("read store %q: %w", f.path, err)
	}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse store %q: %w", f.path, err)
	}
	return entries, nil
}

// write replaces the file via a temp file and rename so a crash never leaves
// a half-written store behind.
func (f *FileKV) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".storage-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("chmod temp store: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
