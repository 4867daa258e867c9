package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashtagbbq/tableside/internal/port"
)

// File keeps the whole store as a single JSON document on disk, rewritten
// after every mutation. Values are stored as strings so the file stays
// readable; every consumer writes either JSON or plain text.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

var _ port.KV = (*File)(nil)

// OpenFile loads the store at path. A missing, empty or corrupt file opens
// as an empty store rather than failing.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}

	f := &File{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}
	if len(data) == 0 {
		return f, nil
	}

	var loaded map[string]string
	if err := json.Unmarshal(data, &loaded); err == nil {
		f.values = loaded
	}

	return f, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = string(value)
	return f.flush()
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)
	return f.flush()
}

// flush writes through a temp file and renames so a crash mid-write never
// leaves a truncated store. Callers hold the mutex.
func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	temp := f.path + ".tmp"
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	if err := os.Rename(temp, f.path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}
