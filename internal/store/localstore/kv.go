package localstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// KV is the persistent key-value surface the record store writes table
// snapshots through. It mirrors the browser localStorage API the demo mode
// was originally built on: best-effort, string keys, opaque values.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MapKV is an in-memory KV for tests and throwaway demo sessions.
type MapKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMapKV() *MapKV {
	return &MapKV{data: make(map[string][]byte)}
}

func (m *MapKV) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true
}

func (m *MapKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MapKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// DirKV persists each key as a JSON file under a data directory. It is the
// server-side stand-in for browser localStorage: one file per table key,
// no locking across processes.
type DirKV struct {
	dir string
}

func NewDirKV(dir string) *DirKV {
	return &DirKV{dir: dir}
}

func (d *DirKV) path(key string) string {
	// Keys are fixed-prefix table names; strip anything path-like anyway.
	key = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '.' {
			return '_'
		}
		return r
	}, key)
	return filepath.Join(d.dir, key+".json")
}

func (d *DirKV) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (d *DirKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(d.path(key), value, 0o644)
}

func (d *DirKV) Delete(key string) error {
	err := os.Remove(d.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
