// Package persist stores small JSON documents ("items") in the per-user
// application data directory.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// ItemStore is the key → bytes capability the game persists through.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open returns the gdata-backed store for appName. When the platform storage
// cannot be opened the game still runs on an in-memory store that is lost on
// exit.
func Open(appName string, logger *log.Logger) ItemStore {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence, progress will not be saved", "err", err)
		return NewMemory()
	}
	return m
}

// LoadJSON decodes the item into v. It reports false when the item does not
// exist yet; a decode failure is returned as an error and v is left untouched.
func LoadJSON(items ItemStore, key string, v any) (bool, error) {
	data, err := items.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes v and writes it synchronously.
func SaveJSON(items ItemStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := items.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// DataDir returns (and creates) the per-user data directory for appName,
// used for files that are not gdata items: the log file and the run
// records database.
func DataDir(appName string) (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		if runtime.GOOS == "linux" || runtime.GOOS == "freebsd" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("persist: cannot find home directory: %w", err)
			}
			base = filepath.Join(home, ".local", "share")
		} else {
			dir, err := os.UserConfigDir()
			if err != nil {
				return "", fmt.Errorf("persist: cannot find data directory: %w", err)
			}
			base = dir
		}
	}

	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("persist: cannot create directory %s: %w", dir, err)
	}
	return dir, nil
}

// Memory is an ItemStore kept in process memory. It counts writes per key
// and can be told to fail, which is what the game's persistence tests rely on.
type Memory struct {
	mu      sync.Mutex
	items   map[string][]byte
	writes  map[string]int
	SaveErr error
}

func NewMemory() *Memory {
	return &Memory{
		items:  make(map[string][]byte),
		writes: make(map[string]int),
	}
}

func (m *Memory) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes[key]++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.items[key] = append([]byte(nil), data...)
	return nil
}

// Writes returns how many times key was written, failed writes included.
func (m *Memory) Writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}
