// Package session holds the single authenticated-user record for the life of
// the client process, mirrored to one JSON file so logins survive restarts.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/veritext/veritext/internal/model"
)

const fileName = "session.json"

// Cache is the single source of truth for the current user. All reads go
// through Current; Set and Clear synchronously mirror to disk.
type Cache struct {
	mu   sync.RWMutex
	path string
	user *model.User
}

// New creates a cache backed by dir/session.json and loads any stored
// record. A missing or unparseable file is discarded and treated as logged
// out; Load never fails the caller for bad stored data.
func New(dir string) (*Cache, error) {
	c := &Cache{path: filepath.Join(dir, fileName)}
	c.load()
	return c, nil
}

// load reads the stored record. Corrupt data is removed and ignored.
func (c *Cache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil || user.UserID == 0 {
		_ = os.Remove(c.path)
		return
	}

	c.user = &user
}

// Current returns the logged-in user, or nil when unauthenticated.
func (c *Cache) Current() *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// Set replaces the record and mirrors it to disk: written on non-nil,
// removed on nil.
func (c *Cache) Set(user *model.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = user

	if user == nil {
		if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session file: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear is equivalent to Set(nil).
func (c *Cache) Clear() error {
	return c.Set(nil)
}
