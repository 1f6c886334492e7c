// Package session keeps the active username between restarts in a small token file
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/go-pkgz/lgr"
)

// Token keeps the name of the signed-in user in a file. With empty location it keeps it in memory only.
type Token struct {
	location string

	mu       sync.Mutex
	username string // used when location is empty
}

// New makes token for the given file, parent directory created if missing
func New(location string) *Token {
	if location != "" {
		if err := os.MkdirAll(filepath.Dir(location), 0o700); err != nil {
			log.Printf("[DEBUG] can't make %s, %s", filepath.Dir(location), err)
		}
	}
	return &Token{location: location}
}

// Load returns the saved username, empty if nothing saved
func (t *Token) Load() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.location == "" {
		return t.username, nil
	}
	data, err := os.ReadFile(t.location)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token %s: %w", t.location, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes username as the active session
func (t *Token) Save(username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.location == "" {
		t.username = username
		return nil
	}
	log.Printf("[DEBUG] save session token %s", t.location)
	if err := os.WriteFile(t.location, []byte(username), 0o600); err != nil {
		return fmt.Errorf("failed to write session token %s: %w", t.location, err)
	}
	return nil
}

// Clear removes the active session, missing token is not an error
func (t *Token) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.location == "" {
		t.username = ""
		return nil
	}
	log.Printf("[DEBUG] delete session token %s", t.location)
	if err := os.Remove(t.location); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete session token %s: %w", t.location, err)
	}
	return nil
}

func (t *Token) String() string {
	if t.location == "" {
		return "location:memory"
	}
	return fmt.Sprintf("location:%s", t.location)
}
