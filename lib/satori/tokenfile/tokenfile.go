// Package tokenfile persists the session token as a plain file, so a
// session survives between process runs.
package tokenfile

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhorod/satori-cli/lib/satori"
)

type Store struct {
	path string
}

// DefaultPath places the token under the user's home directory, falling
// back to the working directory when home cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".satori-token"
	}
	return filepath.Join(home, ".local", "share", "satori-cli", "token.txt")
}

func New(path string) Store {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return Store{path: path}
}

func (s Store) Load() (satori.Token, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	tok := satori.Token(strings.TrimSpace(string(raw)))
	if tok == "" {
		return "", false
	}
	return tok, true
}

func (s Store) Save(tok satori.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(tok), 0o600); err != nil {
		return err
	}
	slog.Debug("token saved", "path", s.path)
	return nil
}

func (s Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
