// Package sessionstore persists the CLI's guild login in a YAML file so that
// later invocations can re-authenticate without prompting.
package sessionstore

import (
	"os"
	"path/filepath"

	"guildbook/internal/errors"

	"gopkg.in/yaml.v3"
)

const (
	defaultDir  = "guildbook"
	defaultFile = "session.yaml"
)

// ErrNoSession is returned by Load when nothing has been saved.
var ErrNoSession = errors.New("no saved session")

// Session is the remembered login of a guild.
type Session struct {
	Server   string `yaml:"server"`
	GuildID  string `yaml:"guildId"`
	Password string `yaml:"password"`
}

// Store reads and writes a single session file.
type Store struct {
	path string
}

// New returns a store backed by path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the session file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate user config directory")
	}

	return filepath.Join(dir, defaultDir, defaultFile), nil
}

// Path returns the file the store uses.
func (s *Store) Path() string {
	return s.path
}

// Save writes session, replacing any previous one. The file is readable by
// its owner only since it holds a password.
func (s *Store) Save(session Session) error {
	data, err := yaml.Marshal(session)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(s.path))
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}

	return errors.WithStack(os.Rename(tmp, s.path))
}

// Load returns the saved session or ErrNoSession.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithStack(ErrNoSession)
		}

		return nil, errors.Wrapf(err, "failed to read %s", s.path)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", s.path)
	}
	if session.GuildID == "" {
		return nil, errors.WithStack(ErrNoSession)
	}

	return &session, nil
}

// Clear forgets the saved session. Clearing when nothing is saved is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", s.path)
	}

	return nil
}
