package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoSession is returned when an authenticated operation is attempted
// without a signed-in session.
var ErrNoSession = errors.New("no active session, run 'gymlog login' first")

// Session is the authenticated identity. The bearer token is issued by the
// external identity provider; this client only stores and presents it.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ClientID  string    `json:"client_id"` // assigned on first sign-in
	CreatedAt time.Time `json:"created_at"`
}

// Store persists the session as a single JSON file under the data dir.
type Store struct {
	path    string
	current *Session
}

// Open loads the persisted session, if any. A missing or unreadable file
// just means signed out.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &Store{path: filepath.Join(dataDir, "session.json")}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s, nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		return s, nil
	}
	s.current = &sess
	return s, nil
}

// SignIn stores a provider-issued bearer token. The ClientID survives
// re-logins so server-side request correlation stays stable per install.
func (s *Store) SignIn(token, email string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("token must not be empty")
	}

	clientID := uuid.NewString()
	if s.current != nil && s.current.ClientID != "" {
		clientID = s.current.ClientID
	}

	sess := &Session{
		Token:     token,
		Email:     strings.TrimSpace(email),
		ClientID:  clientID,
		CreatedAt: time.Now(),
	}
	if err := s.save(sess); err != nil {
		return nil, err
	}
	s.current = sess
	return sess, nil
}

// SignOut removes the persisted session. Signing out twice is fine.
func (s *Store) SignOut() error {
	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// Current returns the active session or ErrNoSession.
func (s *Store) Current() (*Session, error) {
	if s.current == nil {
		return nil, ErrNoSession
	}
	return s.current, nil
}

func (s *Store) save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	// Token material, keep it owner-only.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
