// Package session holds the single "current user" of a prototype client.
// There are no credentials: logging in only records who is using the app.
package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	DefaultName   = "Demo User"
	defaultAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=100&q=80"
	defaultEmail  = "user@example.com"
)

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// Session is the process's current-user reference. Construct one at startup
// and hand it to whatever needs it.
type Session struct {
	mu      sync.RWMutex
	current *User
	newID   func() string
}

func New() *Session {
	return &Session{newID: func() string { return "u_" + uuid.NewString() }}
}

// Login replaces the current user. An empty name becomes DefaultName.
func (s *Session) Login(name string) User {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	u := User{
		ID:     s.newID(),
		Name:   name,
		Avatar: defaultAvatar,
		Email:  defaultEmail,
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return u
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}
