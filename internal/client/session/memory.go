package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store, used for ephemeral runs and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	cred   Credential
	legacy string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Current(_ context.Context) (Credential, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred.Access == "" {
		return Credential{}, false, nil
	}
	return s.cred, true, nil
}

func (s *MemoryStore) AccessToken(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Access, s.cred.Access != "", nil
}

func (s *MemoryStore) Set(_ context.Context, cred Credential) error {
	if cred.Access == "" {
		return ErrEmptyCredential
	}
	s.mu.Lock()
	s.cred = cred
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) SetAccess(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyCredential
	}
	s.mu.Lock()
	s.legacy = token
	if s.cred.Access == "" {
		s.cred = Credential{Access: token}
	}
	s.mu.Unlock()
	return nil
}

// LegacyToken returns the value email verification wrote under the legacy key.
func (s *MemoryStore) LegacyToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.legacy
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.cred = Credential{}
	s.legacy = ""
	s.mu.Unlock()
	return nil
}
