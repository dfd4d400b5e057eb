package session

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu   sync.RWMutex
	cred *Credential
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a Store living as long as the process, optionally holding cred.
func NewMemoryStore(cred ...Credential) *MemoryStore {
	s := new(MemoryStore)
	if len(cred) > 0 && cred[0].AccessToken != "" {
		c := cred[0]
		s.cred = &c
	}
	return s
}

func (s *MemoryStore) Credential(context.Context) (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return Credential{}, false
	}
	return *s.cred, true
}

func (s *MemoryStore) Save(_ context.Context, cred Credential) error {
	if cred.AccessToken == "" {
		return errNoToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &cred
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	return nil
}
