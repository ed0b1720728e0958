package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"green-justice/models"
)

const tokenBytes = 24

// Registry maps opaque bearer tokens to authenticated authority identities
// for the lifetime of the process. Tokens never expire; a restart drops them
// all. The registry is created at process start and injected wherever tokens
// are minted or resolved.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]models.Authority
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]models.Authority)}
}

// Create mints a fresh random token for the authority and records the
// mapping. Existing tokens for the same authority stay valid.
func (r *Registry) Create(authority models.Authority) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	r.mu.Lock()
	r.sessions[token] = authority
	r.mu.Unlock()

	return token, nil
}

// Resolve returns the identity behind a token, if any. Pure lookup, no side
// effects.
func (r *Registry) Resolve(token string) (models.Authority, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	authority, ok := r.sessions[token]
	return authority, ok
}
