package account

import (
	"context"
	"errors"
	"sync"
)

// ErrAccountExists is returned when an email address is already registered.
var ErrAccountExists = errors.New("account already exists")

// InMemoryAccountRepository implements AccountRepository using in-memory
// storage. Useful for local runs and tests.
type InMemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account // keyed by ID
	byEmail  map[string]string  // email -> ID
}

// NewInMemoryAccountRepository creates a new in-memory account repository.
func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{
		accounts: make(map[string]Account),
		byEmail:  make(map[string]string),
	}
}

// Create stores the account. Duplicate emails are rejected.
func (r *InMemoryAccountRepository) Create(ctx context.Context, account Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return ErrAccountExists
	}

	r.accounts[account.ID] = account
	r.byEmail[account.Email] = account.ID
	return nil
}

// FindByEmail returns the stored account for an email address.
func (r *InMemoryAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, false
	}

	acct := r.accounts[id]
	return &acct, true
}
