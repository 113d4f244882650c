// Package account implements the account creation use case and its
// persistence backends.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/renanferminojc/clean-go-api/pkg/hash"
	"github.com/renanferminojc/clean-go-api/pkg/notification"
)

// AddAccount is the account creation use case consumed by the signup
// controller.
type AddAccount interface {
	Add(ctx context.Context, params CreateAccountParams) (*Account, error)
}

// AccountService implements AddAccount. It hashes the password, assigns an
// ID, persists the account and sends a best-effort welcome email.
type AccountService struct {
	repo     AccountRepository
	hasher   hash.Hasher
	notifier notification.Notifier
}

// AccountServiceOption is a functional option for configuring AccountService.
type AccountServiceOption func(*AccountService)

// WithHasher overrides the password hasher.
func WithHasher(h hash.Hasher) AccountServiceOption {
	return func(s *AccountService) {
		s.hasher = h
	}
}

// WithNotifier sets the notifier used for welcome emails. Without one, no
// email is sent.
func WithNotifier(n notification.Notifier) AccountServiceOption {
	return func(s *AccountService) {
		s.notifier = n
	}
}

// NewAccountService creates an AccountService backed by the given repository.
func NewAccountService(repo AccountRepository, opts ...AccountServiceOption) *AccountService {
	s := &AccountService{
		repo:   repo,
		hasher: hash.NewBcryptHasher(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add creates a new account. The returned model carries the hashed password.
func (s *AccountService) Add(ctx context.Context, params CreateAccountParams) (*Account, error) {
	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := Account{
		ID:       uuid.NewString(),
		Name:     params.Name,
		Email:    params.Email,
		Password: hashed,
	}

	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, fmt.Errorf("failed to persist account: %w", err)
	}

	// Welcome email is best effort; creation has already succeeded.
	if s.notifier != nil {
		err := s.notifier.Send(notification.NotificationData{
			To:      acct.Email,
			Subject: "Welcome",
			Body:    fmt.Sprintf("Hi %s, your account has been created.", acct.Name),
		})
		if err != nil {
			slog.Error("Failed to send welcome email", "email", acct.Email, "error", err)
		}
	}

	return &acct, nil
}
