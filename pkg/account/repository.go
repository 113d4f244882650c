package account

import "context"

// AccountRepository persists created accounts.
type AccountRepository interface {
	Create(ctx context.Context, account Account) error
}
