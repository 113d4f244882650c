package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAccountRepository implements AccountRepository using PostgreSQL.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new PostgreSQL account repository.
func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		pool: pool,
	}
}

// Create inserts the account.
func (r *PostgresAccountRepository) Create(ctx context.Context, account Account) error {
	query := `
		INSERT INTO accounts (id, name, email, password, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.pool.Exec(ctx, query, account.ID, account.Name, account.Email, account.Password)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}
