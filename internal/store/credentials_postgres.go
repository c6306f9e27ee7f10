package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/pdf-link-shortener/internal/credentials"
	"github.com/serroba/pdf-link-shortener/internal/linkly"
)

// PostgresCredentialStore is a PostgreSQL credentials.Store.
type PostgresCredentialStore struct {
	pool *pgxpool.Pool
}

// NewPostgresCredentialStore creates a PostgreSQL-backed credential store.
func NewPostgresCredentialStore(pool *pgxpool.Pool) *PostgresCredentialStore {
	return &PostgresCredentialStore{pool: pool}
}

func (p *PostgresCredentialStore) Save(ctx context.Context, profile string, creds linkly.Credentials) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO linkly_credentials (profile, api_key, account_email, workspace_id, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (profile) DO UPDATE
		SET api_key = EXCLUDED.api_key,
			account_email = EXCLUDED.account_email,
			workspace_id = EXCLUDED.workspace_id,
			updated_at = now()
	`, profile, creds.APIKey, creds.AccountEmail, creds.WorkspaceID)

	return err
}

func (p *PostgresCredentialStore) Get(ctx context.Context, profile string) (*linkly.Credentials, error) {
	var creds linkly.Credentials

	err := p.pool.QueryRow(ctx, `
		SELECT api_key, account_email, workspace_id
		FROM linkly_credentials
		WHERE profile = $1
	`, profile).Scan(&creds.APIKey, &creds.AccountEmail, &creds.WorkspaceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, credentials.ErrNotFound
		}

		return nil, err
	}

	return &creds, nil
}

func (p *PostgresCredentialStore) Delete(ctx context.Context, profile string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM linkly_credentials WHERE profile = $1`, profile)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return credentials.ErrNotFound
	}

	return nil
}

var _ credentials.Store = (*PostgresCredentialStore)(nil)
