package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"userdir/internal/core"
)

// PgStore persists the directory in a PostgreSQL table. The collection is
// small enough to treat as a document: Save replaces the whole table in one
// transaction, which keeps the backend contract identical to FileStore.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a PgStore on the given pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id           TEXT PRIMARY KEY,
	first_name   TEXT NOT NULL,
	last_name    TEXT NOT NULL,
	email        TEXT NOT NULL UNIQUE,
	phone_number TEXT NOT NULL,
	pan_number   TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the users table if it does not exist.
func (p *PgStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// Load reads the full collection in creation order.
func (p *PgStore) Load(ctx context.Context) ([]core.User, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, phone_number, pan_number,
		       created_at, updated_at
		FROM users
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []core.User
	for rows.Next() {
		var u core.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email,
			&u.PhoneNumber, &u.PANNumber, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	return users, nil
}

// Save replaces the collection in one transaction.
func (p *PgStore) Save(ctx context.Context, users []core.User) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	if _, err := tx.Exec(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	if len(users) > 0 {
		batch := &pgx.Batch{}
		for _, u := range users {
			batch.Queue(`
				INSERT INTO users (id, first_name, last_name, email,
					phone_number, pan_number, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				u.ID, u.FirstName, u.LastName, u.Email,
				u.PhoneNumber, u.PANNumber, u.CreatedAt, u.UpdatedAt)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert users: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// NewID returns a fresh record identifier.
func (p *PgStore) NewID() string {
	return newID()
}
