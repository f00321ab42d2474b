package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/wolfread/wolfread-go/internal/cryptox"
	"github.com/wolfread/wolfread-go/internal/dbx"
	"github.com/wolfread/wolfread-go/internal/migrations"
	"github.com/wolfread/wolfread-go/internal/models"
)

const (
	keyTokens     = "tokens"
	keyOnboarding = "onboarding"
)

// OpenDB opens the local state database and applies pending migrations.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("run state migrations: %w", err)
	}
	return db, nil
}

// SQLiteRepository stores credential state in the state table, sealing the
// token pair with the given key before writing.
type SQLiteRepository struct {
	db  *sql.DB
	key []byte
}

func NewSQLiteRepository(db *sql.DB, sealKey []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: sealKey}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) delete(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) SaveTokens(ctx context.Context, pair *models.TokenPair) error {
	if pair == nil {
		return ErrNilTokenPair
	}
	sealed, err := cryptox.Seal(pair, r.key)
	if err != nil {
		return fmt.Errorf("seal token pair: %w", err)
	}
	return r.set(ctx, r.db, keyTokens, sealed)
}

func (r *SQLiteRepository) LoadTokens(ctx context.Context) (*models.TokenPair, error) {
	sealed, err := r.get(ctx, r.db, keyTokens)
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return nil, nil
	}

	var pair models.TokenPair
	if err := cryptox.Open(sealed, r.key, &pair); err != nil {
		// A value we cannot read is the same as no value at all.
		return nil, nil
	}
	return &pair, nil
}

func (r *SQLiteRepository) ClearTokens(ctx context.Context) error {
	return r.delete(ctx, r.db, keyTokens)
}

func (r *SQLiteRepository) SetOnboarding(ctx context.Context) error {
	return r.set(ctx, r.db, keyOnboarding, []byte{1})
}

func (r *SQLiteRepository) ConsumeOnboarding(ctx context.Context) (bool, error) {
	var set bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		value, err := r.get(ctx, tx, keyOnboarding)
		if err != nil {
			return err
		}
		if value == nil {
			return nil
		}
		set = true
		return r.delete(ctx, tx, keyOnboarding)
	})
	if err != nil {
		return false, err
	}
	return set, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM state`)
	if err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}
