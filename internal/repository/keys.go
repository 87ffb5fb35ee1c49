package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topservice/pesquisas-api/internal/domain"
)

// KeysRepository stores guest access keys. Each board item owns at most one
// key; saving a new one replaces whatever was there.
type KeysRepository struct {
	pool *pgxpool.Pool
}

// KeyReplaceParams bundles the fields stored for an access key.
type KeyReplaceParams struct {
	BoardItemID    string
	BusinessNumber string
	Key            string
}

// Replace deletes any key previously stored for the board item and inserts
// the new one, atomically.
func (r *KeysRepository) Replace(ctx context.Context, params KeyReplaceParams) (domain.AccessKey, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.AccessKey{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM access_keys WHERE board_item_id = $1`, params.BoardItemID); err != nil {
		return domain.AccessKey{}, err
	}

	const query = `
        INSERT INTO access_keys (board_item_id, business_number, access_key)
        VALUES ($1,$2,$3)
        RETURNING id, board_item_id, business_number, access_key, created_at
    `
	var key domain.AccessKey
	err = tx.QueryRow(ctx, query, params.BoardItemID, params.BusinessNumber, params.Key).Scan(
		&key.ID,
		&key.BoardItemID,
		&key.BusinessNumber,
		&key.Key,
		&key.CreatedAt,
	)
	if err != nil {
		return domain.AccessKey{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.AccessKey{}, fmt.Errorf("commit: %w", err)
	}
	return key, nil
}

// GetByKey resolves an access key to the business number it unlocks.
func (r *KeysRepository) GetByKey(ctx context.Context, accessKey string) (domain.AccessKey, error) {
	const query = `
        SELECT id, board_item_id, business_number, access_key, created_at
        FROM access_keys
        WHERE access_key = $1
    `
	var key domain.AccessKey
	err := r.pool.QueryRow(ctx, query, accessKey).Scan(
		&key.ID,
		&key.BoardItemID,
		&key.BusinessNumber,
		&key.Key,
		&key.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.AccessKey{}, ErrNotFound
		}
		return domain.AccessKey{}, err
	}
	return key, nil
}

// DeleteByBoardItemID removes the key owned by a board item, if any.
func (r *KeysRepository) DeleteByBoardItemID(ctx context.Context, boardItemID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM access_keys WHERE board_item_id = $1`, boardItemID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
