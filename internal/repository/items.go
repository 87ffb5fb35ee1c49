package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topservice/pesquisas-api/internal/domain"
	"github.com/topservice/pesquisas-api/internal/survey"
)

// ItemsRepository persists survey items keyed by their board item id.
type ItemsRepository struct {
	pool *pgxpool.Pool
}

const itemColumns = `
    id,
    board_item_id,
    board_id,
    item_name,
    column_values,
    created_at,
    updated_at
`

// ItemUpsertParams bundles the fields stored for a survey item.
type ItemUpsertParams struct {
	BoardItemID  string
	BoardID      string
	ItemName     string
	ColumnValues domain.ColumnValues
}

// Upsert stores an item, replacing the column-value bag wholesale when the
// board item id already exists. The boolean reports whether a new row was
// inserted.
func (r *ItemsRepository) Upsert(ctx context.Context, params ItemUpsertParams) (domain.SurveyItem, bool, error) {
	bag, err := json.Marshal(params.ColumnValues)
	if err != nil {
		return domain.SurveyItem{}, false, fmt.Errorf("marshal column values: %w", err)
	}

	query := fmt.Sprintf(`
        INSERT INTO survey_items (board_item_id, board_id, item_name, column_values)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (board_item_id)
        DO UPDATE SET board_id = EXCLUDED.board_id,
                      item_name = EXCLUDED.item_name,
                      column_values = EXCLUDED.column_values,
                      updated_at = now()
        RETURNING %s, (xmax = 0) AS inserted
    `, itemColumns)

	var (
		item     domain.SurveyItem
		rawBag   []byte
		inserted bool
	)
	err = r.pool.QueryRow(ctx, query, params.BoardItemID, params.BoardID, params.ItemName, bag).Scan(
		&item.ID,
		&item.BoardItemID,
		&item.BoardID,
		&item.ItemName,
		&rawBag,
		&item.CreatedAt,
		&item.UpdatedAt,
		&inserted,
	)
	if err != nil {
		return domain.SurveyItem{}, false, err
	}
	if err := json.Unmarshal(rawBag, &item.ColumnValues); err != nil {
		return domain.SurveyItem{}, false, fmt.Errorf("unmarshal column values: %w", err)
	}
	return item, inserted, nil
}

// Delete removes an item by its board item id, reporting whether a row
// existed.
func (r *ItemsRepository) Delete(ctx context.Context, boardItemID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM survey_items WHERE board_item_id = $1`, boardItemID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetByBoardItemID fetches one item by its board item id.
func (r *ItemsRepository) GetByBoardItemID(ctx context.Context, boardItemID string) (domain.SurveyItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM survey_items WHERE board_item_id = $1`, itemColumns)
	item, err := scanItem(r.pool.QueryRow(ctx, query, boardItemID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.SurveyItem{}, ErrNotFound
		}
		return domain.SurveyItem{}, err
	}
	return item, nil
}

// ListAll returns every stored item.
func (r *ItemsRepository) ListAll(ctx context.Context) ([]domain.SurveyItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM survey_items ORDER BY created_at, id`, itemColumns)
	return r.list(ctx, query)
}

// ListByTipo returns every item whose tipo column matches, filtered inside
// Postgres over the JSONB bag.
func (r *ItemsRepository) ListByTipo(ctx context.Context, tipo string) ([]domain.SurveyItem, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM survey_items
        WHERE column_values->$1->>'text' = $2
        ORDER BY created_at, id
    `, itemColumns)
	return r.list(ctx, query, survey.ColumnID(survey.FieldTipo), tipo)
}

func (r *ItemsRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.SurveyItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.SurveyItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanItem(row pgx.Row) (domain.SurveyItem, error) {
	var (
		item   domain.SurveyItem
		rawBag []byte
	)
	err := row.Scan(
		&item.ID,
		&item.BoardItemID,
		&item.BoardID,
		&item.ItemName,
		&rawBag,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return domain.SurveyItem{}, err
	}
	if err := json.Unmarshal(rawBag, &item.ColumnValues); err != nil {
		return domain.SurveyItem{}, fmt.Errorf("unmarshal column values: %w", err)
	}
	return item, nil
}
