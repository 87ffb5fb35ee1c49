package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topservice/pesquisas-api/internal/domain"
)

// ColumnsRepository stores board column definitions, fetched once per board
// on its first webhook.
type ColumnsRepository struct {
	pool *pgxpool.Pool
}

// ColumnCreateParams bundles a column definition.
type ColumnCreateParams struct {
	BoardID     string
	ColumnID    string
	ColumnTitle string
	ColumnType  string
}

// Create inserts a column definition; an already known column id is left
// untouched.
func (r *ColumnsRepository) Create(ctx context.Context, params ColumnCreateParams) (domain.BoardColumn, error) {
	const query = `
        INSERT INTO board_columns (board_id, column_id, column_title, column_type)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (column_id) DO UPDATE SET column_title = EXCLUDED.column_title,
                                              column_type = EXCLUDED.column_type
        RETURNING id, board_id, column_id, column_title, column_type, created_at
    `
	var col domain.BoardColumn
	err := r.pool.QueryRow(ctx, query, params.BoardID, params.ColumnID, params.ColumnTitle, params.ColumnType).Scan(
		&col.ID,
		&col.BoardID,
		&col.ColumnID,
		&col.ColumnTitle,
		&col.ColumnType,
		&col.CreatedAt,
	)
	if err != nil {
		return domain.BoardColumn{}, err
	}
	return col, nil
}

// ListAll returns every stored column definition.
func (r *ColumnsRepository) ListAll(ctx context.Context) ([]domain.BoardColumn, error) {
	return r.list(ctx, `SELECT id, board_id, column_id, column_title, column_type, created_at FROM board_columns ORDER BY id`)
}

// ListByBoard returns the column definitions of one board.
func (r *ColumnsRepository) ListByBoard(ctx context.Context, boardID string) ([]domain.BoardColumn, error) {
	return r.list(ctx, `SELECT id, board_id, column_id, column_title, column_type, created_at FROM board_columns WHERE board_id = $1 ORDER BY id`, boardID)
}

// CountByBoard reports how many column definitions are cached for a board.
func (r *ColumnsRepository) CountByBoard(ctx context.Context, boardID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM board_columns WHERE board_id = $1`, boardID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ColumnsRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.BoardColumn, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make([]domain.BoardColumn, 0)
	for rows.Next() {
		col, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}

func scanColumn(row pgx.Row) (domain.BoardColumn, error) {
	var col domain.BoardColumn
	err := row.Scan(
		&col.ID,
		&col.BoardID,
		&col.ColumnID,
		&col.ColumnTitle,
		&col.ColumnType,
		&col.CreatedAt,
	)
	if err != nil {
		return domain.BoardColumn{}, err
	}
	return col, nil
}
