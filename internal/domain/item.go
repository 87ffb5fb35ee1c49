package domain

import "time"

// ColumnValue is one cell of a survey item as delivered by the board API:
// display text, raw JSON value, and the column's declared type. Mirror
// columns additionally carry a display value.
type ColumnValue struct {
	Text         *string `json:"text"`
	Value        *string `json:"value"`
	Type         *string `json:"type"`
	DisplayValue *string `json:"display_value,omitempty"`
}

// ColumnValues maps board column ids to their values.
type ColumnValues map[string]ColumnValue

// SurveyItem is one respondent's full set of answered fields, stored
// wholesale from the board and replaced on update notifications.
type SurveyItem struct {
	ID           int64
	BoardItemID  string
	BoardID      string
	ItemName     string
	ColumnValues ColumnValues
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BoardColumn is a column definition fetched from the board on the first
// webhook for that board.
type BoardColumn struct {
	ID          int64
	BoardID     string
	ColumnID    string
	ColumnTitle string
	ColumnType  string
	CreatedAt   time.Time
}

// AccessKey maps a guest access key to the business number it unlocks.
type AccessKey struct {
	ID             int64
	BoardItemID    string
	BusinessNumber string
	Key            string
	CreatedAt      time.Time
}
