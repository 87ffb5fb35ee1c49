package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/topservice/pesquisas-api/internal/domain"
	"github.com/topservice/pesquisas-api/internal/repository"
)

type itemResponse struct {
	ID           int64               `json:"id"`
	BoardItemID  string              `json:"boardItemId"`
	BoardID      string              `json:"boardId"`
	ItemName     string              `json:"itemName"`
	ColumnValues domain.ColumnValues `json:"columnValues"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type itemListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Items   []itemResponse `json:"items"`
}

type columnResponse struct {
	ID          int64  `json:"id"`
	BoardID     string `json:"boardId"`
	ColumnID    string `json:"columnId"`
	ColumnTitle string `json:"columnTitle"`
	ColumnType  string `json:"columnType"`
}

type columnListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	BoardID string           `json:"boardId,omitempty"`
	Columns []columnResponse `json:"columns"`
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	if !s.verifyBearer(r.Header.Get("Authorization")) {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	items, err := s.repo.Items.ListAll(r.Context())
	if err != nil {
		s.logger.Printf("list items error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list items")
		return
	}

	resp := itemListResponse{Success: true, Count: len(items), Items: make([]itemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	if !s.verifyBearer(r.Header.Get("Authorization")) {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	itemID := chi.URLParam(r, "itemID")
	item, err := s.repo.Items.GetByBoardItemID(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Item not found")
			return
		}
		s.logger.Printf("get item %s error: %v", itemID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch item")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"item":    toItemResponse(item),
	})
}

func (s *Server) handleListColumns(w http.ResponseWriter, r *http.Request) {
	if !s.verifyBearer(r.Header.Get("Authorization")) {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	columns, err := s.repo.Columns.ListAll(r.Context())
	if err != nil {
		s.logger.Printf("list columns error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list columns")
		return
	}
	s.respondJSON(w, http.StatusOK, toColumnListResponse("", columns))
}

func (s *Server) handleListBoardColumns(w http.ResponseWriter, r *http.Request) {
	if !s.verifyBearer(r.Header.Get("Authorization")) {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	boardID := chi.URLParam(r, "boardID")
	columns, err := s.repo.Columns.ListByBoard(r.Context(), boardID)
	if err != nil {
		s.logger.Printf("list board %s columns error: %v", boardID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list columns")
		return
	}
	s.respondJSON(w, http.StatusOK, toColumnListResponse(boardID, columns))
}

func toItemResponse(item domain.SurveyItem) itemResponse {
	return itemResponse{
		ID:           item.ID,
		BoardItemID:  item.BoardItemID,
		BoardID:      item.BoardID,
		ItemName:     item.ItemName,
		ColumnValues: item.ColumnValues,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toColumnListResponse(boardID string, columns []domain.BoardColumn) columnListResponse {
	resp := columnListResponse{
		Success: true,
		Count:   len(columns),
		BoardID: boardID,
		Columns: make([]columnResponse, 0, len(columns)),
	}
	for _, col := range columns {
		resp.Columns = append(resp.Columns, columnResponse{
			ID:          col.ID,
			BoardID:     col.BoardID,
			ColumnID:    col.ColumnID,
			ColumnTitle: col.ColumnTitle,
			ColumnType:  col.ColumnType,
		})
	}
	return resp
}
