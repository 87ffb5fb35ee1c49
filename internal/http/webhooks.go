package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/topservice/pesquisas-api/internal/board"
	"github.com/topservice/pesquisas-api/internal/domain"
	"github.com/topservice/pesquisas-api/internal/observability"
	"github.com/topservice/pesquisas-api/internal/repository"
	"github.com/topservice/pesquisas-api/internal/survey"
)

// webhookPayload is the board's notification envelope. A verification
// request carries only a challenge; real events carry the item and board ids.
type webhookPayload struct {
	Challenge string `json:"challenge,omitempty"`
	Event     *struct {
		Type    string      `json:"type"`
		PulseID json.Number `json:"pulseId"`
		ItemID  json.Number `json:"itemId"`
		BoardID json.Number `json:"boardId"`
	} `json:"event"`
}

// itemID prefers pulseId, falling back to itemId.
func (p webhookPayload) itemID() string {
	if p.Event == nil {
		return ""
	}
	if id := p.Event.PulseID.String(); id != "" {
		return id
	}
	return p.Event.ItemID.String()
}

func (p webhookPayload) boardID(fallback string) string {
	if p.Event == nil || p.Event.BoardID.String() == "" {
		return fallback
	}
	return p.Event.BoardID.String()
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ItemID  string `json:"itemId"`
}

func (s *Server) handleWebhookCreate(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := decodeWebhookBody(w, r, &payload); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if payload.Challenge != "" {
		s.respondJSON(w, http.StatusOK, map[string]string{"challenge": payload.Challenge})
		return
	}
	observability.WebhooksTotal.WithLabelValues("create").Inc()

	itemID := payload.itemID()
	if itemID == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Item ID is required")
		return
	}
	boardID := payload.boardID(s.cfg.BoardID)

	if err := s.ensureBoardColumns(r.Context(), boardID); err != nil {
		s.logger.Printf("ensure board columns failed: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process webhook")
		return
	}

	item, err := s.fetchBoardItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, board.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Item not found on board")
			return
		}
		s.logger.Printf("board fetch item %s failed: %v", itemID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process webhook")
		return
	}

	bag := toColumnValues(item.ColumnValues)
	ensureTipo(bag)

	_, inserted, err := s.repo.Items.Upsert(r.Context(), repository.ItemUpsertParams{
		BoardItemID:  itemID,
		BoardID:      item.BoardID,
		ItemName:     item.Name,
		ColumnValues: bag,
	})
	if err != nil {
		s.logger.Printf("upsert item %s failed: %v", itemID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store item")
		return
	}

	message := "Item updated successfully"
	if inserted {
		message = "Item created successfully"
	}
	s.respondJSON(w, http.StatusOK, webhookResponse{Success: true, Message: message, ItemID: itemID})
}

func (s *Server) handleWebhookDelete(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := decodeWebhookBody(w, r, &payload); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if payload.Challenge != "" {
		s.respondJSON(w, http.StatusOK, map[string]string{"challenge": payload.Challenge})
		return
	}
	observability.WebhooksTotal.WithLabelValues("delete").Inc()

	itemID := payload.itemID()
	if itemID == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Item ID is required")
		return
	}

	deleted, err := s.repo.Items.Delete(r.Context(), itemID)
	if err != nil {
		s.logger.Printf("delete item %s failed: %v", itemID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete item")
		return
	}
	if !deleted {
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Item not found in database")
		return
	}
	if _, err := s.repo.Keys.DeleteByBoardItemID(r.Context(), itemID); err != nil {
		s.logger.Printf("delete access keys for item %s failed: %v", itemID, err)
	}
	s.respondJSON(w, http.StatusOK, webhookResponse{Success: true, Message: "Item deleted successfully", ItemID: itemID})
}

type accessKeyResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ItemID         string `json:"itemId"`
	BusinessNumber string `json:"numeroDeNegocio"`
	Key            string `json:"chave"`
}

func (s *Server) handleSaveAccessKey(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := decodeWebhookBody(w, r, &payload); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if payload.Challenge != "" {
		s.respondJSON(w, http.StatusOK, map[string]string{"challenge": payload.Challenge})
		return
	}
	observability.WebhooksTotal.WithLabelValues("salvarchave").Inc()

	itemID := payload.itemID()
	if itemID == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Item ID is required")
		return
	}

	item, err := s.fetchBoardItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, board.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Item not found on board")
			return
		}
		s.logger.Printf("board fetch item %s failed: %v", itemID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process webhook")
		return
	}

	bag := toColumnValues(item.ColumnValues)
	businessNumber := strings.TrimSpace(survey.DisplayValue(bag, survey.FieldNumeroNegocioMirror))
	key := strings.TrimSpace(survey.TextValue(bag, survey.FieldChaveAcesso))

	if businessNumber == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Numero de negocio not found in item")
		return
	}
	if key == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Chave not found in item")
		return
	}

	saved, err := s.repo.Keys.Replace(r.Context(), repository.KeyReplaceParams{
		BoardItemID:    itemID,
		BusinessNumber: businessNumber,
		Key:            key,
	})
	if err != nil {
		s.logger.Printf("replace access key for item %s failed: %v", itemID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save access key")
		return
	}

	s.respondJSON(w, http.StatusOK, accessKeyResponse{
		Success:        true,
		Message:        "Chave saved successfully",
		ItemID:         itemID,
		BusinessNumber: saved.BusinessNumber,
		Key:            saved.Key,
	})
}

// ensureBoardColumns caches the board's column definitions on the first
// webhook seen for that board.
func (s *Server) ensureBoardColumns(ctx context.Context, boardID string) error {
	count, err := s.repo.Columns.CountByBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	s.logger.Printf("first webhook for board %s, fetching column definitions", boardID)
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.BoardTimeoutSecs)*time.Second)
	defer cancel()

	columns, err := s.board.FetchBoardColumns(fetchCtx, boardID)
	if err != nil {
		observability.BoardFetchErrors.Inc()
		return fmt.Errorf("fetch board columns: %w", err)
	}
	for _, col := range columns {
		if _, err := s.repo.Columns.Create(ctx, repository.ColumnCreateParams{
			BoardID:     boardID,
			ColumnID:    col.ID,
			ColumnTitle: col.Title,
			ColumnType:  col.Type,
		}); err != nil {
			return fmt.Errorf("store column %s: %w", col.ID, err)
		}
	}
	s.logger.Printf("stored %d column definitions for board %s", len(columns), boardID)
	return nil
}

func (s *Server) fetchBoardItem(ctx context.Context, itemID string) (*board.Item, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.BoardTimeoutSecs)*time.Second)
	defer cancel()

	item, err := s.board.FetchItem(fetchCtx, itemID)
	if err != nil && !errors.Is(err, board.ErrNotFound) {
		observability.BoardFetchErrors.Inc()
	}
	return item, err
}

// toColumnValues flattens the board's column list into the stored bag.
func toColumnValues(cols []board.ColumnValue) domain.ColumnValues {
	bag := make(domain.ColumnValues, len(cols))
	for _, col := range cols {
		bag[col.ID] = domain.ColumnValue{
			Text:         col.Text,
			Value:        col.Value,
			Type:         col.Type,
			DisplayValue: col.DisplayValue,
		}
	}
	return bag
}

// ensureTipo fills the tipo column when the board left it blank, so every
// stored item can be filtered by respondent type.
func ensureTipo(bag domain.ColumnValues) {
	if strings.TrimSpace(survey.TextValue(bag, survey.FieldTipo)) != "" {
		return
	}
	tipo := survey.InferTipo(bag)
	value := fmt.Sprintf(`{"label":%q}`, tipo)
	colType := "color"
	bag[survey.ColumnID(survey.FieldTipo)] = domain.ColumnValue{
		Text:  &tipo,
		Value: &value,
		Type:  &colType,
	}
}

// decodeWebhookBody is lenient about unknown fields: the board sends a much
// larger envelope than we consume.
func decodeWebhookBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
