package board

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(srv.URL, "test-key", 2*time.Second, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, srv
}

func TestFetchItem(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q, want test-key", got)
		}
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.Contains(req.Query, "items(ids: [123])") {
			t.Errorf("unexpected query: %s", req.Query)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"items": [{
					"id": "123",
					"name": "Pesquisa 123",
					"board": {"id": 9242892489},
					"column_values": [
						{"id": "text_mkrjdnry", "text": "Empresa X", "value": "\"Empresa X\"", "type": "text"},
						{"id": "lookup_mkrkwqep", "text": null, "value": null, "type": "mirror", "display_value": "N-100"}
					]
				}]
			}
		}`))
	})

	item, err := client.FetchItem(context.Background(), "123")
	if err != nil {
		t.Fatalf("FetchItem: %v", err)
	}
	if item.ID != "123" || item.Name != "Pesquisa 123" {
		t.Fatalf("item = %+v", item)
	}
	if item.BoardID != "9242892489" {
		t.Fatalf("board id = %q, want 9242892489", item.BoardID)
	}
	if len(item.ColumnValues) != 2 {
		t.Fatalf("column count = %d, want 2", len(item.ColumnValues))
	}
	mirror := item.ColumnValues[1]
	if mirror.DisplayValue == nil || *mirror.DisplayValue != "N-100" {
		t.Fatalf("mirror display value = %v, want N-100", mirror.DisplayValue)
	}
}

func TestFetchItemNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"items": []}}`))
	})

	if _, err := client.FetchItem(context.Background(), "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFetchItemGraphQLError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors": [{"message": "invalid token"}]}`))
	})

	_, err := client.FetchItem(context.Background(), "123")
	if err == nil || !strings.Contains(err.Error(), "invalid token") {
		t.Fatalf("err = %v, want graphql error surfaced", err)
	}
}

func TestFetchItemUpstreamStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := client.FetchItem(context.Background(), "123"); err == nil {
		t.Fatalf("expected error on non-200 upstream")
	}
}

func TestFetchBoardColumns(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req.Query, "boards(ids: [9242892489])") {
			t.Errorf("unexpected query: %s", req.Query)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"boards": [{
					"columns": [
						{"id": "text_mkrjdnry", "title": "Cliente", "type": "text"},
						{"id": "color_mksvhn92", "title": "Tipo", "type": "color"}
					]
				}]
			}
		}`))
	})

	columns, err := client.FetchBoardColumns(context.Background(), "9242892489")
	if err != nil {
		t.Fatalf("FetchBoardColumns: %v", err)
	}
	if len(columns) != 2 {
		t.Fatalf("column count = %d, want 2", len(columns))
	}
	if columns[0].Title != "Cliente" || columns[1].Type != "color" {
		t.Fatalf("columns = %+v", columns)
	}
}
