package board

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the board does not know the requested item.
var ErrNotFound = errors.New("board: item not found")

// Item is a survey item as returned by the board API, column-value bag
// included.
type Item struct {
	ID           string
	Name         string
	BoardID      string
	ColumnValues []ColumnValue
}

// ColumnValue is one raw cell of a board item. Mirror columns report their
// resolved content through DisplayValue instead of Text.
type ColumnValue struct {
	ID           string  `json:"id"`
	Text         *string `json:"text"`
	Value        *string `json:"value"`
	Type         *string `json:"type"`
	DisplayValue *string `json:"display_value"`
}

// Column is a board column definition.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Client defines the contract for querying the survey board API.
type Client interface {
	FetchItem(ctx context.Context, itemID string) (*Item, error)
	FetchBoardColumns(ctx context.Context, boardID string) ([]Column, error)
}

// HTTPClient implements Client over the board's GraphQL HTTP endpoint.
type HTTPClient struct {
	endpoint *url.URL
	apiKey   string
	client   *http.Client
	logger   *log.Logger
}

// NewHTTPClient constructs a new HTTP-backed board client.
func NewHTTPClient(endpoint, apiKey string, timeout time.Duration, logger *log.Logger) (*HTTPClient, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse board url: %w", err)
	}
	return &HTTPClient{
		endpoint: parsed,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// FetchItem retrieves one item with its full column-value bag.
func (c *HTTPClient) FetchItem(ctx context.Context, itemID string) (*Item, error) {
	query := fmt.Sprintf(`
		query {
			items(ids: [%s]) {
				id
				name
				board { id }
				column_values {
					id
					text
					value
					type
					... on MirrorValue {
						display_value
					}
				}
			}
		}
	`, itemID)

	var payload struct {
		Data struct {
			Items []itemPayload `json:"items"`
		} `json:"data"`
	}
	if err := c.post(ctx, query, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data.Items) == 0 {
		return nil, ErrNotFound
	}
	return payload.Data.Items[0].toItem(), nil
}

// FetchBoardColumns retrieves the column definitions of a board.
func (c *HTTPClient) FetchBoardColumns(ctx context.Context, boardID string) ([]Column, error) {
	query := fmt.Sprintf(`
		query {
			boards(ids: [%s]) {
				columns {
					id
					title
					type
				}
			}
		}
	`, boardID)

	var payload struct {
		Data struct {
			Boards []struct {
				Columns []Column `json:"columns"`
			} `json:"boards"`
		} `json:"data"`
	}
	if err := c.post(ctx, query, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data.Boards) == 0 {
		return nil, nil
	}
	return payload.Data.Boards[0].Columns, nil
}

// post executes one GraphQL query and decodes the response into dst,
// surfacing GraphQL-level errors as Go errors.
func (c *HTTPClient) post(ctx context.Context, query string, dst interface{}) error {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("board: unexpected status %d", resp.StatusCode)
		return fmt.Errorf("board: upstream returned %d", resp.StatusCode)
	}

	var envelope struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	raw, err := readAll(resp)
	if err != nil {
		return fmt.Errorf("read board response: %w", err)
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode board response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("board: api error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode board response: %w", err)
	}
	return nil
}

func readAll(resp *http.Response) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type itemPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Board struct {
		ID json.Number `json:"id"`
	} `json:"board"`
	ColumnValues []ColumnValue `json:"column_values"`
}

func (p itemPayload) toItem() *Item {
	return &Item{
		ID:           p.ID,
		Name:         p.Name,
		BoardID:      p.Board.ID.String(),
		ColumnValues: p.ColumnValues,
	}
}
