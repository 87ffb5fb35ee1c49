package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
)

type mockData struct {
	Columns []json.RawMessage          `json:"columns"`
	Items   map[string]json.RawMessage `json:"items"`
}

var idsPattern = regexp.MustCompile(`ids:\s*\[([0-9]+)\]`)

func main() {
	var (
		port    = flag.String("port", "9099", "port to listen on")
		data    = flag.String("data", "mock-board.json", "path to mock data file")
		verbose = flag.Bool("log", false, "enable request logging")
	)
	flag.Parse()

	file, err := os.ReadFile(*data)
	if err != nil {
		log.Fatalf("read mock data: %v", err)
	}

	var payload mockData
	if err := json.Unmarshal(file, &payload); err != nil {
		log.Fatalf("parse mock data: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if *verbose {
			log.Printf("query: %s", strings.Join(strings.Fields(req.Query), " "))
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(req.Query, "boards("):
			resp := map[string]interface{}{
				"data": map[string]interface{}{
					"boards": []map[string]interface{}{
						{"columns": payload.Columns},
					},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		case strings.Contains(req.Query, "items("):
			items := []json.RawMessage{}
			if m := idsPattern.FindStringSubmatch(req.Query); m != nil {
				if item, ok := payload.Items[m[1]]; ok {
					items = append(items, item)
				}
			}
			resp := map[string]interface{}{
				"data": map[string]interface{}{
					"items": items,
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		default:
			resp := map[string]interface{}{
				"errors": []map[string]string{{"message": "unsupported query"}},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}
	})

	addr := ":" + *port
	log.Printf("mock board listening on %s (%d items)", addr, len(payload.Items))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
