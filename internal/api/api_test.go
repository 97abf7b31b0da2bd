package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auctionbase/internal/db"
	"auctionbase/internal/model"
)

func setupTestServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()
	database := db.NewTestDB(t)
	server := httptest.NewServer(NewRouter(database))
	t.Cleanup(server.Close)

	if _, err := database.Exec(`INSERT INTO sim_time (time) VALUES ('2024-01-03 00:00:00')`); err != nil {
		t.Fatalf("seeding simulated time: %v", err)
	}
	return server, database
}

func seedAuction(t *testing.T, database *sql.DB) {
	t.Helper()
	stmts := []string{
		`INSERT INTO users (id, rating) VALUES ('seller1', 10), ('alice', 5)`,
		`INSERT INTO items (id, name, description, currently, first_bid, started, ends, number_of_bids, seller_id)
		 VALUES (1, 'Vintage Camera', 'a classic', 10, 10, '2024-01-01 00:00:00', '2024-01-05 00:00:00', 0, 'seller1')`,
		`INSERT INTO categories (item_id, category) VALUES (1, 'Cameras'), (1, 'Electronics')`,
	}
	for _, stmt := range stmts {
		if _, err := database.Exec(stmt); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func TestTimeAPI(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := doJSON(t, "PUT", server.URL+"/api/time", map[string]string{"time": "2024-06-15 12:30:45"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "GET", server.URL+"/api/time", nil)
	var got map[string]string
	json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()
	if got["time"] != "2024-06-15 12:30:45" {
		t.Errorf("round trip mismatch: got %q", got["time"])
	}
}

func TestTimeAPIRejectsMalformed(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := doJSON(t, "PUT", server.URL+"/api/time", map[string]string{"time": "tomorrow"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed time, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestItemAPI(t *testing.T) {
	server, database := setupTestServer(t)
	seedAuction(t, database)

	resp := doJSON(t, "GET", server.URL+"/api/items/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var detail struct {
		Item       model.Item `json:"item"`
		Categories string     `json:"categories"`
		Status     string     `json:"status"`
		Ended      bool       `json:"ended"`
		Winner     string     `json:"winner"`
	}
	json.NewDecoder(resp.Body).Decode(&detail)
	resp.Body.Close()

	if detail.Item.Name != "Vintage Camera" {
		t.Errorf("expected item name, got %q", detail.Item.Name)
	}
	if detail.Categories != "Cameras, Electronics" {
		t.Errorf("expected concatenated categories, got %q", detail.Categories)
	}
	if detail.Status != model.StatusOpen || detail.Ended {
		t.Errorf("expected open and not ended, got %q/%v", detail.Status, detail.Ended)
	}
	if detail.Winner != "" {
		t.Errorf("expected no winner without bids, got %q", detail.Winner)
	}

	resp = doJSON(t, "GET", server.URL+"/api/items/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for missing item, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestBidAPIFlow(t *testing.T) {
	server, database := setupTestServer(t)
	seedAuction(t, database)

	// Too-low amount is rejected before any write.
	resp := doJSON(t, "POST", server.URL+"/api/bids",
		map[string]any{"item_id": 1, "user_id": "alice", "amount": 10})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for too-low bid, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Seller cannot bid.
	resp = doJSON(t, "POST", server.URL+"/api/bids",
		map[string]any{"item_id": 1, "user_id": "seller1", "amount": 15})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for seller bid, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown user.
	resp = doJSON(t, "POST", server.URL+"/api/bids",
		map[string]any{"item_id": 1, "user_id": "nobody", "amount": 15})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown user, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var n int
	database.QueryRow(`SELECT count(*) FROM bids`).Scan(&n)
	if n != 0 {
		t.Fatalf("expected no bids after rejections, got %d", n)
	}

	// A valid bid succeeds.
	resp = doJSON(t, "POST", server.URL+"/api/bids",
		map[string]any{"item_id": 1, "user_id": "alice", "amount": 15})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var result map[string]any
	json.NewDecoder(resp.Body).Decode(&result)
	resp.Body.Close()
	if result["added"] != true {
		t.Errorf("expected added=true, got %v", result)
	}

	var currently float64
	database.QueryRow(`SELECT currently FROM items WHERE id = 1`).Scan(&currently)
	if currently != 15 {
		t.Errorf("expected current price 15, got %v", currently)
	}
}

func TestSearchAPI(t *testing.T) {
	server, database := setupTestServer(t)
	seedAuction(t, database)

	resp := doJSON(t, "GET", server.URL+"/api/items?category=Cameras&status=open", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var results []model.SearchResult
	json.NewDecoder(resp.Body).Decode(&results)
	resp.Body.Close()
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("expected item 1, got %+v", results)
	}

	// No criteria at all is an error.
	resp = doJSON(t, "GET", server.URL+"/api/items", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without criteria, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown status filter.
	resp = doJSON(t, "GET", server.URL+"/api/items?category=Cameras&status=bogus", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
