package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_PostsJSONAndReturnsStatusBody(t *testing.T) {
	var gotPath, gotMethod, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL + "/")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	status, body, err := c.Do(context.Background(), http.MethodPost, "register", map[string]any{
		"player_id": "evader_agent",
		"name":      "Evader",
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status=%d want 200", status)
	}
	if gotPath != "/register" || gotMethod != http.MethodPost {
		t.Fatalf("server saw %s %s", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content-type=%q", gotContentType)
	}
	var sent map[string]any
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("unmarshal sent body: %v", err)
	}
	if sent["player_id"] != "evader_agent" || sent["name"] != "Evader" {
		t.Fatalf("unexpected payload: %v", sent)
	}
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response: %v body=%s", err, string(body))
	}
	if resp["status"] != "ok" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestClient_SurfacesNon2xxStatusWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate_limited"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	status, body, err := c.Do(context.Background(), http.MethodPost, "move", map[string]any{"player_id": "p1"})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if status != http.StatusTooManyRequests {
		t.Fatalf("status=%d want 429", status)
	}
	if len(body) == 0 {
		t.Fatalf("expected error body")
	}
}

func TestClient_DialFailureReturnsError(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, _, err := c.Do(context.Background(), http.MethodPost, "move", nil); err == nil {
		t.Fatalf("expected transport error against closed port")
	}
}
