package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartboutique/internal/cart"
	"smartboutique/internal/services"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gemini-test",
	})
}

func TestGenerateReturnsFirstCandidateText(t *testing.T) {
	var gotPath, gotKey, gotRequestID string
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotRequestID = r.Header.Get("X-Request-ID")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "  Pair the shirt with dark jeans.  "}}}},
			},
		})
	})

	ctx := services.WithRequestID(context.Background(), "req-9")
	text, err := client.Generate(ctx, "stylist", "what goes with a blue shirt?")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Pair the shirt with dark jeans." {
		t.Fatalf("unexpected text %q", text)
	}
	if gotRequestID != "req-9" {
		t.Fatalf("X-Request-ID = %q, want %q", gotRequestID, "req-9")
	}
	if gotPath != "/models/gemini-test:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("unexpected key %q", gotKey)
	}
	if gotBody.SystemInstruction == nil || len(gotBody.SystemInstruction.Parts) != 1 || gotBody.SystemInstruction.Parts[0].Text != "stylist" {
		t.Fatalf("system instruction not forwarded: %+v", gotBody.SystemInstruction)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "what goes with a blue shirt?" {
		t.Fatalf("user query not forwarded: %+v", gotBody.Contents)
	}
}

func TestGenerateRejectsEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Generate(context.Background(), "", "query")
	if !errors.Is(err, services.ErrMalformedResponse) {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}

func TestGenerateClassifiesHTTPFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "", "query")
	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in message, got %v", err)
	}
}

func TestGenerateRequiresQuery(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1", Model: "m"})
	if _, err := client.Generate(context.Background(), "", "   "); err == nil {
		t.Fatal("expected error for blank query")
	}
}

func TestCartDescription(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 1, Nombre: "Camisa Azul Casual", Cantidad: 2},
		{ProductID: 3, Nombre: "Pantalón Jeans", Cantidad: 1},
	}
	got := CartDescription(lines)
	want := "2 x Camisa Azul Casual, 1 x Pantalón Jeans"
	if got != want {
		t.Fatalf("CartDescription = %q, want %q", got, want)
	}
	query := BuildQuery(lines)
	if !strings.Contains(query, want) {
		t.Fatalf("BuildQuery missing description: %q", query)
	}
}
