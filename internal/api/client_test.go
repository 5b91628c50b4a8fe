package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/veritext/veritext/internal/model"
)

func testClient(url string) *Client {
	return NewClient(model.APIConfig{
		BaseURL:           url,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
		Burst:             1000,
	})
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"title is required"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetDocument(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Message != "title is required" || apiErr.StatusCode != 400 {
		t.Errorf("got %+v, want envelope message with status 400", apiErr)
	}
}

func TestClient_ErrorWithoutEnvelopeUsesStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetUser(context.Background(), 1)
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "Internal Server Error" {
		t.Errorf("message = %q, want HTTP status text", apiErr.Message)
	}
}

func TestClient_NoContentResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := testClient(server.URL).ChangePassword(context.Background(), 1, model.ChangePasswordRequest{}); err != nil {
		t.Errorf("204 response should succeed with no body, got %v", err)
	}
}

func TestClient_DeleteDocumentIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Document not found"}`))
	}))
	defer server.Close()

	if err := testClient(server.URL).DeleteDocument(context.Background(), 99); err != nil {
		t.Errorf("delete of a missing document should succeed, got %v", err)
	}
}

func TestClient_DeleteDocumentRealFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer server.Close()

	if err := testClient(server.URL).DeleteDocument(context.Background(), 99); err == nil {
		t.Error("non-not-found failures must still surface")
	}
}

func TestClient_LoginResolvesFullUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/login/":
			_, _ = w.Write([]byte(`{"user_id":42}`))
		case "/api/users/42/":
			_, _ = w.Write([]byte(`{"user_id":42,"username":"ada","email":"ada@example.com"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	user, err := testClient(server.URL).Login(context.Background(), model.LoginRequest{Identifier: "ada", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.UserID != 42 || user.Username != "ada" {
		t.Errorf("Login returned %+v, want resolved user 42/ada", user)
	}
}

func TestClient_RoutesAndPrefix(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotMethod = r.Method
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).ListDocuments(context.Background(), 3); err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/documents/?user_id=3" {
		t.Errorf("request = %s %s, want GET /api/documents/?user_id=3", gotMethod, gotPath)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"404 status", &Error{StatusCode: 404, Message: "gone"}, true},
		{"message match", &Error{StatusCode: 400, Message: "Document not found"}, true},
		{"other api error", &Error{StatusCode: 500, Message: "boom"}, false},
		{"non-api error", context.Canceled, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
