package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KarimovRD/fullstack-todo/backend/internal/common/config"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
)

func setupApp(t *testing.T) *App {
	t.Helper()

	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}

	cfg := config.TodoConfig{
		HTTPPort:       "8000",
		CORSOrigin:     "http://localhost:5173",
		RequestTimeout: 5 * time.Second,
	}

	return New(cfg, log)
}

func doRequest(t *testing.T, a *App, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
}

func TestApp_FullUserJourney(t *testing.T) {
	a := setupApp(t)

	rec := doRequest(t, a, http.MethodPost, "/register", "", `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var msg map[string]string
	decodeBody(t, rec, &msg)
	if msg["message"] != "User registered successfully" {
		t.Errorf("register: unexpected message %q", msg["message"])
	}

	rec = doRequest(t, a, http.MethodPost, "/login", "", `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var tok map[string]string
	decodeBody(t, rec, &tok)
	if tok["token"] != "ecila_token" {
		t.Fatalf("login: expected token %q, got %q", "ecila_token", tok["token"])
	}
	token := tok["token"]

	rec = doRequest(t, a, http.MethodGet, "/protected", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("protected: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &msg)
	if msg["message"] != "Hello alice, you have accessed a protected route!" {
		t.Errorf("protected: unexpected message %q", msg["message"])
	}

	rec = doRequest(t, a, http.MethodPost, "/todos", token, `{"title":"buy milk"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create todo: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID      int        `json:"id"`
		Title   string     `json:"title"`
		Done    bool       `json:"done"`
		DueDate *time.Time `json:"due_date"`
	}
	decodeBody(t, rec, &created)
	if created.ID != 1 || created.Title != "buy milk" || created.Done || created.DueDate != nil {
		t.Errorf("create todo: unexpected item %+v", created)
	}

	rec = doRequest(t, a, http.MethodGet, "/todos", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list todos: expected 200, got %d", rec.Code)
	}
	var items []json.RawMessage
	decodeBody(t, rec, &items)
	if len(items) != 1 {
		t.Fatalf("list todos: expected 1 item, got %d", len(items))
	}

	rec = doRequest(t, a, http.MethodDelete, "/todos/1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete todo: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &msg)
	if msg["message"] != "Todo deleted" {
		t.Errorf("delete todo: unexpected message %q", msg["message"])
	}

	rec = doRequest(t, a, http.MethodGet, "/todos", token, "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("list after delete: expected empty array, got %q", body)
	}
}

func TestApp_DuplicateRegister(t *testing.T) {
	a := setupApp(t)

	rec := doRequest(t, a, http.MethodPost, "/register", "", `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, a, http.MethodPost, "/register", "", `{"username":"alice","password":"other"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second register: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["detail"] != "Username already exists" {
		t.Errorf("unexpected detail: %q", body["detail"])
	}
}

func TestApp_LoginFailures(t *testing.T) {
	a := setupApp(t)

	doRequest(t, a, http.MethodPost, "/register", "", `{"username":"alice","password":"pw1"}`)

	rec := doRequest(t, a, http.MethodPost, "/login", "", `{"username":"alice","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["detail"] != "Invalid credentials" {
		t.Errorf("unexpected detail: %q", body["detail"])
	}

	rec = doRequest(t, a, http.MethodPost, "/login", "", `{"username":"ghost","password":"pw1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: expected 401, got %d", rec.Code)
	}
}

func TestApp_ProtectedRequiresAuth(t *testing.T) {
	a := setupApp(t)

	rec := doRequest(t, a, http.MethodGet, "/protected", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["detail"] != "Missing Authorization header" {
		t.Errorf("unexpected detail: %q", body["detail"])
	}

	rec = doRequest(t, a, http.MethodGet, "/protected", "bogus", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", rec.Code)
	}
	decodeBody(t, rec, &body)
	if body["detail"] != "Invalid token" {
		t.Errorf("unexpected detail: %q", body["detail"])
	}
}

func TestApp_RootBanner(t *testing.T) {
	a := setupApp(t)

	rec := doRequest(t, a, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var msg map[string]string
	decodeBody(t, rec, &msg)
	if msg["message"] != "Hello, backend is running!" {
		t.Errorf("unexpected message: %q", msg["message"])
	}

	rec = doRequest(t, a, http.MethodGet, "/no-such-route", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unrouted path: expected 404, got %d", rec.Code)
	}
}

func TestApp_Health(t *testing.T) {
	a := setupApp(t)

	rec := doRequest(t, a, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("unexpected status: %q", body["status"])
	}
}

func TestApp_CORSPreflight(t *testing.T) {
	a := setupApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow origin: %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("unexpected allow credentials: %q", got)
	}
}

func TestApp_CORSActualRequest(t *testing.T) {
	a := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow origin: %q", got)
	}
}

func TestApp_TraceIDHeader(t *testing.T) {
	a := setupApp(t)

	rec := doRequest(t, a, http.MethodGet, "/", "", "")
	if rec.Header().Get("X-Trace-ID") == "" {
		t.Error("expected X-Trace-ID response header")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec = httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Trace-ID"); got != "trace-123" {
		t.Errorf("expected incoming trace id to be echoed, got %q", got)
	}
}
