package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/qa-board/internal/handler"
	"github.com/msomdec/qa-board/internal/repository/sqlite"
	"github.com/msomdec/qa-board/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	registry := service.NewRegistryService(db.Users(), 4)
	questions := service.NewQuestionService(db.Questions(), db.Users())
	answers := service.NewAnswerService(db.Answers(), db.Questions(), db.Users())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, registry, questions, answers)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, username, password string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if username != "" {
		req.SetBasicAuth(username, password)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func registerUser(t *testing.T, srv *httptest.Server, username, password, role string) {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/register", map[string]string{
		"username": username,
		"password": password,
		"role":     role,
	}, "", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", username, resp.StatusCode)
	}
}

func createQuestion(t *testing.T, srv *httptest.Server, username, password string) int64 {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/questions", map[string]string{
		"title": "Test Question Title",
		"body":  "This is a test question.",
	}, username, password)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create question: expected 201, got %d", resp.StatusCode)
	}
	var dto struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	return dto.ID
}

func TestHandleHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	srv := newTestServer(t)

	registerUser(t, srv, "dup", "password", "user")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/register", map[string]string{
		"username": "dup",
		"password": "other",
	}, "", "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", resp.StatusCode)
	}
}

func TestCreateQuestion_RequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/questions", map[string]string{
		"title": "T", "body": "B",
	}, "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/questions", map[string]string{
		"title": "T", "body": "B",
	}, "ghost", "nope")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad credentials, got %d", resp.StatusCode)
	}
}

func TestUpdateQuestion_Authorization(t *testing.T) {
	srv := newTestServer(t)

	registerUser(t, srv, "u1", "password1", "user")
	registerUser(t, srv, "u2", "password2", "user")
	registerUser(t, srv, "admin1", "adminpass", "admin")

	id := createQuestion(t, srv, "u1", "password1")
	url := fmt.Sprintf("%s/api/questions/%d", srv.URL, id)

	// Owner may update.
	resp := doJSON(t, http.MethodPut, url, map[string]string{"title": "T2", "body": "B2"}, "u1", "password1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner update: expected 200, got %d", resp.StatusCode)
	}

	// Admin may update anything.
	resp = doJSON(t, http.MethodPut, url, map[string]string{"title": "T3", "body": "B3"}, "admin1", "adminpass")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin update: expected 200, got %d", resp.StatusCode)
	}

	// A third user is rejected.
	resp = doJSON(t, http.MethodPut, url, map[string]string{"title": "T4", "body": "B4"}, "u2", "password2")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("stranger update: expected 403, got %d", resp.StatusCode)
	}

	// The admin's version sticks.
	getResp := doJSON(t, http.MethodGet, url, nil, "", "")
	var dto struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&dto); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	if dto.Title != "T3" {
		t.Fatalf("expected title T3, got %q", dto.Title)
	}
}

func TestDeleteQuestion_AdminGate(t *testing.T) {
	srv := newTestServer(t)

	registerUser(t, srv, "u1", "password1", "user")
	registerUser(t, srv, "admin1", "adminpass", "admin")

	id := createQuestion(t, srv, "u1", "password1")

	// Answer under the question so the cascade is observable.
	resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/questions/%d/answers", srv.URL, id),
		map[string]string{"content": "This is a test answer."}, "u1", "password1")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create answer: expected 201, got %d", resp.StatusCode)
	}

	url := fmt.Sprintf("%s/api/questions/%d", srv.URL, id)

	// The services do not check the actor on permanent delete; the
	// routing layer must.
	resp = doJSON(t, http.MethodDelete, url, nil, "u1", "password1")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin delete: expected 403, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodDelete, url, nil, "admin1", "adminpass")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("admin delete: expected 204, got %d", resp.StatusCode)
	}

	getResp := doJSON(t, http.MethodGet, url, nil, "", "")
	if getResp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", getResp.StatusCode)
	}

	answersResp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/questions/%d/answers", srv.URL, id), nil, "", "")
	var answers []json.RawMessage
	if err := json.NewDecoder(answersResp.Body).Decode(&answers); err != nil {
		t.Fatalf("decode answers: %v", err)
	}
	if len(answers) != 0 {
		t.Fatalf("expected no answers after cascade, got %d", len(answers))
	}
}

func TestDisconnectQuestion(t *testing.T) {
	srv := newTestServer(t)

	registerUser(t, srv, "u1", "password1", "user")
	registerUser(t, srv, "admin1", "adminpass", "admin")

	id := createQuestion(t, srv, "u1", "password1")
	url := fmt.Sprintf("%s/api/questions/%d/disconnect", srv.URL, id)

	// Even an admin cannot disconnect someone else's content.
	resp := doJSON(t, http.MethodPost, url, nil, "admin1", "adminpass")
	var result map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode disconnect result: %v", err)
	}
	if result["disconnected"] {
		t.Fatal("expected admin disconnect not to apply")
	}

	resp = doJSON(t, http.MethodPost, url, nil, "u1", "password1")
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode disconnect result: %v", err)
	}
	if !result["disconnected"] {
		t.Fatal("expected author disconnect to apply")
	}

	getResp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/questions/%d", srv.URL, id), nil, "", "")
	var dto struct {
		Author string `json:"author"`
		Title  string `json:"title"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&dto); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	if dto.Author != "unknown" {
		t.Fatalf("expected author unknown, got %q", dto.Author)
	}
	if dto.Title != "Test Question Title" {
		t.Fatal("expected content preserved after disconnect")
	}
}

func TestCreateAnswer_MissingQuestion(t *testing.T) {
	srv := newTestServer(t)

	registerUser(t, srv, "u1", "password1", "user")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/questions/99999/answers",
		map[string]string{"content": "Orphan"}, "u1", "password1")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing parent question, got %d", resp.StatusCode)
	}
}
