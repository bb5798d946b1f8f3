package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gong130/Server-of-iNews/auth"
	"github.com/Gong130/Server-of-iNews/middleware"
	"github.com/Gong130/Server-of-iNews/models"
	"github.com/gin-gonic/gin"
)

type mockNewsStore struct {
	items     []models.News
	err       error
	lastLimit int
}

func (m *mockNewsStore) ListRecent(ctx context.Context, limit int) ([]models.News, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.items) {
		return m.items[:limit], nil
	}
	return m.items, nil
}

// newNewsRouter mirrors the production wiring: the news route sits behind
// the token middleware backed by a real auth service.
func newNewsRouter(t *testing.T, newsStore *mockNewsStore) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserStore()
	svc := auth.NewService(users, "test-secret", time.Hour, testLogger())
	if err := svc.Register(context.Background(), "alice", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	h := NewNewsHandler(newsStore, testLogger())
	r := gin.New()
	protected := r.Group("/api")
	protected.Use(middleware.Auth(svc))
	protected.GET("/news", h.List)
	return r, token
}

func getNews(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetNewsRequiresToken(t *testing.T) {
	r, _ := newNewsRouter(t, &mockNewsStore{})

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not-a-token",
	} {
		w := getNews(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
	}
}

func TestGetNewsReturnsItemsNewestFirst(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	newsStore := &mockNewsStore{items: []models.News{
		{ID: 3, Title: "third", Author: "系统", CreatedAt: now},
		{ID: 2, Title: "second", Author: "后端", CreatedAt: now.Add(-time.Hour)},
		{ID: 1, Title: "first", Author: "产品", CreatedAt: now.Add(-2 * time.Hour)},
	}}
	r, token := newNewsRouter(t, newsStore)

	w := getNews(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if newsStore.lastLimit != 50 {
		t.Fatalf("expected limit 50, got %d", newsStore.lastLimit)
	}

	var resp []struct {
		ID        uint    `json:"id"`
		Title     string  `json:"title"`
		Author    string  `json:"author"`
		CreatedAt *string `json:"created_at"`
		Content   string  `json:"content"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 items, got %d", len(resp))
	}
	if resp[0].ID != 3 || resp[2].ID != 1 {
		t.Fatalf("unexpected order: %+v", resp)
	}
	if resp[0].CreatedAt == nil {
		t.Fatalf("expected created_at to be set")
	}
	if _, err := time.Parse(time.RFC3339, *resp[0].CreatedAt); err != nil {
		t.Fatalf("created_at not RFC3339: %v", err)
	}
}

func TestGetNewsNullTimestamp(t *testing.T) {
	newsStore := &mockNewsStore{items: []models.News{
		{ID: 1, Title: "no timestamp", Author: "系统"},
	}}
	r, token := newNewsRouter(t, newsStore)

	w := getNews(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if v, ok := resp[0]["created_at"]; !ok || v != nil {
		t.Fatalf("expected created_at to be null, got %v", v)
	}
}

func TestGetNewsEmptyList(t *testing.T) {
	r, token := newNewsRouter(t, &mockNewsStore{})

	w := getNews(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestGetNewsStorageError(t *testing.T) {
	r, token := newNewsRouter(t, &mockNewsStore{err: errors.New("connection refused")})

	w := getNews(r, "Bearer "+token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
