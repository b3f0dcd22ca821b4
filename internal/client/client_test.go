package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kdh990315/artlibro-cli/internal/post"
)

func TestCreateComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/posts/42/comments" {
			t.Errorf("path = %q, want /api/posts/42/comments", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer testtoken" {
			t.Error("expected Bearer testtoken")
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header")
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		var req map[string]string
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req["comment"] != "hello" {
			t.Errorf("comment = %q, want hello", req["comment"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"id":        "c1",
			"comment":   "hello",
			"createdAt": "2024-01-01T00:00:00Z",
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")
	created, err := c.CreateComment("42", "hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "c1" {
		t.Errorf("id = %q, want c1", created.ID)
	}
	if created.Comment != "hello" {
		t.Errorf("comment = %q, want hello", created.Comment)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !created.CreatedAt.Equal(want) {
		t.Errorf("createdAt = %v, want %v", created.CreatedAt, want)
	}
}

func TestDeleteComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/api/comments/c1" {
			t.Errorf("path = %q, want /api/comments/c1", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")
	if err := c.DeleteComment("c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestGetPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/posts/42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(post.Summary{
			Title:         "Hand-bound sketchbooks",
			CoverImage:    "/images/covers/42.jpg",
			PublishedDate: "2024-01-01",
			Author:        "Alice",
			CommentCount:  3,
			LikeCount:     7,
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")
	s, err := c.GetPost("42")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.Title != "Hand-bound sketchbooks" {
		t.Errorf("title = %q", s.Title)
	}
	if s.CommentCount != 3 || s.LikeCount != 7 {
		t.Errorf("counts = %d/%d, want 3/7", s.CommentCount, s.LikeCount)
	}
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/me" {
			t.Errorf("path = %q, want /api/me", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"name": "Alice"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")
	p, err := c.Me()
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if p.Name != "Alice" {
		t.Errorf("name = %q, want Alice", p.Name)
	}
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if err := json.NewEncoder(w).Encode(map[string]string{"error": "db exploded"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")
	_, err := c.CreateComment("42", "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "db exploded" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "badtoken")
	if err := c.DeleteComment("c1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPostIDEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/posts/weird%2Fid" {
			t.Errorf("path = %q", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(post.Summary{}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")
	if _, err := c.GetPost("weird/id"); err != nil {
		t.Fatalf("get: %v", err)
	}
}
