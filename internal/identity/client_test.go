package identity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetUser(t *testing.T) {
	var gotMethod, gotPath, gotProject, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotProject = r.Header.Get(ProjectHeader)
		gotKey = r.Header.Get(KeyHeader)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-1","preferences":"{\"theme\":\"dark\"}","updatedAt":"2024-03-01T12:00:00Z"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "proj-1", "key-1", time.Second)
	user, err := c.GetUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %q, want GET", gotMethod)
	}
	if want := "/v1/users/user-1"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotProject != "proj-1" || gotKey != "key-1" {
		t.Errorf("auth headers = (%q, %q), want (proj-1, key-1)", gotProject, gotKey)
	}
	if user.ID != "user-1" {
		t.Errorf("ID = %q, want user-1", user.ID)
	}
	if user.Preferences != `{"theme":"dark"}` {
		t.Errorf("Preferences = %q", user.Preferences)
	}
	if user.UpdatedAt.IsZero() {
		t.Error("UpdatedAt is zero")
	}
}

func TestUpdatePreferences(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"id":"user-1","preferences":"{\"theme\":\"light\"}","updatedAt":"2024-03-02T08:30:00Z"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "proj-1", "key-1", time.Second)
	user, err := c.UpdatePreferences(context.Background(), "user-1", `{"theme":"light"}`)
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", gotMethod)
	}
	if want := "/v1/users/user-1/prefs"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}

	var payload map[string]string
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if payload["preferences"] != `{"theme":"light"}` {
		t.Errorf("payload preferences = %q", payload["preferences"])
	}
	if user.Preferences != `{"theme":"light"}` {
		t.Errorf("Preferences = %q", user.Preferences)
	}
}

func TestGetUserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "proj-1", "key-1", time.Second)
	_, err := c.GetUser(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestIdentityServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "proj-1", "key-1", time.Second)
	_, err := c.UpdatePreferences(context.Background(), "user-1", "{}")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Error("503 must not map to ErrUserNotFound")
	}
}
