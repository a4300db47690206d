package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"showcase/internal/models"
)

func TestListRecentRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("per_page"); got != "5" {
			t.Errorf("expected per_page=5, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no auth header without a token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "hello-world", "html_url": "https://github.com/octocat/hello-world", "stargazers_count": 80, "language": "Go"},
			{"id": 2, "name": "spoon-knife", "html_url": "https://github.com/octocat/spoon-knife"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	repos, err := client.ListRecentRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("expected 2 repos, got %d", len(repos))
	}
	if repos[0].Name != "hello-world" || repos[0].Stargazers != 80 {
		t.Fatalf("unexpected first repo: %+v", repos[0])
	}
}

func TestListRecentReposSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer gh-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "gh-token")
	if _, err := client.ListRecentRepos(context.Background(), "octocat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListRecentReposUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.ListRecentRepos(context.Background(), "ghost")
	if !models.IsCode(err, "NOT_FOUND") {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestListRecentReposUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.ListRecentRepos(context.Background(), "octocat")
	if !models.IsCode(err, "INTERNAL_ERROR") {
		t.Fatalf("expected internal app error, got %#v", err)
	}
}
