// Package github fetches public repository listings from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"showcase/internal/models"
)

// RepoSummary is the trimmed repository view returned to clients.
type RepoSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stargazers  int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Language    string `json:"language"`
	CreatedAt   string `json:"created_at"`
}

// Client talks to the GitHub API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a GitHub client against the given API base URL
// (https://api.github.com in production, a test server in tests). An empty
// token leaves requests unauthenticated at GitHub's lower rate limit.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListRecentRepos returns the user's five most recently created public
// repositories. An unknown username maps to a NotFound error so callers can
// distinguish "no GitHub profile" from transport failures.
func (c *Client) ListRecentRepos(ctx context.Context, username string) ([]RepoSummary, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "showcase-server")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return nil, &models.AppError{Code: "NOT_FOUND", Message: "No GitHub profile found for this user"}
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return nil, models.NewInternalError(fmt.Errorf("github api returned status %d", resp.StatusCode))
	}

	var repos []RepoSummary
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, models.NewInternalError(err)
	}
	return repos, nil
}
