// Package github implements the outbound client for the GitHub repos API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devlink/internal/models"
	"devlink/internal/observability"
)

const defaultBaseURL = "https://api.github.com"

// reposPerPage is the fixed page size for profile repo lookups.
const reposPerPage = 5

// Client calls the GitHub API. Credentials come from configuration, not
// from the domain model.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewClient creates a GitHub API client. baseURL may be empty, in which
// case the public API endpoint is used.
func NewClient(baseURL, clientID, clientSecret string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// ListRepos fetches the first five of the user's repositories, ordered by
// creation date ascending (the user's oldest repos). The upstream JSON is
// propagated verbatim; any non-200 response is an upstream error.
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	if username == "" {
		return nil, models.NewValidationError("Github username is required")
	}

	q := url.Values{}
	q.Set("per_page", fmt.Sprintf("%d", reposPerPage))
	q.Set("sort", "created:asc")
	if c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "devlink")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewUpstreamError("No Github profile found", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		observability.GithubLookups.WithLabelValues("not_found").Inc()
		return nil, models.NewUpstreamError("No Github profile found", nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewUpstreamError("No Github profile found", err)
	}
	if !json.Valid(body) {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewUpstreamError("No Github profile found", nil)
	}

	observability.GithubLookups.WithLabelValues("ok").Inc()
	return json.RawMessage(body), nil
}
