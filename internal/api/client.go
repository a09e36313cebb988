package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	ghapi "github.com/cli/go-gh/v2/pkg/api"
	"github.com/google/go-github/v82/github"
	"github.com/rs/zerolog"
	"github.com/shurcooL/graphql"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/swfz/gh-readme-projects/internal/models"
)

const (
	DefaultRESTURL    = "https://api.github.com/"
	DefaultGraphQLURL = "https://api.github.com/graphql"
	DefaultHost       = "github.com"

	// PageSize is the single page requested from the listing endpoint
	PageSize = 100
)

// Options configures the GitHub client
type Options struct {
	Token      string // Optional; no Authorization header is sent when empty
	RESTURL    string // REST base URL (defaults to DefaultRESTURL)
	GraphQLURL string // GraphQL endpoint (defaults to DefaultGraphQLURL)
	Host       string // Host the token belongs to, used by the gh HTTP client
	Logger     zerolog.Logger
}

// Client wraps the GitHub REST and GraphQL clients with rate limiting
type Client struct {
	restClient    *github.Client
	graphqlClient *graphql.Client // nil without a token
	rateLimiter   *rate.Limiter
	logger        zerolog.Logger
}

// NewClient creates a new GitHub API client
func NewClient(opts Options) (*Client, error) {
	httpClient := &http.Client{}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	restClient := github.NewClient(httpClient)
	if opts.RESTURL != "" {
		baseURL, err := parseBaseURL(opts.RESTURL)
		if err != nil {
			return nil, err
		}
		restClient.BaseURL = baseURL
	}

	// GraphQL always needs a token, so only build it when one is available
	var graphqlClient *graphql.Client
	if opts.Token != "" {
		host := opts.Host
		if host == "" {
			host = DefaultHost
		}

		ghHTTPClient, err := ghapi.NewHTTPClient(ghapi.ClientOptions{
			AuthToken: opts.Token,
			Host:      host,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}

		endpoint := opts.GraphQLURL
		if endpoint == "" {
			endpoint = DefaultGraphQLURL
		}
		graphqlClient = graphql.NewClient(endpoint, ghHTTPClient)
	}

	// Rate limiter: 1 request per second with a burst of 10
	rateLimiter := rate.NewLimiter(rate.Every(time.Second), 10)

	return &Client{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		rateLimiter:   rateLimiter,
		logger:        opts.Logger,
	}, nil
}

// FetchRepositories lists up to PageSize repositories owned by account,
// most recently updated first, with one REST call
func (c *Client) FetchRepositories(ctx context.Context, account string) ([]models.Repository, error) {
	if account == "" {
		return nil, errors.New("account must not be empty")
	}

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	opt := &github.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: PageSize},
	}

	c.logger.Debug().Str("account", account).Int("per_page", PageSize).Msg("listing repositories (REST)")

	repos, resp, err := c.restClient.Repositories.ListByUser(ctx, account, opt)
	if resp != nil {
		c.logRateLimit(RateLimitFromResponse(resp))
	}

	if err != nil {
		// Handle non-2xx status codes
		if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
			return nil, &FetchError{
				StatusCode: resp.StatusCode,
				StatusText: statusText(resp.Response),
				Err:        err,
			}
		}
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	result := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}

		c.logger.Debug().
			Str("repo", repo.GetName()).
			Bool("fork", repo.GetFork()).
			Bool("private", repo.GetPrivate()).
			Msg("received repository")

		result = append(result, models.Repository{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			Language:    repo.GetLanguage(),
			HTMLURL:     repo.GetHTMLURL(),
			Fork:        repo.GetFork(),
			Private:     repo.GetPrivate(),
			UpdatedAt:   repo.GetUpdatedAt().Time,
		})
	}

	return result, nil
}

// FetchRepositoriesGraphQL lists the same repositories as FetchRepositories
// with a single GraphQL query. It requires a token.
func (c *Client) FetchRepositoriesGraphQL(ctx context.Context, account string) ([]models.Repository, error) {
	if c.graphqlClient == nil {
		return nil, errors.New("the GraphQL API requires a token")
	}
	if account == "" {
		return nil, errors.New("account must not be empty")
	}

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	var query UserRepositoriesQuery

	variables := map[string]interface{}{
		"login": graphql.String(account),
	}

	c.logger.Debug().Str("account", account).Msg("listing repositories (GraphQL)")

	if err := c.graphqlClient.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("GraphQL query failed: %w", err)
	}

	c.logRateLimit(&RateLimitInfo{
		Limit:     query.RateLimit.Limit,
		Remaining: query.RateLimit.Remaining,
		ResetAt:   query.RateLimit.ResetAt,
	})

	nodes := query.User.Repositories.Nodes
	c.logger.Debug().
		Int("total", query.User.Repositories.TotalCount).
		Int("received", len(nodes)).
		Msg("GraphQL listing done")

	result := make([]models.Repository, 0, len(nodes))
	for _, node := range nodes {
		repo := models.Repository{
			Name:      node.Name,
			HTMLURL:   node.URL,
			Fork:      node.IsFork,
			Private:   node.IsPrivate,
			UpdatedAt: node.UpdatedAt,
		}
		if node.Description != nil {
			repo.Description = *node.Description
		}
		if node.PrimaryLanguage != nil {
			repo.Language = node.PrimaryLanguage.Name
		}
		result = append(result, repo)
	}

	return result, nil
}

// parseBaseURL parses a REST base URL; go-github requires the trailing slash
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", raw)
	}

	return u, nil
}

// statusText returns the reason phrase of a response ("Not Found" for 404)
func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
