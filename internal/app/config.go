package app

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/spf13/pflag"

	"github.com/swfz/gh-readme-projects/internal/api"
)

const (
	// DefaultAccount is used when neither --account nor GITHUB_ACTOR is set
	DefaultAccount = "simionidev"

	// DefaultReadmePath is relative to the working directory (the repository root in CI)
	DefaultReadmePath = "README.md"
)

// Source selects the API used to list repositories
type Source string

const (
	SourceREST    Source = "rest"
	SourceGraphQL Source = "graphql"
)

// tokenForHost resolves the gh CLI token; replaced in tests
var tokenForHost = auth.TokenForHost

// Config holds the application configuration
type Config struct {
	Account    string // Account whose repositories are listed
	Token      string // Optional API token
	ReadmePath string // README file to rewrite
	Source     Source // REST (default) or GraphQL
	RESTURL    string // REST base URL
	GraphQLURL string // GraphQL endpoint
	Host       string // GitHub host derived from RESTURL
	GHAuth     bool   // Fall back to the gh CLI token
	DryRun     bool   // Print instead of writing the README
	Verbose    bool   // Enable verbose output
}

// ParseConfig parses command-line flags and the environment and validates the result.
// getenv is usually os.Getenv.
func ParseConfig(args []string, getenv func(string) string) (*Config, error) {
	flags := pflag.NewFlagSet("gh-readme-projects", pflag.ContinueOnError)

	config := &Config{}
	var source string

	flags.StringVarP(&config.Account, "account", "a", "", "GitHub account to list (default $GITHUB_ACTOR or "+DefaultAccount+")")
	flags.StringVarP(&config.ReadmePath, "readme", "r", DefaultReadmePath, "README file to update")
	flags.StringVar(&source, "source", string(SourceREST), "API used to list repositories: rest or graphql")
	flags.BoolVar(&config.GHAuth, "gh-auth", false, "Use the gh CLI token when GITHUB_TOKEN is not set")
	flags.BoolVarP(&config.DryRun, "dry-run", "n", false, "Print the generated section instead of writing the README")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose output")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	// Account: flag, then GITHUB_ACTOR, then the fixed fallback
	config.Account = strings.TrimSpace(config.Account)
	if config.Account == "" {
		config.Account = strings.TrimSpace(getenv("GITHUB_ACTOR"))
	}
	if config.Account == "" {
		config.Account = DefaultAccount
	}

	config.RESTURL = getenv("GITHUB_API_URL")
	if config.RESTURL == "" {
		config.RESTURL = api.DefaultRESTURL
	}

	config.GraphQLURL = getenv("GITHUB_GRAPHQL_URL")
	if config.GraphQLURL == "" {
		config.GraphQLURL = api.DefaultGraphQLURL
	}

	host, err := hostFromAPIURL(config.RESTURL)
	if err != nil {
		return nil, err
	}
	config.Host = host

	config.Token = getenv("GITHUB_TOKEN")
	if config.Token == "" && config.GHAuth {
		config.Token, _ = tokenForHost(config.Host)
	}

	// Validate source
	switch Source(source) {
	case SourceREST, SourceGraphQL:
		config.Source = Source(source)
	default:
		return nil, fmt.Errorf("--source must be %q or %q, got %q", SourceREST, SourceGraphQL, source)
	}

	if config.Source == SourceGraphQL && config.Token == "" {
		return nil, errors.New("--source graphql requires GITHUB_TOKEN (or --gh-auth)")
	}

	if config.ReadmePath == "" {
		return nil, errors.New("--readme must not be empty")
	}

	return config, nil
}

// hostFromAPIURL maps an API base URL to the GitHub host it serves
// (https://api.github.com -> github.com, https://ghe.example.com/api/v3 -> ghe.example.com)
func hostFromAPIURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid GITHUB_API_URL %q: %w", raw, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("invalid GITHUB_API_URL %q: missing host", raw)
	}

	return strings.TrimPrefix(u.Hostname(), "api."), nil
}
