package app

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swfz/gh-readme-projects/internal/api"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	config, err := ParseConfig(nil, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultAccount, config.Account)
	assert.Empty(t, config.Token)
	assert.Equal(t, DefaultReadmePath, config.ReadmePath)
	assert.Equal(t, SourceREST, config.Source)
	assert.Equal(t, api.DefaultRESTURL, config.RESTURL)
	assert.Equal(t, api.DefaultGraphQLURL, config.GraphQLURL)
	assert.Equal(t, "github.com", config.Host)
	assert.False(t, config.DryRun)
	assert.False(t, config.Verbose)
}

func TestParseConfig_Environment(t *testing.T) {
	config, err := ParseConfig(nil, envFrom(map[string]string{
		"GITHUB_ACTOR":       "octocat",
		"GITHUB_TOKEN":       "ghs_token",
		"GITHUB_API_URL":     "https://ghe.example.com/api/v3",
		"GITHUB_GRAPHQL_URL": "https://ghe.example.com/api/graphql",
	}))
	require.NoError(t, err)

	assert.Equal(t, "octocat", config.Account)
	assert.Equal(t, "ghs_token", config.Token)
	assert.Equal(t, "https://ghe.example.com/api/v3", config.RESTURL)
	assert.Equal(t, "https://ghe.example.com/api/graphql", config.GraphQLURL)
	assert.Equal(t, "ghe.example.com", config.Host)
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{"-a", "someone", "--readme", "docs/README.md", "-n", "-v", "--source", "graphql"}

	config, err := ParseConfig(args, envFrom(map[string]string{
		"GITHUB_ACTOR": "octocat",
		"GITHUB_TOKEN": "tok",
	}))
	require.NoError(t, err)

	assert.Equal(t, "someone", config.Account)
	assert.Equal(t, "docs/README.md", config.ReadmePath)
	assert.Equal(t, SourceGraphQL, config.Source)
	assert.True(t, config.DryRun)
	assert.True(t, config.Verbose)
}

func TestParseConfig_GHAuthFallback(t *testing.T) {
	original := tokenForHost
	t.Cleanup(func() { tokenForHost = original })

	var askedHost string
	tokenForHost = func(host string) (string, string) {
		askedHost = host
		return "gh_cli_token", "oauth_token"
	}

	config, err := ParseConfig([]string{"--gh-auth"}, envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, "gh_cli_token", config.Token)
	assert.Equal(t, "github.com", askedHost)

	// GITHUB_TOKEN wins over the gh CLI token
	config, err = ParseConfig([]string{"--gh-auth"}, envFrom(map[string]string{"GITHUB_TOKEN": "env"}))
	require.NoError(t, err)
	assert.Equal(t, "env", config.Token)

	// Without the flag the gh CLI is never consulted
	askedHost = ""
	config, err = ParseConfig(nil, envFrom(nil))
	require.NoError(t, err)
	assert.Empty(t, config.Token)
	assert.Empty(t, askedHost)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "unknown source", args: []string{"--source", "soap"}},
		{name: "graphql without token", args: []string{"--source", "graphql"}},
		{name: "empty readme", args: []string{"--readme", ""}},
		{name: "positional argument", args: []string{"extra"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "bad API URL", env: map[string]string{"GITHUB_API_URL": "::"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.args, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig([]string{"--help"}, envFrom(nil))
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
