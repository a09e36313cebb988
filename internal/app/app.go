package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/swfz/gh-readme-projects/internal/api"
	"github.com/swfz/gh-readme-projects/internal/formatter"
	"github.com/swfz/gh-readme-projects/internal/models"
	"github.com/swfz/gh-readme-projects/internal/readme"
)

var summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

// App encapsulates the application logic
type App struct {
	client *api.Client
	config *Config
	logger zerolog.Logger
	fs     afero.Fs
	out    io.Writer
}

// Option customizes an App
type Option func(*App)

// WithFs sets the filesystem holding the README (the OS filesystem by default)
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithOutput sets where the summary is printed (stdout by default)
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// New creates a new application instance
func New(config *Config, logger zerolog.Logger, opts ...Option) (*App, error) {
	client, err := api.NewClient(api.Options{
		Token:      config.Token,
		RESTURL:    config.RESTURL,
		GraphQLURL: config.GraphQLURL,
		Host:       config.Host,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	a := &App{
		client: client,
		config: config,
		logger: logger,
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Run fetches the repositories, renders the section and rewrites the README
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("account", a.config.Account).
		Str("source", string(a.config.Source)).
		Bool("authenticated", a.config.Token != "").
		Msg("fetching repositories")

	repos, err := a.fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch repositories: %w", err)
	}

	section := formatter.BuildProjectsSection(repos, a.config.Account)

	surviving := formatter.FilterRepositories(repos, a.config.Account)
	a.logger.Debug().
		Int("fetched", len(repos)).
		Int("surviving", len(surviving)).
		Msg("filtered repositories")

	if readme.ContainsMarker(section) {
		a.logger.Warn().Msg("generated section contains README marker text; the next update may splice the wrong region")
	}

	if a.config.DryRun {
		fmt.Fprintln(a.out, section)
		if err := formatter.RenderPreview(a.out, surviving); err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		fmt.Fprintln(a.out, summaryStyle.Render(
			fmt.Sprintf("Dry run: %s not written (%d repositories fetched).", a.config.ReadmePath, len(repos))))
		return nil
	}

	if err := readme.UpdateFile(a.fs, a.config.ReadmePath, section); err != nil {
		return fmt.Errorf("failed to update README: %w", err)
	}

	fmt.Fprintln(a.out, summaryStyle.Render(fmt.Sprintf("README updated with %d repositories.", len(repos))))

	return nil
}

// fetch lists repositories with the configured API
func (a *App) fetch(ctx context.Context) ([]models.Repository, error) {
	if a.config.Source == SourceGraphQL {
		return a.client.FetchRepositoriesGraphQL(ctx, a.config.Account)
	}
	return a.client.FetchRepositories(ctx, a.config.Account)
}
