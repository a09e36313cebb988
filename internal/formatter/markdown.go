package formatter

import (
	"fmt"
	"strings"

	"github.com/swfz/gh-readme-projects/internal/models"
)

const (
	// MaxRows is the number of repositories rendered in the table
	MaxRows = 20

	Header    = "| Repositório | Descrição | Linguagem |"
	Separator = "| :---------- | :-------- | :-------- |"

	// EmptyPlaceholder replaces the table when no repository survives filtering
	EmptyPlaceholder = "\n*Nenhum repositório público encontrado.*\n"
)

// FilterRepositories drops the profile repository, forks and private repositories.
// The received order (most recently updated first) is preserved.
func FilterRepositories(repos []models.Repository, account string) []models.Repository {
	filtered := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.IsProfileRepo(account) || repo.Fork || repo.Private {
			continue
		}
		filtered = append(filtered, repo)
	}
	return filtered
}

// FormatRow renders one repository as a Markdown table row
func FormatRow(repo models.Repository) string {
	name := fmt.Sprintf("[%s](%s)", EscapeCell(repo.Name), repo.HTMLURL)
	return fmt.Sprintf("| %s | %s | %s |", name, EscapeCell(repo.Description), EscapeCell(repo.Language))
}

// BuildProjectsSection renders the block placed between the README markers.
// Only the first MaxRows surviving repositories get a row; a note with the
// total follows when the list was cut.
func BuildProjectsSection(repos []models.Repository, account string) string {
	filtered := FilterRepositories(repos, account)
	if len(filtered) == 0 {
		return EmptyPlaceholder
	}

	shown := filtered
	if len(shown) > MaxRows {
		shown = shown[:MaxRows]
	}

	lines := make([]string, 0, len(shown)+6)
	lines = append(lines, "", Header, Separator)
	for _, repo := range shown {
		lines = append(lines, FormatRow(repo))
	}
	lines = append(lines, "")

	if len(filtered) > MaxRows {
		lines = append(lines,
			fmt.Sprintf("<sub>*Mostrando os %d mais recentes. Total: %d repositórios.*</sub>", MaxRows, len(filtered)),
			"",
		)
	}

	return strings.Join(lines, "\n")
}
