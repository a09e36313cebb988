package formatter

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/swfz/gh-readme-projects/internal/models"
)

// RenderPreview displays repositories in a terminal table.
// Used by dry runs to show what the README section will contain.
func RenderPreview(w io.Writer, repos []models.Repository) error {
	table := tablewriter.NewWriter(w)

	table.Header("REPO", "LANGUAGE", "UPDATED", "DESCRIPTION")

	for i, repo := range repos {
		if i == MaxRows {
			break
		}

		language := repo.Language
		if language == "" {
			language = EmptyCell
		}

		row := []interface{}{
			TruncateString(repo.Name, 30),
			language,
			repo.FormattedDate(),
			TruncateWithEllipsis(lineBreaks.Replace(repo.Description), 60),
		}
		if err := table.Append(row...); err != nil {
			return err
		}
	}

	return table.Render()
}
