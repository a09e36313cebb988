package models

import "time"

// Repository represents a GitHub repository as returned by the listing APIs
type Repository struct {
	Name        string    // Repository name only (unique per owner)
	Description string    // Empty when the API returns null
	Language    string    // Primary language, empty when the API returns null
	HTMLURL     string    // Absolute URL of the repository page
	Fork        bool      // True for forks
	Private     bool      // True for private repositories
	UpdatedAt   time.Time // Last update; the API already sorts by it
}

// IsProfileRepo reports whether this is the account's profile README repository
// (the repository named exactly like its owner). The comparison is case-sensitive.
func (r *Repository) IsProfileRepo(account string) bool {
	return r.Name == account
}

// FormattedDate returns the last update date in YYYY-MM-DD format
func (r *Repository) FormattedDate() string {
	if r.UpdatedAt.IsZero() {
		return "-"
	}
	return r.UpdatedAt.Format("2006-01-02")
}
