package api

import "time"

// GraphQL query structures for listing a user's own repositories

// RepositoryNode represents a repository in the GraphQL listing
type RepositoryNode struct {
	Name            string
	Description     *string
	URL             string
	IsFork          bool
	IsPrivate       bool
	UpdatedAt       time.Time
	PrimaryLanguage *struct {
		Name string
	}
}

// UserRepositoriesQuery lists the most recently updated repositories owned by a user.
// The rate limit is requested in the same query so no extra call is needed.
type UserRepositoriesQuery struct {
	User struct {
		Repositories struct {
			TotalCount int
			Nodes      []RepositoryNode
		} `graphql:"repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: UPDATED_AT, direction: DESC})"`
	} `graphql:"user(login: $login)"`
	RateLimit struct {
		Limit     int
		Remaining int
		ResetAt   time.Time
	}
}
