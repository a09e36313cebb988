package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepository_IsProfileRepo(t *testing.T) {
	repo := Repository{Name: "octocat"}

	assert.True(t, repo.IsProfileRepo("octocat"))
	assert.False(t, repo.IsProfileRepo("Octocat"))
	assert.False(t, repo.IsProfileRepo("someone"))
}

func TestRepository_FormattedDate(t *testing.T) {
	repo := Repository{UpdatedAt: time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2026-10-17", repo.FormattedDate())

	assert.Equal(t, "-", (&Repository{}).FormattedDate())
}
