package api

import (
	"time"

	"github.com/google/go-github/v82/github"
)

// RateLimitInfo contains information about GitHub API rate limits
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RateLimitFromResponse reads the X-RateLimit-* headers go-github already parsed.
// Returns nil when the response carried no rate limit headers.
func RateLimitFromResponse(resp *github.Response) *RateLimitInfo {
	if resp == nil || resp.Rate.Limit == 0 {
		return nil
	}

	return &RateLimitInfo{
		Limit:     resp.Rate.Limit,
		Remaining: resp.Rate.Remaining,
		ResetAt:   resp.Rate.Reset.Time,
	}
}

// logRateLimit reports the remaining quota at debug level
func (c *Client) logRateLimit(info *RateLimitInfo) {
	if info == nil {
		return
	}

	c.logger.Debug().
		Int("limit", info.Limit).
		Int("remaining", info.Remaining).
		Time("reset_at", info.ResetAt).
		Msg("GitHub API rate limit")
}
