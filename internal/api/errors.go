package api

import "fmt"

// FetchError indicates the repository listing endpoint answered with a non-2xx status
type FetchError struct {
	StatusCode int
	StatusText string
	Err        error // Underlying go-github error, if any
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("GitHub API: %d %s", e.StatusCode, e.StatusText)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
