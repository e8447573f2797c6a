// Package joburl reduces the many shapes of LinkedIn job-posting URLs to one
// canonical form carrying only the numeric job ID.
package joburl

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidInput is returned when no job ID could be extracted from the
// input. The caller should surface it to the user and abort the workflow
// that depended on the URL.
var ErrInvalidInput = errors.New("no job ID found in URL")

// Patterns are tried in priority order; the first capture wins.
var patterns = []*regexp.Regexp{
	// Standard view path: .../jobs/view/1234567890...
	regexp.MustCompile(`/jobs/view/(\d+)`),
	// Query parameter, e.g. collections and search pages: ?currentJobId=555
	regexp.MustCompile(`[?&]currentJobId=(\d+)`),
	// Generic short form: .../jobs/1234567890
	regexp.MustCompile(`/jobs/(\d+)(?:[/?#]|$)`),
}

// Normalize extracts the job ID from input and rebuilds the canonical URL,
// discarding tracking parameters and alternate path segments. It is a pure
// function.
func Normalize(input string) (string, error) {
	id, err := ExtractID(input)
	if err != nil {
		return "", err
	}
	return Canonical(id), nil
}

// ExtractID returns the numeric job ID embedded in input, or ErrInvalidInput.
func ExtractID(input string) (string, error) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidInput, input)
}

// Canonical builds the single canonical URL shape for a job ID.
func Canonical(id string) string {
	return "https://www.linkedin.com/jobs/view/" + id + "/"
}
