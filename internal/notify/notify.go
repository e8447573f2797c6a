// Package notify maps failure conditions to the transient user-facing
// notifications the UI shows. Nothing in this taxonomy is fatal: every code
// degrades to a message and, where it helps, a navigation fallback.
package notify

import "net/http"

// Code identifies a failure condition surfaced to the user.
type Code string

const (
	// CodeInvalidInput means URL normalization failed and the user must
	// supply a corrected value.
	CodeInvalidInput Code = "invalid_input"

	// Backend-reported conditions on job fetch.
	CodeDuplicate   Code = "duplicate"
	CodeAuthExpired Code = "auth_expired"
	CodeRateLimit   Code = "rate_limit"
	CodeFetchFailed Code = "fetch_failed"

	// CodeTimeout means a review poll sequence exhausted its attempt budget.
	CodeTimeout Code = "timeout"
)

// Notification is the payload rendered as a transient notice.
type Notification struct {
	Code     Code   `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// Navigation fallbacks for codes where staying on the current view is not
// useful.
const (
	RedirectLogin = "/login"
	RedirectBoard = "/board"
)

var messages = map[Code]Notification{
	CodeInvalidInput: {
		Code:    CodeInvalidInput,
		Message: "That doesn't look like a job posting link. Paste the job URL and try again.",
	},
	CodeDuplicate: {
		Code:     CodeDuplicate,
		Message:  "You already track this job. Opening your board.",
		Redirect: RedirectBoard,
	},
	CodeAuthExpired: {
		Code:     CodeAuthExpired,
		Message:  "Your session expired. Please sign in again.",
		Redirect: RedirectLogin,
	},
	CodeRateLimit: {
		Code:    CodeRateLimit,
		Message: "Too many requests right now. Wait a moment and retry.",
	},
	CodeFetchFailed: {
		Code:    CodeFetchFailed,
		Message: "We couldn't fetch that job posting. Try again in a bit.",
	},
	CodeTimeout: {
		Code:     CodeTimeout,
		Message:  "The review is taking longer than expected. Check your board for the result.",
		Redirect: RedirectBoard,
	},
}

// For returns the notification payload for a code. Unknown codes fall back
// to the generic fetch-failed notice so the UI always has something to show.
func For(code Code) Notification {
	if n, ok := messages[code]; ok {
		return n
	}
	return messages[CodeFetchFailed]
}

// HTTPStatus maps a code to the status the gateway responds with.
func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeDuplicate:
		return http.StatusConflict
	case CodeAuthExpired:
		return http.StatusUnauthorized
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
