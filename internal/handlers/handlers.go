// Package handlers exposes the gateway's HTTP surface. Failures render as
// transient-notification payloads the UI can show directly.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/backend"
	"github.com/jobtrail/jobtrail/internal/joburl"
	"github.com/jobtrail/jobtrail/internal/notify"
)

// HealthCheck is the GET /health endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail renders an error as its notification payload with the matching status.
func fail(c *gin.Context, err error) {
	code := backend.CodeOf(err)
	if errors.Is(err, joburl.ErrInvalidInput) {
		code = notify.CodeInvalidInput
	}
	c.JSON(notify.HTTPStatus(code), gin.H{"notification": notify.For(code)})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
}
