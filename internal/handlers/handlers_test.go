package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/backend"
	"github.com/jobtrail/jobtrail/internal/config"
	"github.com/jobtrail/jobtrail/internal/models"
	"github.com/jobtrail/jobtrail/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newBackendClient(baseURL string) *backend.Client {
	return backend.NewClient(config.BackendConfig{
		BaseURL:    baseURL,
		Timeout:    2000,
		MaxRetries: 0,
	}, zap.NewNop())
}

func newIntakeRouter(t *testing.T, upstream string) *gin.Engine {
	t.Helper()
	client := newBackendClient(upstream)
	reviews := services.NewReviewManager(client, time.Millisecond, 3, zap.NewNop())
	t.Cleanup(reviews.Shutdown)
	intake := services.NewIntakeService(client, reviews, zap.NewNop())
	h := NewIntakeHandler(intake, reviews)

	r := gin.New()
	r.POST("/jobs/track", h.TrackJob)
	r.GET("/reviews/:id", h.ReviewStatus)
	r.DELETE("/reviews/:id", h.CancelReview)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTrackJob_InvalidURLRendersNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called for an invalid URL")
	}))
	defer server.Close()

	r := newIntakeRouter(t, server.URL)
	w := doJSON(r, http.MethodPost, "/jobs/track", `{"url":"https://example.com/careers"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Notification struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_input", body.Notification.Code)
	assert.NotEmpty(t, body.Notification.Message)
}

func TestTrackJob_MissingURLIsBadRequest(t *testing.T) {
	r := newIntakeRouter(t, "http://127.0.0.1:0")
	w := doJSON(r, http.MethodPost, "/jobs/track", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackJob_Created(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/jobs/fetch", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Job{ID: "j-1", CompanyName: "Acme", Title: "SRE"})
	})
	mux.HandleFunc("/applications", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Application{ID: "app-1", Status: models.StatusApplied})
	})
	mux.HandleFunc("/applications/app-1/review", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Review{ID: "rev-1", State: "pending"})
	})
	mux.HandleFunc("/reviews/rev-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Review{ID: "rev-1", State: models.ReviewComplete, Result: "ok"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	r := newIntakeRouter(t, server.URL)
	w := doJSON(r, http.MethodPost, "/jobs/track", `{"url":"https://www.linkedin.com/jobs/view/99/"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Application models.Application `json:"application"`
		ReviewID    string             `json:"review_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "app-1", body.Application.ID)
	assert.Equal(t, "rev-1", body.ReviewID)
}

func TestTrackJob_DuplicateRendersRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/jobs/fetch", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Job{ID: "j-1"})
	})
	mux.HandleFunc("/applications", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	r := newIntakeRouter(t, server.URL)
	w := doJSON(r, http.MethodPost, "/jobs/track", `{"url":"https://www.linkedin.com/jobs/view/99/"}`)

	assert.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Notification struct {
			Code     string `json:"code"`
			Redirect string `json:"redirect"`
		} `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "duplicate", body.Notification.Code)
	assert.Equal(t, "/board", body.Notification.Redirect)
}

func TestReviewStatus_Unknown(t *testing.T) {
	r := newIntakeRouter(t, "http://127.0.0.1:0")
	w := doJSON(r, http.MethodGet, "/reviews/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewStatus_TimeoutCarriesNotification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reviews/rev-t", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Review{ID: "rev-t", State: "pending"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newBackendClient(server.URL)
	reviews := services.NewReviewManager(client, time.Millisecond, 2, zap.NewNop())
	t.Cleanup(reviews.Shutdown)
	require.NoError(t, reviews.Track("rev-t"))

	h := NewIntakeHandler(services.NewIntakeService(client, reviews, zap.NewNop()), reviews)
	r := gin.New()
	r.GET("/reviews/:id", h.ReviewStatus)

	var body struct {
		Review struct {
			State    string `json:"state"`
			Attempts int    `json:"attempts"`
		} `json:"review"`
		Notification struct {
			Code string `json:"code"`
		} `json:"notification"`
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := doJSON(r, http.MethodGet, "/reviews/rev-t", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		if body.Review.State == "timed-out" {
			assert.Equal(t, "timeout", body.Notification.Code)
			assert.Equal(t, 2, body.Review.Attempts)
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("review never timed out")
}

func TestCancelReview_UnknownIsNoop(t *testing.T) {
	r := newIntakeRouter(t, "http://127.0.0.1:0")
	w := doJSON(r, http.MethodDelete, "/reviews/whatever", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

type fakeCoach struct {
	keywords []string
	err      error
}

func (f *fakeCoach) ExtractKeywords(ctx context.Context, jobDescription string) ([]string, error) {
	return f.keywords, f.err
}

func (f *fakeCoach) ResumeGuidance(ctx context.Context, resume, jobDescription string) (string, error) {
	return "lead with the platform work", f.err
}

func (f *fakeCoach) QuantifyImpact(ctx context.Context, bullet string) ([]string, error) {
	return []string{"cut deploy time by 40%"}, f.err
}

func (f *fakeCoach) ExpandRole(ctx context.Context, title, notes string) (string, error) {
	return "owned the ingestion pipeline", f.err
}

func newCoachRouter(coach Coach) *gin.Engine {
	h := NewCoachHandler(coach)
	r := gin.New()
	r.POST("/coach/keywords", h.Keywords)
	r.POST("/coach/guidance", h.Guidance)
	r.POST("/coach/quantify", h.Quantify)
	r.POST("/coach/expand-role", h.ExpandRole)
	return r
}

func TestCoach_Keywords(t *testing.T) {
	r := newCoachRouter(&fakeCoach{keywords: []string{"Go", "gRPC"}})
	w := doJSON(r, http.MethodPost, "/coach/keywords", `{"description":"We need Go and gRPC"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Go", "gRPC"}, body.Keywords)
}

func TestCoach_ErrorIsInternal(t *testing.T) {
	r := newCoachRouter(&fakeCoach{err: errors.New("model unavailable")})
	w := doJSON(r, http.MethodPost, "/coach/quantify", `{"bullet":"did stuff"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCoach_NilServiceAnswers503(t *testing.T) {
	r := newCoachRouter(nil)
	w := doJSON(r, http.MethodPost, "/coach/guidance", `{"resume":"r","description":"d"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBoard_ListAndFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Application{{ID: "a1", Title: "SRE"}})
	})
	mux.HandleFunc("/offers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	lists := services.NewListService(newBackendClient(server.URL), time.Minute, time.Minute, zap.NewNop())
	h := NewBoardHandler(lists)
	r := gin.New()
	r.GET("/applications", h.ListApplications)
	r.GET("/offers", h.ListOffers)

	w := doJSON(r, http.MethodGet, "/applications", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/offers", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Notification struct {
			Code     string `json:"code"`
			Redirect string `json:"redirect"`
		} `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "auth_expired", body.Notification.Code)
	assert.Equal(t, "/login", body.Notification.Redirect)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/health", HealthCheck)

	w := doJSON(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
