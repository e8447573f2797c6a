package backend

import (
	"context"
	"net/http"

	"github.com/jobtrail/jobtrail/internal/models"
)

// FetchJobByURL asks the backend to scrape and return the posting behind a
// normalized job URL.
func (c *Client) FetchJobByURL(ctx context.Context, normalizedURL string) (*models.Job, error) {
	var job models.Job
	body := map[string]string{"url": normalizedURL}
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/fetch", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// RequestReview submits an application for the asynchronous review process
// and returns the review handle to poll.
func (c *Client) RequestReview(ctx context.Context, applicationID string) (*models.Review, error) {
	var review models.Review
	if err := c.doJSON(ctx, http.MethodPost, "/applications/"+applicationID+"/review", nil, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ReviewStatus reports the state of an in-progress job review.
func (c *Client) ReviewStatus(ctx context.Context, reviewID string) (*models.Review, error) {
	var review models.Review
	if err := c.doJSON(ctx, http.MethodGet, "/reviews/"+reviewID, nil, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// --- Applications ---

func (c *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := c.doJSON(ctx, http.MethodGet, "/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	var created models.Application
	if err := c.doJSON(ctx, http.MethodPost, "/applications", app, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateApplication(ctx context.Context, id string, app *models.Application) (*models.Application, error) {
	var updated models.Application
	if err := c.doJSON(ctx, http.MethodPut, "/applications/"+id, app, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/applications/"+id, nil, nil)
}

// --- Contacts ---

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := c.doJSON(ctx, http.MethodGet, "/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	var created models.Contact
	if err := c.doJSON(ctx, http.MethodPost, "/contacts", contact, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, contact *models.Contact) (*models.Contact, error) {
	var updated models.Contact
	if err := c.doJSON(ctx, http.MethodPut, "/contacts/"+id, contact, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/contacts/"+id, nil, nil)
}

// --- Resumes ---

func (c *Client) ListResumes(ctx context.Context) ([]models.Resume, error) {
	var resumes []models.Resume
	if err := c.doJSON(ctx, http.MethodGet, "/resumes", nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

func (c *Client) CreateResume(ctx context.Context, resume *models.Resume) (*models.Resume, error) {
	var created models.Resume
	if err := c.doJSON(ctx, http.MethodPost, "/resumes", resume, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteResume(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/resumes/"+id, nil, nil)
}

// --- Narratives ---

func (c *Client) ListNarratives(ctx context.Context) ([]models.Narrative, error) {
	var narratives []models.Narrative
	if err := c.doJSON(ctx, http.MethodGet, "/narratives", nil, &narratives); err != nil {
		return nil, err
	}
	return narratives, nil
}

func (c *Client) CreateNarrative(ctx context.Context, narrative *models.Narrative) (*models.Narrative, error) {
	var created models.Narrative
	if err := c.doJSON(ctx, http.MethodPost, "/narratives", narrative, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// --- Offers ---

func (c *Client) ListOffers(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	if err := c.doJSON(ctx, http.MethodGet, "/offers", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *Client) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	var created models.Offer
	if err := c.doJSON(ctx, http.MethodPost, "/offers", offer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOffer(ctx context.Context, id string, offer *models.Offer) (*models.Offer, error) {
	var updated models.Offer
	if err := c.doJSON(ctx, http.MethodPut, "/offers/"+id, offer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// --- Leaderboard ---

func (c *Client) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := c.doJSON(ctx, http.MethodGet, "/leaderboard", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
