package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/backend"
	"github.com/jobtrail/jobtrail/internal/models"
)

// Cache keys, one per list endpoint.
const (
	keyApplications = "applications"
	keyContacts     = "contacts"
	keyResumes      = "resumes"
	keyNarratives   = "narratives"
	keyOffers       = "offers"
	keyLeaderboard  = "leaderboard"
)

// ListService serves the board's list views with a short-lived cache it
// owns. Mutations write through to the backend and drop the affected list.
type ListService struct {
	backend *backend.Client
	cache   *gocache.Cache
	logger  *zap.Logger
}

func NewListService(client *backend.Client, ttl, cleanup time.Duration, logger *zap.Logger) *ListService {
	return &ListService{
		backend: client,
		cache:   gocache.New(ttl, cleanup),
		logger:  logger.With(zap.String("component", "lists")),
	}
}

func (s *ListService) Applications(ctx context.Context) ([]models.Application, error) {
	if cached, ok := s.cache.Get(keyApplications); ok {
		return cached.([]models.Application), nil
	}
	apps, err := s.backend.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyApplications, apps)
	return apps, nil
}

func (s *ListService) CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	created, err := s.backend.CreateApplication(ctx, app)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyApplications)
	return created, nil
}

func (s *ListService) UpdateApplication(ctx context.Context, id string, app *models.Application) (*models.Application, error) {
	updated, err := s.backend.UpdateApplication(ctx, id, app)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyApplications)
	return updated, nil
}

func (s *ListService) DeleteApplication(ctx context.Context, id string) error {
	if err := s.backend.DeleteApplication(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(keyApplications)
	return nil
}

func (s *ListService) Contacts(ctx context.Context) ([]models.Contact, error) {
	if cached, ok := s.cache.Get(keyContacts); ok {
		return cached.([]models.Contact), nil
	}
	contacts, err := s.backend.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyContacts, contacts)
	return contacts, nil
}

func (s *ListService) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	created, err := s.backend.CreateContact(ctx, contact)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyContacts)
	return created, nil
}

func (s *ListService) UpdateContact(ctx context.Context, id string, contact *models.Contact) (*models.Contact, error) {
	updated, err := s.backend.UpdateContact(ctx, id, contact)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyContacts)
	return updated, nil
}

func (s *ListService) DeleteContact(ctx context.Context, id string) error {
	if err := s.backend.DeleteContact(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(keyContacts)
	return nil
}

func (s *ListService) Resumes(ctx context.Context) ([]models.Resume, error) {
	if cached, ok := s.cache.Get(keyResumes); ok {
		return cached.([]models.Resume), nil
	}
	resumes, err := s.backend.ListResumes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyResumes, resumes)
	return resumes, nil
}

func (s *ListService) CreateResume(ctx context.Context, resume *models.Resume) (*models.Resume, error) {
	created, err := s.backend.CreateResume(ctx, resume)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyResumes)
	return created, nil
}

func (s *ListService) DeleteResume(ctx context.Context, id string) error {
	if err := s.backend.DeleteResume(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(keyResumes)
	return nil
}

func (s *ListService) Narratives(ctx context.Context) ([]models.Narrative, error) {
	if cached, ok := s.cache.Get(keyNarratives); ok {
		return cached.([]models.Narrative), nil
	}
	narratives, err := s.backend.ListNarratives(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyNarratives, narratives)
	return narratives, nil
}

func (s *ListService) CreateNarrative(ctx context.Context, narrative *models.Narrative) (*models.Narrative, error) {
	created, err := s.backend.CreateNarrative(ctx, narrative)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyNarratives)
	return created, nil
}

func (s *ListService) Offers(ctx context.Context) ([]models.Offer, error) {
	if cached, ok := s.cache.Get(keyOffers); ok {
		return cached.([]models.Offer), nil
	}
	offers, err := s.backend.ListOffers(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyOffers, offers)
	return offers, nil
}

func (s *ListService) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	created, err := s.backend.CreateOffer(ctx, offer)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyOffers)
	return created, nil
}

func (s *ListService) UpdateOffer(ctx context.Context, id string, offer *models.Offer) (*models.Offer, error) {
	updated, err := s.backend.UpdateOffer(ctx, id, offer)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(keyOffers)
	return updated, nil
}

func (s *ListService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if cached, ok := s.cache.Get(keyLeaderboard); ok {
		return cached.([]models.LeaderboardEntry), nil
	}
	entries, err := s.backend.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyLeaderboard, entries)
	return entries, nil
}
