package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/stemsi/school-api/internal/model"
	"github.com/stemsi/school-api/internal/repository"
	"github.com/stemsi/school-api/internal/response"
	"github.com/stemsi/school-api/internal/validator"
)

// ContentService exposes the public school content.
type ContentService interface {
	CreateDepartment(ctx context.Context, d *model.Department) (string, error)
	ListDepartments(ctx context.Context, limit int64) ([]bson.M, error)

	CreateFaculty(ctx context.Context, f *model.Faculty) (string, error)
	ListFaculty(ctx context.Context, department string, limit int64) ([]bson.M, error)

	CreateEvent(ctx context.Context, e *model.Event) (string, error)
	ListEvents(ctx context.Context, upcoming bool, limit int64) ([]bson.M, error)

	CreateNotice(ctx context.Context, n *model.Notice) (string, error)
	ListNotices(ctx context.Context, limit int64) ([]bson.M, error)

	SubmitContact(ctx context.Context, m *model.ContactMessage) (string, error)
}

type contentService struct {
	repo repository.DocumentRepository
	now  func() time.Time
	log  zerolog.Logger
}

// NewContentService builds a ContentService. now defaults to time.Now.
func NewContentService(repo repository.DocumentRepository, now func() time.Time, log zerolog.Logger) ContentService {
	if now == nil {
		now = time.Now
	}
	return &contentService{
		repo: repo,
		now:  now,
		log:  log.With().Str("component", "content_service").Logger(),
	}
}

func (s *contentService) CreateDepartment(ctx context.Context, d *model.Department) (string, error) {
	return s.create(ctx, model.KindDepartment, d)
}

func (s *contentService) ListDepartments(ctx context.Context, limit int64) ([]bson.M, error) {
	return s.list(ctx, model.KindDepartment, nil, limit)
}

func (s *contentService) CreateFaculty(ctx context.Context, f *model.Faculty) (string, error) {
	return s.create(ctx, model.KindFaculty, f)
}

// ListFaculty filters by exact department name when department is non-empty.
func (s *contentService) ListFaculty(ctx context.Context, department string, limit int64) ([]bson.M, error) {
	var filter repository.Filter
	if department != "" {
		filter = repository.Filter{"department": department}
	}
	return s.list(ctx, model.KindFaculty, filter, limit)
}

func (s *contentService) CreateEvent(ctx context.Context, e *model.Event) (string, error) {
	return s.create(ctx, model.KindEvent, e)
}

// ListEvents keeps only events dated now or later when upcoming is set.
func (s *contentService) ListEvents(ctx context.Context, upcoming bool, limit int64) ([]bson.M, error) {
	var filter repository.Filter
	if upcoming {
		filter = repository.Filter{"date": bson.M{"$gte": s.now().UTC()}}
	}
	return s.list(ctx, model.KindEvent, filter, limit)
}

func (s *contentService) CreateNotice(ctx context.Context, n *model.Notice) (string, error) {
	n.ApplyDefaults(s.now())
	return s.create(ctx, model.KindNotice, n)
}

func (s *contentService) ListNotices(ctx context.Context, limit int64) ([]bson.M, error) {
	return s.list(ctx, model.KindNotice, nil, limit)
}

func (s *contentService) SubmitContact(ctx context.Context, m *model.ContactMessage) (string, error) {
	id, err := s.create(ctx, model.KindContactMessage, m)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("id", id).Str("subject", m.Subject).Msg("contact message received")
	return id, nil
}

// create validates record before it can reach storage.
func (s *contentService) create(ctx context.Context, kind model.Kind, record interface{}) (string, error) {
	if err := validator.Validate(record); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, kind, record)
	if err != nil {
		s.log.Error().Err(err).Str("kind", kind.String()).Msg("failed to create document")
		return "", err
	}
	return id, nil
}

func (s *contentService) list(ctx context.Context, kind model.Kind, filter repository.Filter, limit int64) ([]bson.M, error) {
	docs, err := s.repo.Find(ctx, kind, filter, limit)
	if err != nil {
		s.log.Error().Err(err).Str("kind", kind.String()).Msg("failed to list documents")
		return nil, err
	}
	return response.SerializeDocuments(docs), nil
}
