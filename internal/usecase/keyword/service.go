package keyword

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/repository"
)

// Service provides keyword management use cases.
type Service struct {
	Repo repository.KeywordRepository

	now   func() time.Time
	newID func() string
}

// NewService creates a keyword service with production defaults.
func NewService(repo repository.KeywordRepository) *Service {
	return &Service{
		Repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List returns all registered keywords in registration order.
func (s *Service) List(ctx context.Context) ([]*entity.Keyword, error) {
	keywords, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return keywords, nil
}

// Add registers a new interest keyword. Leading and trailing whitespace is
// stripped before storing. Returns ErrDuplicateKeyword when the keyword is
// already registered.
func (s *Service) Add(ctx context.Context, keyword string) (*entity.Keyword, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &entity.ValidationError{Field: "keyword", Message: "is required"}
	}

	existing, err := s.Repo.GetByKeyword(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("Add: %w", ErrDuplicateKeyword)
	}

	kw := &entity.Keyword{
		ID:        s.newID(),
		Keyword:   keyword,
		CreatedAt: s.now().Unix(),
	}
	if err := s.Repo.Create(ctx, kw); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	return kw, nil
}

// Remove unregisters a keyword by its text. Returns ErrKeywordNotFound
// when the keyword is not registered.
func (s *Service) Remove(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)

	existing, err := s.Repo.GetByKeyword(ctx, keyword)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("Remove: %w", ErrKeywordNotFound)
	}
	if err := s.Repo.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}
