package service

import (
	"context"
	"strings"

	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/port"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type SearchService struct {
	storage     port.EmailsStorage
	maxPageSize int
}

// NewSearchService returns a search service. Page sizes above maxPageSize
// are clamped; maxPageSize <= 0 means no limit.
func NewSearchService(storage port.EmailsStorage, maxPageSize int) *SearchService {
	return &SearchService{
		storage:     storage,
		maxPageSize: maxPageSize,
	}
}

func (s *SearchService) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.EmailRecord, error) {
	filter.BodyContains = strings.TrimSpace(filter.BodyContains)

	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}
	if s.maxPageSize > 0 && filter.PageSize > s.maxPageSize {
		filter.PageSize = s.maxPageSize
	}

	emails, err := s.storage.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if emails == nil {
		emails = []domain.EmailRecord{}
	}
	return emails, nil
}
