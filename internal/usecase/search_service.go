package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wellnest/backend/internal/domain"
	"github.com/wellnest/backend/internal/infrastructure/fdc"
)

const (
	// DefaultPageSize is applied when the caller does not ask for a size.
	DefaultPageSize = 25
	// DefaultPageNumber is applied when the caller does not ask for a page.
	DefaultPageNumber = 1
)

// SearchService proxies free-text food searches to FoodData Central and
// normalizes the results. It is stateless; concurrent searches are
// independent of one another.
type SearchService struct {
	client domain.FDCClient
	log    *logrus.Logger
}

// NewSearchService creates a search service backed by an FDC client.
func NewSearchService(client domain.FDCClient, log *logrus.Logger) *SearchService {
	return &SearchService{
		client: client,
		log:    log,
	}
}

// Search validates the request, issues exactly one upstream search, and
// returns a page of normalized records. Rows the normalizer rejects as
// malformed are dropped rather than failing the page.
func (s *SearchService) Search(ctx context.Context, query string, pageSize, pageNumber int) (*domain.SearchPage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", domain.ErrInvalidRequest)
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageNumber == 0 {
		pageNumber = DefaultPageNumber
	}
	if pageSize < 0 || pageNumber < 0 {
		return nil, fmt.Errorf("%w: pageSize and pageNumber must be positive", domain.ErrInvalidRequest)
	}

	resp, err := s.client.SearchFoods(ctx, query, pageSize, pageNumber)
	if err != nil {
		return nil, err
	}

	foods := make([]domain.FoodRecord, 0, len(resp.Foods))
	for i := range resp.Foods {
		record, err := fdc.Normalize(&resp.Foods[i])
		if err != nil {
			// One bad upstream row must not fail an otherwise-good page.
			s.log.WithError(err).WithField("query", query).Warn("dropping malformed search result")
			continue
		}
		foods = append(foods, *record)
	}

	return &domain.SearchPage{
		Foods:       foods,
		TotalPages:  totalPages(resp.TotalHits, pageSize),
		CurrentPage: pageNumber,
	}, nil
}

// FoodDetails returns the full nutrient breakdown for one record.
func (s *SearchService) FoodDetails(ctx context.Context, fdcID string) (*domain.FoodDetails, error) {
	if strings.TrimSpace(fdcID) == "" {
		return nil, fmt.Errorf("%w: food id must not be empty", domain.ErrInvalidRequest)
	}

	food, err := s.client.GetFood(ctx, fdcID)
	if err != nil {
		return nil, err
	}

	details, err := fdc.Breakdown(food)
	if err != nil {
		// An unusable detail record is an upstream fault, not a client one.
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	return details, nil
}

// totalPages computes ceil(totalHits / pageSize); 0 when there are no hits.
func totalPages(totalHits, pageSize int) int {
	if totalHits <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalHits + pageSize - 1) / pageSize
}
