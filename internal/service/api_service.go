package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"apicatalog/internal/domain"
	"apicatalog/internal/metrics"
	"apicatalog/internal/port"
)

// SearchApisInput is the DTO for searching APIs. Zero-valued filters are not applied.
type SearchApisInput struct {
	IDs               []string
	Groups            []string
	Name              string
	Version           string
	View              string
	Label             string
	State             domain.LifecycleState
	Visibility        domain.Visibility
	ExcludeDefinition bool
	ExcludePicture    bool

	// Paged selects a paginated search. PageNumber and PageSize left at zero
	// request the repository's default pagination.
	Paged      bool
	PageNumber int
	PageSize   int
}

// SearchApisResult holds the APIs found and, for paged searches, the page metadata.
type SearchApisResult struct {
	Apis []*domain.Api
	Page *PageInfo
}

// PageInfo describes the page a paged search returned.
type PageInfo struct {
	PageNumber    int
	PageElements  int
	TotalElements int64
}

// ApiService defines the API catalog contract.
type ApiService interface {
	Get(ctx context.Context, id string) (*domain.Api, error)
	Search(ctx context.Context, input *SearchApisInput) (*SearchApisResult, error)
	Update(ctx context.Context, api *domain.Api) (*domain.Api, error)
}

type apiService struct {
	repo port.ApiRepository
	log  zerolog.Logger
}

// NewApiService creates a new ApiService.
func NewApiService(repo port.ApiRepository, log zerolog.Logger) ApiService {
	return &apiService{
		repo: repo,
		log:  log.With().Str("component", "api_service").Logger(),
	}
}

func (s *apiService) Get(ctx context.Context, id string) (*domain.Api, error) {
	api, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding api %q: %w", id, err)
	}
	return api, nil
}

func (s *apiService) Search(ctx context.Context, input *SearchApisInput) (*SearchApisResult, error) {
	if input == nil {
		input = &SearchApisInput{}
	}
	if err := validateSearch(input); err != nil {
		return nil, err
	}
	criteria := buildCriteria(input)

	switch {
	case input.Paged:
		pageable, err := domain.NewPageableBuilder().
			PageNumber(input.PageNumber).
			PageSize(input.PageSize).
			Build()
		if err != nil {
			return nil, err
		}
		metrics.ApisSearched.WithLabelValues("search_page").Inc()
		page, err := s.repo.SearchPage(ctx, criteria, pageable)
		if err != nil {
			return nil, fmt.Errorf("searching api page: %w", err)
		}
		if page == nil {
			page = domain.NewPage([]*domain.Api{}, pageable.PageNumber(), 0, 0)
		}
		s.log.Debug().
			Int("page", page.PageNumber).
			Int("size", page.PageElements).
			Int64("total", page.TotalElements).
			Msg("paged api search")
		return &SearchApisResult{
			Apis: page.Content,
			Page: &PageInfo{
				PageNumber:    page.PageNumber,
				PageElements:  page.PageElements,
				TotalElements: page.TotalElements,
			},
		}, nil

	case input.ExcludeDefinition || input.ExcludePicture:
		fb := domain.NewApiFieldExclusionFilterBuilder()
		if input.ExcludeDefinition {
			fb.ExcludeDefinition()
		}
		if input.ExcludePicture {
			fb.ExcludePicture()
		}
		metrics.ApisSearched.WithLabelValues("search_excluding").Inc()
		apis, err := s.repo.SearchExcluding(ctx, criteria, fb.Build())
		if err != nil {
			return nil, fmt.Errorf("searching apis: %w", err)
		}
		s.log.Debug().Int("count", len(apis)).Msg("api search with exclusions")
		return &SearchApisResult{Apis: apis}, nil

	default:
		metrics.ApisSearched.WithLabelValues("search").Inc()
		apis, err := s.repo.Search(ctx, criteria)
		if err != nil {
			return nil, fmt.Errorf("searching apis: %w", err)
		}
		s.log.Debug().Int("count", len(apis)).Msg("api search")
		return &SearchApisResult{Apis: apis}, nil
	}
}

func (s *apiService) Update(ctx context.Context, api *domain.Api) (*domain.Api, error) {
	updated, err := s.repo.Update(ctx, api)
	if err != nil {
		if errors.Is(err, domain.ErrApiIllegalState) {
			id := ""
			if api != nil {
				id = api.ID
			}
			s.log.Warn().Str("api_id", id).Msg("api update rejected")
		}
		return nil, fmt.Errorf("updating api: %w", err)
	}
	if updated == nil {
		updated = api
	}
	return updated, nil
}

func validateSearch(input *SearchApisInput) error {
	if input.State != "" && !domain.ValidLifecycleStates[input.State] {
		return fmt.Errorf("%w: unknown lifecycle state %q", domain.ErrInvalidCriteria, input.State)
	}
	if input.Visibility != "" && !domain.ValidVisibilities[input.Visibility] {
		return fmt.Errorf("%w: unknown visibility %q", domain.ErrInvalidCriteria, input.Visibility)
	}
	return nil
}

// buildCriteria returns nil when the input sets no filter, so the repository
// receives "no criteria" rather than an empty criteria.
func buildCriteria(input *SearchApisInput) *domain.ApiCriteria {
	b := domain.NewApiCriteriaBuilder()
	if len(input.IDs) > 0 {
		b.IDs(input.IDs...)
	}
	if len(input.Groups) > 0 {
		b.Groups(input.Groups...)
	}
	b.Name(input.Name).
		Version(input.Version).
		View(input.View).
		Label(input.Label).
		State(input.State).
		Visibility(input.Visibility)

	c := b.Build()
	if c.IsEmpty() {
		return nil
	}
	return c
}
