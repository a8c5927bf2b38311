package port

import (
	"context"

	"apicatalog/internal/domain"
)

// ApiRepository defines the contract for API persistence.
// FindByID returns domain.ErrApiNotFound when no API has the given id.
// A nil criteria means "no criteria".
type ApiRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Api, error)
	Search(ctx context.Context, criteria *domain.ApiCriteria) ([]*domain.Api, error)
	SearchExcluding(ctx context.Context, criteria *domain.ApiCriteria, filter *domain.ApiFieldExclusionFilter) ([]*domain.Api, error)
	SearchPage(ctx context.Context, criteria *domain.ApiCriteria, pageable *domain.Pageable) (*domain.Page[*domain.Api], error)
	Create(ctx context.Context, api *domain.Api) (*domain.Api, error)
	Update(ctx context.Context, api *domain.Api) (*domain.Api, error)
	Delete(ctx context.Context, id string) error
}
