package fixture

import (
	"context"
	"sync"

	"apicatalog/internal/domain"
	"apicatalog/internal/port"
	"apicatalog/mocks"
)

var _ port.ApiRepository = (*ServingApiRepository)(nil)

// ServingApiRepository answers from a prepared MockApiRepo outside of tests.
// Calls are serialized and the mock's call log is dropped after each one, so
// a long-running process does not accumulate recorded calls and their contexts.
type ServingApiRepository struct {
	mu   sync.Mutex
	repo *mocks.MockApiRepo
}

// NewServingApiRepository returns a ServingApiRepository over a freshly prepared mock.
func NewServingApiRepository() (*ServingApiRepository, error) {
	repo, err := NewApiRepositoryMock()
	if err != nil {
		return nil, err
	}
	return &ServingApiRepository{repo: repo}, nil
}

// do runs fn against the mock and clears the calls it recorded.
func (s *ServingApiRepository) do(fn func(repo *mocks.MockApiRepo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.repo.Calls = nil }()
	fn(s.repo)
}

func (s *ServingApiRepository) FindByID(ctx context.Context, id string) (api *domain.Api, err error) {
	s.do(func(repo *mocks.MockApiRepo) { api, err = repo.FindByID(ctx, id) })
	return api, err
}

func (s *ServingApiRepository) Search(ctx context.Context, criteria *domain.ApiCriteria) (apis []*domain.Api, err error) {
	s.do(func(repo *mocks.MockApiRepo) { apis, err = repo.Search(ctx, criteria) })
	return apis, err
}

func (s *ServingApiRepository) SearchExcluding(ctx context.Context, criteria *domain.ApiCriteria, filter *domain.ApiFieldExclusionFilter) (apis []*domain.Api, err error) {
	s.do(func(repo *mocks.MockApiRepo) { apis, err = repo.SearchExcluding(ctx, criteria, filter) })
	return apis, err
}

func (s *ServingApiRepository) SearchPage(ctx context.Context, criteria *domain.ApiCriteria, pageable *domain.Pageable) (page *domain.Page[*domain.Api], err error) {
	s.do(func(repo *mocks.MockApiRepo) { page, err = repo.SearchPage(ctx, criteria, pageable) })
	return page, err
}

func (s *ServingApiRepository) Create(ctx context.Context, api *domain.Api) (created *domain.Api, err error) {
	s.do(func(repo *mocks.MockApiRepo) { created, err = repo.Create(ctx, api) })
	return created, err
}

func (s *ServingApiRepository) Update(ctx context.Context, api *domain.Api) (updated *domain.Api, err error) {
	s.do(func(repo *mocks.MockApiRepo) { updated, err = repo.Update(ctx, api) })
	return updated, err
}

func (s *ServingApiRepository) Delete(ctx context.Context, id string) (err error) {
	s.do(func(repo *mocks.MockApiRepo) { err = repo.Delete(ctx, id) })
	return err
}

// recordedCalls reports how many calls the underlying mock currently holds.
func (s *ServingApiRepository) recordedCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.repo.Calls)
}
