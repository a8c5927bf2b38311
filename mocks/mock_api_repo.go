package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"apicatalog/internal/domain"
)

// MockApiRepo is a mock implementation of port.ApiRepository.
type MockApiRepo struct {
	mock.Mock
}

func (m *MockApiRepo) FindByID(ctx context.Context, id string) (*domain.Api, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Api), args.Error(1)
}

func (m *MockApiRepo) Search(ctx context.Context, criteria *domain.ApiCriteria) ([]*domain.Api, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Api), args.Error(1)
}

func (m *MockApiRepo) SearchExcluding(ctx context.Context, criteria *domain.ApiCriteria, filter *domain.ApiFieldExclusionFilter) ([]*domain.Api, error) {
	args := m.Called(ctx, criteria, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Api), args.Error(1)
}

func (m *MockApiRepo) SearchPage(ctx context.Context, criteria *domain.ApiCriteria, pageable *domain.Pageable) (*domain.Page[*domain.Api], error) {
	args := m.Called(ctx, criteria, pageable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[*domain.Api]), args.Error(1)
}

func (m *MockApiRepo) Create(ctx context.Context, api *domain.Api) (*domain.Api, error) {
	args := m.Called(ctx, api)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Api), args.Error(1)
}

func (m *MockApiRepo) Update(ctx context.Context, api *domain.Api) (*domain.Api, error) {
	args := m.Called(ctx, api)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Api), args.Error(1)
}

func (m *MockApiRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
