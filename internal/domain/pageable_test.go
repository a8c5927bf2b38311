package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apicatalog/internal/domain"
)

func TestPageableBuilder_Default(t *testing.T) {
	p, err := domain.NewPageableBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, 0, p.PageNumber())
	assert.Equal(t, 0, p.PageSize())
	assert.True(t, p.IsUnpaged())
}

func TestPageableBuilder_Values(t *testing.T) {
	p := domain.NewPageableBuilder().PageNumber(1).PageSize(2).MustBuild()

	assert.Equal(t, 1, p.PageNumber())
	assert.Equal(t, 2, p.PageSize())
	assert.False(t, p.IsUnpaged())
	assert.Equal(t, p, domain.NewPageableBuilder().PageSize(2).PageNumber(1).MustBuild())
	assert.NotEqual(t, p, domain.NewPageableBuilder().PageNumber(0).PageSize(2).MustBuild())
}

func TestPageableBuilder_Negative(t *testing.T) {
	_, err := domain.NewPageableBuilder().PageNumber(-1).Build()
	assert.ErrorIs(t, err, domain.ErrInvalidPageable)

	_, err = domain.NewPageableBuilder().PageSize(-5).Build()
	assert.ErrorIs(t, err, domain.ErrInvalidPageable)

	assert.Panics(t, func() { domain.NewPageableBuilder().PageSize(-1).MustBuild() })
}

func TestNewPage(t *testing.T) {
	a := &domain.Api{ID: "a"}
	page := domain.NewPage([]*domain.Api{a}, 0, 1, 4)

	assert.Equal(t, []*domain.Api{a}, page.Content)
	assert.Equal(t, 0, page.PageNumber)
	assert.Equal(t, 1, page.PageElements)
	assert.Equal(t, int64(4), page.TotalElements)
}
