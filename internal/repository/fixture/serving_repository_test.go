package fixture

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apicatalog/internal/domain"
)

func TestServingApiRepository_DropsRecordedCalls(t *testing.T) {
	repo, err := NewServingApiRepository()
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 5000; i++ {
		_, err := repo.FindByID(ctx, "readiness-probe")
		require.ErrorIs(t, err, domain.ErrApiNotFound)
	}
	_, _ = repo.Search(ctx, nil)
	_, _ = repo.Update(ctx, &domain.Api{ID: "api-to-update"})

	assert.Zero(t, repo.recordedCalls())
}

func TestServingApiRepository_ConcurrentCalls(t *testing.T) {
	repo, err := NewServingApiRepository()
	require.NoError(t, err)
	ctx := context.Background()
	versionOne := domain.NewApiCriteriaBuilder().Version("1").Build()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			apis, err := repo.Search(ctx, versionOne)
			assert.NoError(t, err)
			assert.Len(t, apis, 4)
		}()
	}
	wg.Wait()

	assert.Zero(t, repo.recordedCalls())
}

func TestServingApiRepository_KeepsSequences(t *testing.T) {
	repo, err := NewServingApiRepository()
	require.NoError(t, err)
	ctx := context.Background()

	first, err := repo.FindByID(ctx, "api-to-update")
	require.NoError(t, err)
	assert.Equal(t, "api-to-update", first.Name)

	second, err := repo.FindByID(ctx, "api-to-update")
	require.NoError(t, err)
	assert.Equal(t, "New API name", second.Name)

	_, err = repo.Update(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrApiIllegalState)
}
