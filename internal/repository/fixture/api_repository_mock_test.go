package fixture_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apicatalog/internal/domain"
	"apicatalog/internal/port"
	"apicatalog/internal/repository/contract"
	"apicatalog/internal/repository/fixture"
	"apicatalog/mocks"
)

func TestApiRepositoryMock_Contract(t *testing.T) {
	contract.RunApiRepository(t, func(t *testing.T) port.ApiRepository {
		return fixture.SetupApiRepository(t)
	})
}

func fixtures(t *testing.T) *fixture.ApiFixtures {
	t.Helper()
	f, err := fixture.NewApiFixtures()
	require.NoError(t, err)
	return f
}

// --- FindByID ---

func TestFindByID_UpdateSequence(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	f := fixtures(t)
	ctx := context.Background()

	first, err := repo.FindByID(ctx, "api-to-update")
	require.NoError(t, err)
	assert.Equal(t, f.ToUpdate, first)

	second, err := repo.FindByID(ctx, "api-to-update")
	require.NoError(t, err)
	assert.Equal(t, f.Updated, second)

	// The last stubbed value repeats once the sequence is exhausted.
	third, err := repo.FindByID(ctx, "api-to-update")
	require.NoError(t, err)
	assert.Equal(t, f.Updated, third)
}

func TestFindByID_DeleteSequence(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	ctx := context.Background()

	api, err := repo.FindByID(ctx, "api-to-delete")
	require.NoError(t, err)
	assert.Equal(t, &domain.Api{ID: "api-to-delete"}, api)

	for i := 0; i < 2; i++ {
		api, err = repo.FindByID(ctx, "api-to-delete")
		assert.ErrorIs(t, err, domain.ErrApiNotFound)
		assert.Nil(t, api)
	}
}

func TestFindByID_SequencesArePerMock(t *testing.T) {
	ctx := context.Background()
	first := fixture.SetupApiRepository(t)
	_, _ = first.FindByID(ctx, "api-to-update")

	second := fixture.SetupApiRepository(t)
	api, err := second.FindByID(ctx, "api-to-update")
	require.NoError(t, err)
	assert.Equal(t, "api-to-update", api.Name)
}

func TestFindByID_FixedEntities(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	f := fixtures(t)

	tests := []struct {
		id   string
		want *domain.Api
	}{
		{"sample-new", f.New},
		{"grouped-api", f.Grouped},
		{"api-to-findById", f.ToFindByID},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			for i := 0; i < 2; i++ {
				api, err := repo.FindByID(context.Background(), tt.id)
				require.NoError(t, err)
				assert.Equal(t, tt.want, api)
			}
		})
	}
}

func TestFindByID_Missing(t *testing.T) {
	repo := fixture.SetupApiRepository(t)

	for _, id := range []string{"findByNameMissing", "never-registered", ""} {
		api, err := repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrApiNotFound, id)
		assert.Nil(t, api, id)
	}
}

// --- Update ---

func TestUpdate_IllegalState(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	ctx := context.Background()

	_, err := repo.Update(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrApiIllegalState)

	_, err = repo.Update(ctx, &domain.Api{ID: fixture.UnknownApiID})
	assert.ErrorIs(t, err, domain.ErrApiIllegalState)
}

func TestUpdate_OtherApisAreAccepted(t *testing.T) {
	repo := fixture.SetupApiRepository(t)

	for _, api := range []*domain.Api{{ID: "api-to-update"}, {ID: "Unknown"}, {}} {
		_, err := repo.Update(context.Background(), api)
		assert.NoError(t, err, api.ID)
	}
}

// --- Search ---

func TestSearch_NoCriteria(t *testing.T) {
	repo := fixture.SetupApiRepository(t)

	apis, err := repo.Search(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, apis, 4)
	for _, api := range apis {
		assert.Equal(t, &domain.Api{}, api)
	}
}

func TestSearch_VersionAndStateAgree(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	f := fixtures(t)
	ctx := context.Background()

	byVersion, err := repo.Search(ctx, domain.NewApiCriteriaBuilder().Version("1").Build())
	require.NoError(t, err)
	byState, err := repo.Search(ctx, domain.NewApiCriteriaBuilder().State(domain.LifecycleStateStopped).Build())
	require.NoError(t, err)

	assert.Equal(t, []*domain.Api{f.ToFindByID, f.Grouped, f.ToDelete, f.ToUpdate}, byVersion)
	assert.Equal(t, byVersion, byState)
}

func TestSearch_IDsInAnyOrder(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	f := fixtures(t)

	apis, err := repo.Search(context.Background(),
		domain.NewApiCriteriaBuilder().IDs("unknown", "api-to-update", "api-to-delete").Build())
	require.NoError(t, err)
	assert.Equal(t, []*domain.Api{f.ToUpdate, f.ToDelete}, apis)
}

func TestSearch_DoesNotOverMatch(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	ctx := context.Background()

	unmatched := map[string]*domain.ApiCriteria{
		"empty criteria":     domain.NewApiCriteriaBuilder().Build(),
		"ids subset":         domain.NewApiCriteriaBuilder().IDs("api-to-delete", "api-to-update").Build(),
		"name other version": domain.NewApiCriteriaBuilder().Name("api-to-findById").Version("2").Build(),
		"version and label":  domain.NewApiCriteriaBuilder().Version("1").Label("label 1").Build(),
		"groups subset":      domain.NewApiCriteriaBuilder().Groups("api-group").Build(),
		"private":            domain.NewApiCriteriaBuilder().Visibility(domain.VisibilityPrivate).Build(),
		"started":            domain.NewApiCriteriaBuilder().State(domain.LifecycleStateStarted).Build(),
		"label 2":            domain.NewApiCriteriaBuilder().Label("label 2").Build(),
	}
	for name, c := range unmatched {
		t.Run(name, func(t *testing.T) {
			apis, err := repo.Search(ctx, c)
			require.NoError(t, err)
			assert.Empty(t, apis)
		})
	}
}

func TestSearchExcluding(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	f := fixtures(t)
	ctx := context.Background()
	c := domain.NewApiCriteriaBuilder().Name("api-to-findById").Version("1").Build()

	apis, err := repo.SearchExcluding(ctx, c, domain.NewApiFieldExclusionFilterBuilder().ExcludeDefinition().Build())
	require.NoError(t, err)
	assert.Equal(t, []*domain.Api{f.ToFindByID}, apis)

	apis, err = repo.SearchExcluding(ctx, c, domain.NewApiFieldExclusionFilterBuilder().ExcludePicture().Build())
	require.NoError(t, err)
	assert.Empty(t, apis)
}

func TestSearchPage(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	f := fixtures(t)
	ctx := context.Background()
	versionOne := domain.NewApiCriteriaBuilder().Version("1").Build()

	tests := []struct {
		name     string
		pageable *domain.Pageable
		want     *domain.Page[*domain.Api]
	}{
		{
			name:     "first page",
			pageable: domain.NewPageableBuilder().PageNumber(0).PageSize(2).MustBuild(),
			want:     domain.NewPage([]*domain.Api{f.ToDelete, f.ToFindByID}, 0, 2, 4),
		},
		{
			name:     "second page",
			pageable: domain.NewPageableBuilder().PageNumber(1).PageSize(2).MustBuild(),
			want:     domain.NewPage([]*domain.Api{f.ToUpdate, f.Grouped}, 1, 2, 4),
		},
		{
			name:     "default pagination",
			pageable: domain.NewPageableBuilder().MustBuild(),
			want:     domain.NewPage([]*domain.Api{f.ToDelete, f.ToFindByID, f.ToUpdate, f.Grouped}, 0, 4, 4),
		},
		{
			name:     "unregistered page",
			pageable: domain.NewPageableBuilder().PageNumber(2).PageSize(2).MustBuild(),
			want:     domain.NewPage([]*domain.Api{}, 0, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.SearchPage(ctx, versionOne, tt.pageable)
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

// --- Defaults and lifecycle ---

func TestDefaults_CreateAndDelete(t *testing.T) {
	repo := fixture.SetupApiRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Api{ID: "anything"})
	assert.NoError(t, err)
	assert.Nil(t, created)
	assert.NoError(t, repo.Delete(ctx, "anything"))
}

func TestNewApiRepositoryMock(t *testing.T) {
	repo, err := fixture.NewApiRepositoryMock()
	require.NoError(t, err)

	api, err := repo.FindByID(context.Background(), "grouped-api")
	require.NoError(t, err)
	assert.Equal(t, []string{"api-group"}, api.Groups)
	repo.AssertExpectations(t)
}

func TestRepositoryMock_BuildPropagatesPrepareError(t *testing.T) {
	boom := errors.New("boom")
	r := fixture.RepositoryMock[*mocks.MockApiRepo]{
		New:     func() *mocks.MockApiRepo { return new(mocks.MockApiRepo) },
		Prepare: func(*mocks.MockApiRepo) error { return boom },
	}

	repo, err := r.Build()
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, repo)
}
