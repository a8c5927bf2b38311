// Package contract holds behavioural test suites every repository implementation must pass.
package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apicatalog/internal/dateutil"
	"apicatalog/internal/domain"
	"apicatalog/internal/port"
)

// ApiRepositoryFactory returns a repository loaded with the shared API data set
// ("api-to-update", "api-to-delete", "grouped-api", "api-to-findById", ...).
type ApiRepositoryFactory func(t *testing.T) port.ApiRepository

// RunApiRepository runs the ApiRepository contract. Each subtest gets its own repository.
func RunApiRepository(t *testing.T, newRepo ApiRepositoryFactory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, repo port.ApiRepository)
	}{
		{"FindByID", testFindByID},
		{"FindByID_Missing", testFindByIDMissing},
		{"Create", testCreate},
		{"Update", testUpdate},
		{"Update_Unknown", testUpdateUnknown},
		{"Update_Nil", testUpdateNil},
		{"Delete", testDelete},
		{"Search_All", testSearchAll},
		{"Search_ByIDs", testSearchByIDs},
		{"Search_ByName", testSearchByName},
		{"Search_ByView", testSearchByView},
		{"Search_ByNameAndVersion", testSearchByNameAndVersion},
		{"Search_ExcludingDefinition", testSearchExcludingDefinition},
		{"Search_ByGroups", testSearchByGroups},
		{"Search_ByVersion", testSearchByVersion},
		{"Search_ByLabel", testSearchByLabel},
		{"Search_ByState", testSearchByState},
		{"Search_ByVisibility", testSearchByVisibility},
		{"Search_Unmatched", testSearchUnmatched},
		{"SearchPage", testSearchPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newRepo(t))
		})
	}
}

func testFindByID(t *testing.T, repo port.ApiRepository) {
	api, err := repo.FindByID(context.Background(), "api-to-findById")
	require.NoError(t, err)

	assert.Equal(t, "api-to-findById", api.ID)
	assert.Equal(t, "api-to-findById", api.Name)
	assert.Equal(t, "1", api.Version)
	assert.Equal(t, domain.LifecycleStateStopped, api.LifecycleState)
	assert.Equal(t, domain.VisibilityPublic, api.Visibility)
	assert.Empty(t, api.Definition)
	assertDay(t, "11/02/2016", api.CreatedAt)
	assertDay(t, "12/02/2016", api.UpdatedAt)
	assert.Equal(t, []string{"label 1", "label 2"}, api.Labels)
}

func testFindByIDMissing(t *testing.T, repo port.ApiRepository) {
	api, err := repo.FindByID(context.Background(), "findByNameMissing")
	assert.ErrorIs(t, err, domain.ErrApiNotFound)
	assert.Nil(t, api)
}

func testCreate(t *testing.T, repo port.ApiRepository) {
	ctx := context.Background()
	_, err := repo.Create(ctx, &domain.Api{
		ID:             "sample-new",
		Version:        "1",
		LifecycleState: domain.LifecycleStateStopped,
		Visibility:     domain.VisibilityPrivate,
		Definition:     "{}",
		CreatedAt:      dayPtr(t, "11/02/2016"),
		UpdatedAt:      dayPtr(t, "12/02/2016"),
	})
	require.NoError(t, err)

	api, err := repo.FindByID(ctx, "sample-new")
	require.NoError(t, err)
	assert.Equal(t, "1", api.Version)
	assert.Equal(t, domain.LifecycleStateStopped, api.LifecycleState)
	assert.Equal(t, domain.VisibilityPrivate, api.Visibility)
	assert.Equal(t, "{}", api.Definition)
	assertDay(t, "11/02/2016", api.CreatedAt)
	assertDay(t, "12/02/2016", api.UpdatedAt)
}

func testUpdate(t *testing.T, repo port.ApiRepository) {
	ctx := context.Background()
	api, err := repo.FindByID(ctx, "api-to-update")
	require.NoError(t, err, "api to update not found")
	assert.Equal(t, "api-to-update", api.Name)

	changed := *api
	changed.Name = "New API name"
	changed.Description = "New description"
	changed.Views = []string{"view1", "view2"}
	changed.Definition = "New definition"
	changed.DeployedAt = dayPtr(t, "11/02/2016")
	changed.Groups = []string{"New group"}
	changed.LifecycleState = domain.LifecycleStateStarted
	changed.Picture = "New picture"
	changed.CreatedAt = dayPtr(t, "11/02/2016")
	changed.UpdatedAt = dayPtr(t, "13/11/2016")
	changed.Version = "New version"
	changed.Visibility = domain.VisibilityPrivate
	_, err = repo.Update(ctx, &changed)
	require.NoError(t, err)

	updated, err := repo.FindByID(ctx, "api-to-update")
	require.NoError(t, err, "api to update not found")
	assert.Equal(t, "New API name", updated.Name)
	assert.Equal(t, "New description", updated.Description)
	assert.ElementsMatch(t, []string{"view1", "view2"}, updated.Views)
	assert.Equal(t, "New definition", updated.Definition)
	assertDay(t, "11/02/2016", updated.DeployedAt)
	assert.Equal(t, []string{"New group"}, updated.Groups)
	assert.Equal(t, domain.LifecycleStateStarted, updated.LifecycleState)
	assert.Equal(t, "New picture", updated.Picture)
	assertDay(t, "11/02/2016", updated.CreatedAt)
	assertDay(t, "13/11/2016", updated.UpdatedAt)
	assert.Equal(t, "New version", updated.Version)
	assert.Equal(t, domain.VisibilityPrivate, updated.Visibility)
}

func testUpdateUnknown(t *testing.T, repo port.ApiRepository) {
	_, err := repo.Update(context.Background(), &domain.Api{ID: "unknown", Name: "Unknown API"})
	assert.ErrorIs(t, err, domain.ErrApiIllegalState)
}

func testUpdateNil(t *testing.T, repo port.ApiRepository) {
	_, err := repo.Update(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrApiIllegalState)
}

func testDelete(t *testing.T, repo port.ApiRepository) {
	ctx := context.Background()
	api, err := repo.FindByID(ctx, "api-to-delete")
	require.NoError(t, err, "api to delete not found")
	require.Equal(t, "api-to-delete", api.ID)

	require.NoError(t, repo.Delete(ctx, "api-to-delete"))

	_, err = repo.FindByID(ctx, "api-to-delete")
	assert.ErrorIs(t, err, domain.ErrApiNotFound, "api was not deleted")
}

func testSearchAll(t *testing.T, repo port.ApiRepository) {
	apis, err := repo.Search(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, apis, 4)
}

func testSearchByIDs(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().IDs("api-to-delete", "api-to-update", "unknown"))
	assert.Equal(t, []string{"api-to-update", "api-to-delete"}, ids(apis))
}

func testSearchByName(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().Name("api-to-findById"))
	assert.Equal(t, []string{"api-to-findById"}, ids(apis))
}

func testSearchByView(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().View("my-view"))
	assert.Equal(t, []string{"api-to-findById"}, ids(apis))
}

func testSearchByNameAndVersion(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().Name("api-to-findById").Version("1"))
	assert.Equal(t, []string{"api-to-findById"}, ids(apis))
}

func testSearchExcludingDefinition(t *testing.T, repo port.ApiRepository) {
	apis, err := repo.SearchExcluding(context.Background(),
		domain.NewApiCriteriaBuilder().Name("api-to-findById").Version("1").Build(),
		domain.NewApiFieldExclusionFilterBuilder().ExcludeDefinition().Build())
	require.NoError(t, err)
	require.Equal(t, []string{"api-to-findById"}, ids(apis))
	assert.Empty(t, apis[0].Definition)
}

func testSearchByGroups(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().Groups("api-group", "unknown"))
	assert.Equal(t, []string{"grouped-api"}, ids(apis))
}

func testSearchByVersion(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().Version("1"))
	assert.Equal(t, []string{"api-to-findById", "grouped-api", "api-to-delete", "api-to-update"}, ids(apis))
}

func testSearchByLabel(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().Label("label 1"))
	assert.Equal(t, []string{"api-to-findById"}, ids(apis))
}

func testSearchByState(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().State(domain.LifecycleStateStopped))
	assert.Equal(t, []string{"api-to-findById", "grouped-api", "api-to-delete", "api-to-update"}, ids(apis))
}

func testSearchByVisibility(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().Visibility(domain.VisibilityPublic))
	assert.Equal(t, []string{"api-to-findById", "grouped-api"}, ids(apis))
}

func testSearchUnmatched(t *testing.T, repo port.ApiRepository) {
	apis := search(t, repo, domain.NewApiCriteriaBuilder().Name("no-such-api").Version("1"))
	assert.Empty(t, apis)
}

func testSearchPage(t *testing.T, repo port.ApiRepository) {
	ctx := context.Background()
	versionOne := domain.NewApiCriteriaBuilder().Version("1").Build()

	first, err := repo.SearchPage(ctx, versionOne, domain.NewPageableBuilder().PageNumber(0).PageSize(2).MustBuild())
	require.NoError(t, err)
	assert.Equal(t, []string{"api-to-delete", "api-to-findById"}, ids(first.Content))
	assert.Equal(t, 0, first.PageNumber)
	assert.Equal(t, 2, first.PageElements)
	assert.Equal(t, int64(4), first.TotalElements)

	second, err := repo.SearchPage(ctx, versionOne, domain.NewPageableBuilder().PageNumber(1).PageSize(2).MustBuild())
	require.NoError(t, err)
	assert.Equal(t, []string{"api-to-update", "grouped-api"}, ids(second.Content))
	assert.Equal(t, 1, second.PageNumber)
	assert.Equal(t, 2, second.PageElements)
	assert.Equal(t, int64(4), second.TotalElements)

	all, err := repo.SearchPage(ctx, versionOne, domain.NewPageableBuilder().MustBuild())
	require.NoError(t, err)
	assert.Equal(t, []string{"api-to-delete", "api-to-findById", "api-to-update", "grouped-api"}, ids(all.Content))
	assert.Equal(t, 0, all.PageNumber)
	assert.Equal(t, 4, all.PageElements)
	assert.Equal(t, int64(4), all.TotalElements)
}

func search(t *testing.T, repo port.ApiRepository, b *domain.ApiCriteriaBuilder) []*domain.Api {
	t.Helper()
	apis, err := repo.Search(context.Background(), b.Build())
	require.NoError(t, err)
	return apis
}

func ids(apis []*domain.Api) []string {
	out := make([]string, 0, len(apis))
	for _, a := range apis {
		out = append(out, a.ID)
	}
	return out
}

func dayPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := dateutil.ParsePtr(s)
	require.NoError(t, err)
	return d
}

func assertDay(t *testing.T, want string, got *time.Time) {
	t.Helper()
	if assert.NotNil(t, got) {
		assert.True(t, dayPtr(t, want).Equal(*got), "want %s, got %s", want, got)
	}
}
