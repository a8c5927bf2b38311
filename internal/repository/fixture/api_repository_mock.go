package fixture

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"apicatalog/internal/domain"
	"apicatalog/mocks"
)

// UnknownApiID is the id Update rejects with domain.ErrApiIllegalState.
const UnknownApiID = "unknown"

// ApiRepositoryMock builds MockApiRepo instances prepared by PrepareApiRepository.
var ApiRepositoryMock = RepositoryMock[*mocks.MockApiRepo]{
	New:     func() *mocks.MockApiRepo { return new(mocks.MockApiRepo) },
	Prepare: PrepareApiRepository,
}

// NewApiRepositoryMock returns a prepared MockApiRepo outside of a test.
func NewApiRepositoryMock() (*mocks.MockApiRepo, error) {
	return ApiRepositoryMock.Build()
}

// SetupApiRepository returns a prepared MockApiRepo scoped to t.
func SetupApiRepository(t testing.TB) *mocks.MockApiRepo {
	t.Helper()
	return ApiRepositoryMock.Setup(t)
}

// PrepareApiRepository registers the canned ApiRepository results on repo.
// Calls matching no registered arguments return an empty or absent result.
func PrepareApiRepository(repo *mocks.MockApiRepo) error {
	f, err := NewApiFixtures()
	if err != nil {
		return err
	}

	// Each lookup changes between two reads; the last value repeats afterwards.
	findByID(repo, "api-to-update").Return(f.ToUpdate, nil).Once()
	findByID(repo, "api-to-update").Return(f.Updated, nil)
	findByID(repo, "api-to-delete").Return(f.ToDelete, nil).Once()
	findByID(repo, "api-to-delete").Return(nil, domain.ErrApiNotFound)

	findByID(repo, "findByNameMissing").Return(nil, domain.ErrApiNotFound)
	findByID(repo, "sample-new").Return(f.New, nil)
	findByID(repo, "grouped-api").Return(f.Grouped, nil)
	findByID(repo, "api-to-findById").Return(f.ToFindByID, nil)

	search(repo, nil).
		Return([]*domain.Api{{}, {}, {}, {}}, nil)
	search(repo, criteria().IDs("api-to-delete", "api-to-update", UnknownApiID).Build()).
		Return([]*domain.Api{f.ToUpdate, f.ToDelete}, nil)

	repo.On("Update", mock.Anything, mock.MatchedBy(func(api *domain.Api) bool {
		return api == nil || api.ID == UnknownApiID
	})).Return(nil, domain.ErrApiIllegalState).Maybe()

	search(repo, criteria().Name("api-to-findById").Build()).
		Return([]*domain.Api{f.ToFindByID}, nil)
	search(repo, criteria().View("my-view").Build()).
		Return([]*domain.Api{f.ToFindByID}, nil)
	search(repo, criteria().Name("api-to-findById").Version("1").Build()).
		Return([]*domain.Api{f.ToFindByID}, nil)
	repo.On("SearchExcluding", mock.Anything,
		criteria().Name("api-to-findById").Version("1").Build(),
		domain.NewApiFieldExclusionFilterBuilder().ExcludeDefinition().Build(),
	).Return([]*domain.Api{f.ToFindByID}, nil).Maybe()
	search(repo, criteria().Groups("api-group", "unknown").Build()).
		Return([]*domain.Api{f.Grouped}, nil)
	search(repo, criteria().Version("1").Build()).
		Return([]*domain.Api{f.ToFindByID, f.Grouped, f.ToDelete, f.ToUpdate}, nil)
	search(repo, criteria().Label("label 1").Build()).
		Return([]*domain.Api{f.ToFindByID}, nil)
	search(repo, criteria().State(domain.LifecycleStateStopped).Build()).
		Return([]*domain.Api{f.ToFindByID, f.Grouped, f.ToDelete, f.ToUpdate}, nil)
	search(repo, criteria().Visibility(domain.VisibilityPublic).Build()).
		Return([]*domain.Api{f.ToFindByID, f.Grouped}, nil)

	versionOne := criteria().Version("1").Build()
	searchPage(repo, versionOne, domain.NewPageableBuilder().PageNumber(0).PageSize(2).MustBuild()).
		Return(domain.NewPage([]*domain.Api{f.ToDelete, f.ToFindByID}, 0, 2, 4), nil)
	searchPage(repo, versionOne, domain.NewPageableBuilder().PageNumber(1).PageSize(2).MustBuild()).
		Return(domain.NewPage([]*domain.Api{f.ToUpdate, f.Grouped}, 1, 2, 4), nil)
	searchPage(repo, versionOne, domain.NewPageableBuilder().MustBuild()).
		Return(domain.NewPage([]*domain.Api{f.ToDelete, f.ToFindByID, f.ToUpdate, f.Grouped}, 0, 4, 4), nil)

	registerDefaults(repo)
	return nil
}

// registerDefaults answers every call the table above does not match.
// They must be registered last: the first matching registration wins.
func registerDefaults(repo *mocks.MockApiRepo) {
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, domain.ErrApiNotFound).Maybe()
	repo.On("Search", mock.Anything, mock.Anything).Return([]*domain.Api{}, nil).Maybe()
	repo.On("SearchExcluding", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Api{}, nil).Maybe()
	repo.On("SearchPage", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.NewPage([]*domain.Api{}, 0, 0, 0), nil).Maybe()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.On("Delete", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func criteria() *domain.ApiCriteriaBuilder {
	return domain.NewApiCriteriaBuilder()
}

func findByID(repo *mocks.MockApiRepo, id string) *mock.Call {
	return repo.On("FindByID", mock.Anything, id).Maybe()
}

func search(repo *mocks.MockApiRepo, c *domain.ApiCriteria) *mock.Call {
	return repo.On("Search", mock.Anything, c).Maybe()
}

func searchPage(repo *mocks.MockApiRepo, c *domain.ApiCriteria, p *domain.Pageable) *mock.Call {
	return repo.On("SearchPage", mock.Anything, c, p).Maybe()
}
