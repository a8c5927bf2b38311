package fixture

import (
	"time"

	"apicatalog/internal/dateutil"
	"apicatalog/internal/domain"
)

// ApiFixtures holds the named APIs served by the prepared ApiRepository mock.
type ApiFixtures struct {
	ToDelete   *domain.Api // "api-to-delete"
	ToUpdate   *domain.Api // "api-to-update", first read
	Updated    *domain.Api // "api-to-update", second read
	New        *domain.Api // "sample-new"
	Grouped    *domain.Api // "grouped-api"
	ToFindByID *domain.Api // "api-to-findById"
}

// NewApiFixtures builds a fresh set of fixture APIs.
func NewApiFixtures() (*ApiFixtures, error) {
	d := dates{}
	f := &ApiFixtures{
		ToDelete: &domain.Api{ID: "api-to-delete"},
		ToUpdate: &domain.Api{ID: "api-to-update", Name: "api-to-update"},
		Updated: &domain.Api{
			Name:           "New API name",
			Description:    "New description",
			Views:          []string{"view1", "view2"},
			Definition:     "New definition",
			DeployedAt:     d.at("11/02/2016"),
			Groups:         []string{"New group"},
			LifecycleState: domain.LifecycleStateStarted,
			Picture:        "New picture",
			CreatedAt:      d.at("11/02/2016"),
			UpdatedAt:      d.at("13/11/2016"),
			Version:        "New version",
			Visibility:     domain.VisibilityPrivate,
		},
		New: &domain.Api{
			Version:        "1",
			LifecycleState: domain.LifecycleStateStopped,
			Visibility:     domain.VisibilityPrivate,
			Definition:     "{}",
			CreatedAt:      d.at("11/02/2016"),
			UpdatedAt:      d.at("12/02/2016"),
		},
		Grouped: &domain.Api{ID: "grouped-api", Groups: []string{"api-group"}},
		ToFindByID: &domain.Api{
			ID:             "api-to-findById",
			Version:        "1",
			Name:           "api-to-findById",
			LifecycleState: domain.LifecycleStateStopped,
			Visibility:     domain.VisibilityPublic,
			CreatedAt:      d.at("11/02/2016"),
			UpdatedAt:      d.at("12/02/2016"),
			Labels:         []string{"label 1", "label 2"},
		},
	}
	if d.err != nil {
		return nil, d.err
	}
	return f, nil
}

// dates parses fixture date literals, keeping the first error.
type dates struct {
	err error
}

func (d *dates) at(s string) *time.Time {
	t, err := dateutil.ParsePtr(s)
	if err != nil && d.err == nil {
		d.err = err
	}
	return t
}
