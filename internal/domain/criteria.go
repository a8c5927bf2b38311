package domain

import "slices"

// ApiCriteria is an immutable set of optional filters for ApiRepository searches.
// Two criteria are equal when every filter matches; unset filters are zero.
type ApiCriteria struct {
	ids        []string
	groups     []string
	name       string
	version    string
	view       string
	label      string
	state      LifecycleState
	visibility Visibility
}

func (c *ApiCriteria) IDs() []string          { return slices.Clone(c.ids) }
func (c *ApiCriteria) Groups() []string       { return slices.Clone(c.groups) }
func (c *ApiCriteria) Name() string           { return c.name }
func (c *ApiCriteria) Version() string        { return c.version }
func (c *ApiCriteria) View() string           { return c.view }
func (c *ApiCriteria) Label() string          { return c.label }
func (c *ApiCriteria) State() LifecycleState  { return c.state }
func (c *ApiCriteria) Visibility() Visibility { return c.visibility }

// IsEmpty reports whether no filter is set. A nil criteria is empty.
func (c *ApiCriteria) IsEmpty() bool {
	return c == nil || c.Equal(&ApiCriteria{})
}

// Equal reports whether c and o carry the same filters. A nil criteria only equals nil.
func (c *ApiCriteria) Equal(o *ApiCriteria) bool {
	if c == nil || o == nil {
		return c == o
	}
	return slices.Equal(c.ids, o.ids) &&
		slices.Equal(c.groups, o.groups) &&
		c.name == o.name &&
		c.version == o.version &&
		c.view == o.view &&
		c.label == o.label &&
		c.state == o.state &&
		c.visibility == o.visibility
}

// ApiCriteriaBuilder assembles an ApiCriteria. The zero value is ready to use.
type ApiCriteriaBuilder struct {
	c ApiCriteria
}

// NewApiCriteriaBuilder returns an empty builder.
func NewApiCriteriaBuilder() *ApiCriteriaBuilder {
	return &ApiCriteriaBuilder{}
}

// IDs restricts the search to the given identifiers. Order and duplicates are ignored.
func (b *ApiCriteriaBuilder) IDs(ids ...string) *ApiCriteriaBuilder {
	b.c.ids = normalizeSet(ids)
	return b
}

// Groups restricts the search to APIs in any of the given groups.
func (b *ApiCriteriaBuilder) Groups(groups ...string) *ApiCriteriaBuilder {
	b.c.groups = normalizeSet(groups)
	return b
}

func (b *ApiCriteriaBuilder) Name(name string) *ApiCriteriaBuilder {
	b.c.name = name
	return b
}

func (b *ApiCriteriaBuilder) Version(version string) *ApiCriteriaBuilder {
	b.c.version = version
	return b
}

func (b *ApiCriteriaBuilder) View(view string) *ApiCriteriaBuilder {
	b.c.view = view
	return b
}

func (b *ApiCriteriaBuilder) Label(label string) *ApiCriteriaBuilder {
	b.c.label = label
	return b
}

func (b *ApiCriteriaBuilder) State(state LifecycleState) *ApiCriteriaBuilder {
	b.c.state = state
	return b
}

func (b *ApiCriteriaBuilder) Visibility(visibility Visibility) *ApiCriteriaBuilder {
	b.c.visibility = visibility
	return b
}

// Build returns a snapshot of the configured criteria. Later builder calls do not affect it.
func (b *ApiCriteriaBuilder) Build() *ApiCriteria {
	c := b.c
	c.ids = slices.Clone(b.c.ids)
	c.groups = slices.Clone(b.c.groups)
	return &c
}

// normalizeSet sorts and de-duplicates values so set filters compare by content.
// An empty input yields nil.
func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
