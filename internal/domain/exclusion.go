package domain

// ApiFieldExclusionFilter marks Api fields a search may leave out of its results.
type ApiFieldExclusionFilter struct {
	definition bool
	picture    bool
}

func (f *ApiFieldExclusionFilter) IsDefinitionExcluded() bool { return f != nil && f.definition }
func (f *ApiFieldExclusionFilter) IsPictureExcluded() bool    { return f != nil && f.picture }

// ApiFieldExclusionFilterBuilder assembles an ApiFieldExclusionFilter.
type ApiFieldExclusionFilterBuilder struct {
	f ApiFieldExclusionFilter
}

func NewApiFieldExclusionFilterBuilder() *ApiFieldExclusionFilterBuilder {
	return &ApiFieldExclusionFilterBuilder{}
}

func (b *ApiFieldExclusionFilterBuilder) ExcludeDefinition() *ApiFieldExclusionFilterBuilder {
	b.f.definition = true
	return b
}

func (b *ApiFieldExclusionFilterBuilder) ExcludePicture() *ApiFieldExclusionFilterBuilder {
	b.f.picture = true
	return b
}

func (b *ApiFieldExclusionFilterBuilder) Build() *ApiFieldExclusionFilter {
	f := b.f
	return &f
}
