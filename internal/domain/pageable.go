package domain

// Pageable requests one page of a search result. Page numbers are zero-based.
// The zero value means "no pagination".
type Pageable struct {
	pageNumber int
	pageSize   int
}

func (p *Pageable) PageNumber() int { return p.pageNumber }
func (p *Pageable) PageSize() int   { return p.pageSize }

// IsUnpaged reports whether p requests the whole result.
func (p *Pageable) IsUnpaged() bool {
	return p == nil || p.pageSize == 0
}

// PageableBuilder assembles a Pageable.
type PageableBuilder struct {
	p Pageable
}

func NewPageableBuilder() *PageableBuilder {
	return &PageableBuilder{}
}

func (b *PageableBuilder) PageNumber(n int) *PageableBuilder {
	b.p.pageNumber = n
	return b
}

func (b *PageableBuilder) PageSize(n int) *PageableBuilder {
	b.p.pageSize = n
	return b
}

// Build returns the configured Pageable, or ErrInvalidPageable for negative values.
func (b *PageableBuilder) Build() (*Pageable, error) {
	if b.p.pageNumber < 0 || b.p.pageSize < 0 {
		return nil, ErrInvalidPageable
	}
	p := b.p
	return &p, nil
}

// MustBuild is Build for literal arguments known to be valid.
func (b *PageableBuilder) MustBuild() *Pageable {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
