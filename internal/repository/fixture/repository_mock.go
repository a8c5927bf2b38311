// Package fixture prepares mock repositories with canned results so repository
// contract tests, services and the fixture server can run without a backing store.
package fixture

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// RepositoryMock pairs a mock constructor with the function that registers its stubs.
type RepositoryMock[M any] struct {
	New     func() M
	Prepare func(M) error
}

// Build constructs a mock and registers its stubs.
func (r RepositoryMock[M]) Build() (M, error) {
	m := r.New()
	if err := r.Prepare(m); err != nil {
		var zero M
		return zero, err
	}
	return m, nil
}

// Setup builds a fresh mock for t. Unexpected calls are reported through t
// rather than panicking, and the mock is released when t finishes.
func (r RepositoryMock[M]) Setup(t testing.TB) M {
	t.Helper()
	m, err := r.Build()
	if err != nil {
		t.Fatalf("preparing repository mock: %v", err)
	}
	if bound, ok := any(m).(interface{ Test(mock.TestingT) }); ok {
		bound.Test(t)
		t.Cleanup(func() { bound.Test(nil) })
	}
	return m
}
