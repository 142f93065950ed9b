// Package service holds the domain logic between the HTTP handlers and the
// repositories: the social graph, engagement counters, content ownership
// gates, and view assembly.
package service

import (
	"errors"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
)

// View paths used for cache invalidation after mutations.
const (
	ViewFeed    = "/feed"
	ViewNetwork = "/network"
	ViewProfile = "/profile/"
)

// ViewInvalidator is the fire-and-forget invalidation signal emitted after
// each successful mutation.
type ViewInvalidator interface {
	InvalidateViews(paths ...string)
}

// NopInvalidator satisfies ViewInvalidator when no event bus is wired.
type NopInvalidator struct{}

func (NopInvalidator) InvalidateViews(...string) {}

// storeErr wraps a repository error as a StoreFailure unless it already
// carries a sentinel from the taxonomy.
func storeErr(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Store(op, err)
}
