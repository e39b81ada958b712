package service

import "context"

// CatalogCache is a best-effort read cache for catalog projections.
// Callers treat every error as a miss.
type CatalogCache interface {
	// Get decodes the cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any) error

	// Invalidate drops every cached catalog entry.
	Invalidate(ctx context.Context) error
}
