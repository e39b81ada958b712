package usecase

import "context"

// SeedReport counts what a seed run inserted. Zero counts mean the data was already present.
type SeedReport struct {
	RolesCreated      int
	AdminCreated      bool
	CategoriesCreated int
	ProductsCreated   int
}

// SeedUsecase applies bootstrap data. Applying it repeatedly yields the same rows.
type SeedUsecase interface {
	Apply(ctx context.Context) (*SeedReport, error)
}
