package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products. Its ID is assigned by storage and never changes.
type Category struct {
	ID        int64
	Name      string
	Color     string
	PhotoRef  string // Image store reference, empty when the category has no photo.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a sellable item. It always belongs to an existing Category.
type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	Quantity    int
	CostValue   decimal.Decimal
	SaleValue   decimal.Decimal
	Featured    bool
	PhotoRef    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID   *int64
	FeaturedOnly bool
}
