package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// imagePathPrefix is where ImageHandler serves stored images.
const imagePathPrefix = "/images/"

// UserView is the JSON form of a user summary.
type UserView struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	PhotoURL       string     `json:"photo_url,omitempty"`
	EmailConfirmed bool       `json:"email_confirmed"`
	LockedOut      bool       `json:"locked_out"`
	Roles          []string   `json:"roles"`
}

// AuthView is returned by register and login.
type AuthView struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *UserView `json:"user"`
}

// CategoryView is the JSON form of a category.
type CategoryView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductView is the JSON form of a product. Money is rendered as decimal strings.
type ProductView struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	CostValue   decimal.Decimal `json:"cost_value"`
	SaleValue   decimal.Decimal `json:"sale_value"`
	Featured    bool            `json:"featured"`
	PhotoURL    string          `json:"photo_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func photoURL(ref string) string {
	if ref == "" {
		return ""
	}

	return imagePathPrefix + ref
}

func newUserView(summary *usecase.UserSummary) *UserView {
	if summary == nil {
		return nil
	}

	return &UserView{
		ID:             summary.ID,
		Email:          summary.Email,
		Name:           summary.Name,
		BirthDate:      summary.BirthDate,
		PhotoURL:       photoURL(summary.PhotoRef),
		EmailConfirmed: summary.EmailConfirmed,
		LockedOut:      summary.LockedOut,
		Roles:          summary.Roles.ToStrings(),
	}
}

func newAuthView(output *usecase.AuthOutput) *AuthView {
	return &AuthView{
		Token:     output.Token,
		TokenType: "Bearer",
		ExpiresAt: output.ExpiresAt,
		User:      newUserView(output.User),
	}
}

func newCategoryView(category *entity.Category) *CategoryView {
	return &CategoryView{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		PhotoURL:  photoURL(category.PhotoRef),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func newCategoryViews(categories []*entity.Category) []*CategoryView {
	views := make([]*CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}

	return views
}

func newProductView(product *entity.Product) *ProductView {
	return &ProductView{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		Quantity:    product.Quantity,
		CostValue:   product.CostValue,
		SaleValue:   product.SaleValue,
		Featured:    product.Featured,
		PhotoURL:    photoURL(product.PhotoRef),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}
