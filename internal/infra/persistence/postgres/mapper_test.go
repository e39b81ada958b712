package postgres

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserMapper_KeepsSignInState(t *testing.T) {
	lockoutEnd := time.Now().Add(5 * time.Minute).UTC()
	user := &entity.User{
		ID:                uuid.New(),
		Email:             "Admin@Example.com",
		NormalizedEmail:   "ADMIN@EXAMPLE.COM",
		PasswordHash:      "$2a$10$hash",
		Name:              "Admin",
		LockoutEnabled:    true,
		LockoutEnd:        &lockoutEnd,
		AccessFailedCount: 2,
	}

	got := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user, got)
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestProductMapper_KeepsDecimals(t *testing.T) {
	product := &entity.Product{
		ID:         7,
		CategoryID: 2,
		Name:       "Espresso",
		Quantity:   10,
		CostValue:  decimal.RequireFromString("1.25"),
		SaleValue:  decimal.RequireFromString("3.50"),
		Featured:   true,
		PhotoRef:   "products/espresso.png",
	}

	got := toProductDomain(fromProductDomain(product))

	assert.Equal(t, product.ID, got.ID)
	assert.True(t, product.CostValue.Equal(got.CostValue))
	assert.True(t, product.SaleValue.Equal(got.SaleValue))
	assert.Equal(t, product.PhotoRef, got.PhotoRef)
}

func TestCategoryMapper(t *testing.T) {
	category := &entity.Category{ID: 3, Name: "Tea", Color: "#00AA00", PhotoRef: "categories/tea.jpg"}

	assert.Equal(t, category, toCategoryDomain(fromCategoryDomain(category)))
}

func TestRoleMapper(t *testing.T) {
	id := uuid.New()
	got := toRoleDomain(&model.RoleModel{ID: id, Name: "Administrator", NormalizedName: "ADMINISTRATOR"})

	assert.Equal(t, &entity.RoleRecord{ID: id, Name: entity.RoleAdministrator, NormalizedName: "ADMINISTRATOR"}, got)
}

func TestModelsAllListsEveryTable(t *testing.T) {
	tables := make([]string, 0)
	for _, m := range model.All() {
		if tabler, ok := m.(interface{ TableName() string }); ok {
			tables = append(tables, tabler.TableName())
		}
	}

	assert.Equal(t, []string{"users", "roles", "user_roles", "categories", "products"}, tables)
}
