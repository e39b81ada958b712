package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Color     string `gorm:"type:varchar(32)"`
	PhotoRef  string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Deleting a referenced category is restricted.
type ProductModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	CategoryID  int64           `gorm:"not null;index:idx_products_category_id"`
	Category    *CategoryModel  `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name        string          `gorm:"type:varchar(150);not null"`
	Description string          `gorm:"type:text"`
	Quantity    int             `gorm:"not null;default:0;check:chk_products_quantity,quantity >= 0"`
	CostValue   decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_cost_value,cost_value >= 0"`
	SaleValue   decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_sale_value,sale_value >= 0"`
	Featured    bool            `gorm:"not null;default:false;index:idx_products_featured"`
	PhotoRef    string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// All lists every persisted model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&RoleModel{},
		&UserRoleModel{},
		&CategoryModel{},
		&ProductModel{},
	}
}
