package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
type UserModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email             string     `gorm:"type:varchar(256);not null"`
	NormalizedEmail   string     `gorm:"type:varchar(256);not null;uniqueIndex:idx_users_normalized_email"`
	PasswordHash      string     `gorm:"type:varchar(255);not null"`
	Name              string     `gorm:"type:varchar(100)"`
	BirthDate         *time.Time `gorm:"type:date"`
	PhotoRef          string     `gorm:"type:varchar(255)"`
	EmailConfirmed    bool       `gorm:"not null;default:false"`
	LockoutEnabled    bool       `gorm:"not null"`
	LockoutEnd        *time.Time
	AccessFailedCount int `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(64);not null"`
	NormalizedName string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_roles_normalized_name"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel mirrors the 'user_roles' join table. Rows go away with their user or role.
type UserRoleModel struct {
	UserID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID  `gorm:"type:uuid;primaryKey;index"`
	User   *UserModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Role   *RoleModel `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
