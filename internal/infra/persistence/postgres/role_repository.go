package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) FindByName(ctx context.Context, role entity.Role) (*entity.RoleRecord, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("normalized_name = ?", role.Normalized()).
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role")
	}

	return toRoleDomain(&roleM), nil
}

// EnsureRole inserts the role unless a row with the same normalized name exists.
// Concurrent callers converge on the same row.
func (repo *roleRepository) EnsureRole(ctx context.Context, role entity.Role) (*entity.RoleRecord, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate role id")
	}

	roleM := &model.RoleModel{
		ID:             id,
		Name:           role.String(),
		NormalizedName: role.Normalized(),
	}
	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "normalized_name"}},
			DoNothing: true,
		}).
		Create(roleM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	return repo.FindByName(ctx, role)
}

func (repo *roleRepository) AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	roleRecord, err := repo.FindByName(ctx, role)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserRoleModel{UserID: userID, RoleID: roleRecord.ID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

// ListByUserID reads from the primary: roles are assigned in the registration
// transaction and sealed into the token right after.
func (repo *roleRepository) ListByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RoleModel{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.name").
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user roles")
	}

	roles := make(entity.Roles, 0, len(names))
	for _, name := range names {
		roles = append(roles, entity.Role(name))
	}

	return roles, nil
}

func (repo *roleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RoleModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count roles")
	}

	return count, nil
}

func toRoleDomain(data *model.RoleModel) *entity.RoleRecord {
	if data == nil {
		return nil
	}

	return &entity.RoleRecord{
		ID:             data.ID,
		Name:           entity.Role(data.Name),
		NormalizedName: data.NormalizedName,
	}
}
