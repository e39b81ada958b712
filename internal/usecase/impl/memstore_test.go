package impl

import (
	"bytes"
	"context"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// memStore is a transactional in-memory stand-in for the relational store.
// A failed Execute restores the state it started from.
type memStore struct {
	users          map[uuid.UUID]entity.User
	roles          map[string]entity.RoleRecord
	userRoles      map[uuid.UUID]entity.Roles
	categories     map[int64]entity.Category
	products       map[int64]entity.Product
	nextCategoryID int64
	nextProductID  int64
}

func newMemStore() *memStore {
	return &memStore{
		users:          map[uuid.UUID]entity.User{},
		roles:          map[string]entity.RoleRecord{},
		userRoles:      map[uuid.UUID]entity.Roles{},
		categories:     map[int64]entity.Category{},
		products:       map[int64]entity.Product{},
		nextCategoryID: 1,
		nextProductID:  1,
	}
}

func (s *memStore) snapshot() *memStore {
	userRoles := make(map[uuid.UUID]entity.Roles, len(s.userRoles))
	for id, roles := range s.userRoles {
		userRoles[id] = slices.Clone(roles)
	}

	return &memStore{
		users:          maps.Clone(s.users),
		roles:          maps.Clone(s.roles),
		userRoles:      userRoles,
		categories:     maps.Clone(s.categories),
		products:       maps.Clone(s.products),
		nextCategoryID: s.nextCategoryID,
		nextProductID:  s.nextProductID,
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	saved := s.snapshot()
	if err := fn(s); err != nil {
		*s = *saved

		return err
	}

	return nil
}

func (s *memStore) UserRepo() repository.UserRepository         { return memUserRepo{s} }
func (s *memStore) RoleRepo() repository.RoleRepository         { return memRoleRepo{s} }
func (s *memStore) CategoryRepo() repository.CategoryRepository { return memCategoryRepo{s} }
func (s *memStore) ProductRepo() repository.ProductRepository   { return memProductRepo{s} }

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r memUserRepo) FindByNormalizedEmail(_ context.Context, normalizedEmail string) (*entity.User, error) {
	for _, user := range r.s.users {
		if user.NormalizedEmail == normalizedEmail {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.FindByNormalizedEmail(ctx, user.NormalizedEmail); err == nil {
		return domainerrors.ErrDuplicateIdentifier.WrapMessage("email already exists")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	stored.Roles = nil
	r.s.users[user.ID] = stored

	return nil
}

func (r memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	stored := *user
	stored.Roles = nil
	r.s.users[user.ID] = stored

	return nil
}

func (r memUserRepo) UpdateSignInState(_ context.Context, user *entity.User) error {
	stored, ok := r.s.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	stored.AccessFailedCount = user.AccessFailedCount
	stored.LockoutEnd = user.LockoutEnd
	r.s.users[user.ID] = stored

	return nil
}

func (r memUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.s.users)), nil
}

type memRoleRepo struct{ s *memStore }

func (r memRoleRepo) FindByName(_ context.Context, role entity.Role) (*entity.RoleRecord, error) {
	record, ok := r.s.roles[role.Normalized()]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}

	return &record, nil
}

func (r memRoleRepo) EnsureRole(ctx context.Context, role entity.Role) (*entity.RoleRecord, error) {
	if _, ok := r.s.roles[role.Normalized()]; !ok {
		r.s.roles[role.Normalized()] = entity.RoleRecord{ID: uuid.New(), Name: role, NormalizedName: role.Normalized()}
	}

	return r.FindByName(ctx, role)
}

func (r memRoleRepo) AssignRole(_ context.Context, userID uuid.UUID, role entity.Role) error {
	if _, ok := r.s.roles[role.Normalized()]; !ok {
		return repository.ErrRoleNotFound
	}
	if _, ok := r.s.users[userID]; !ok {
		return domainerrors.ErrInvalidReference.WrapMessage("user does not exist")
	}
	if !r.s.userRoles[userID].Contains(role) {
		r.s.userRoles[userID] = append(r.s.userRoles[userID], role)
	}

	return nil
}

func (r memRoleRepo) ListByUserID(_ context.Context, userID uuid.UUID) (entity.Roles, error) {
	return slices.Clone(r.s.userRoles[userID]), nil
}

func (r memRoleRepo) Count(context.Context) (int64, error) {
	return int64(len(r.s.roles)), nil
}

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	ids := slices.Sorted(maps.Keys(r.s.categories))
	categories := make([]*entity.Category, 0, len(ids))
	for _, id := range ids {
		category := r.s.categories[id]
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r memCategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	category, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return &category, nil
}

func (r memCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.categories[id]

	return ok, nil
}

func (r memCategoryRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Category, error) {
	return r.FindByID(ctx, id)
}

func (r memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = r.s.nextCategoryID
	r.s.nextCategoryID++
	r.s.categories[category.ID] = *category

	return nil
}

func (r memCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.s.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	r.s.categories[category.ID] = *category

	return nil
}

func (r memCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	for _, product := range r.s.products {
		if product.CategoryID == id {
			return domainerrors.ErrConflict.WrapMessage("category still has products")
		}
	}
	delete(r.s.categories, id)

	return nil
}

func (r memCategoryRepo) SeedIfAbsent(_ context.Context, category *entity.Category) (bool, error) {
	if _, ok := r.s.categories[category.ID]; ok {
		return false, nil
	}
	r.s.categories[category.ID] = *category

	return true, nil
}

func (r memCategoryRepo) SyncIDSequence(context.Context) error {
	for id := range r.s.categories {
		r.s.nextCategoryID = max(r.s.nextCategoryID, id+1)
	}

	return nil
}

func (r memCategoryRepo) Count(context.Context) (int64, error) {
	return int64(len(r.s.categories)), nil
}

type memProductRepo struct{ s *memStore }

func (r memProductRepo) List(_ context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	ids := slices.Sorted(maps.Keys(r.s.products))
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		product := r.s.products[id]
		if filter.CategoryID != nil && product.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.FeaturedOnly && !product.Featured {
			continue
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r memProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	product, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

func (r memProductRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.products[id]

	return ok, nil
}

func (r memProductRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.FindByID(ctx, id)
}

func (r memProductRepo) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	var count int64
	for _, product := range r.s.products {
		if product.CategoryID == categoryID {
			count++
		}
	}

	return count, nil
}

func (r memProductRepo) Create(_ context.Context, product *entity.Product) error {
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return domainerrors.ErrInvalidReference.WithDetails("category does not exist")
	}
	product.ID = r.s.nextProductID
	r.s.nextProductID++
	r.s.products[product.ID] = *product

	return nil
}

func (r memProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.s.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return domainerrors.ErrInvalidReference.WithDetails("category does not exist")
	}
	r.s.products[product.ID] = *product

	return nil
}

func (r memProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.s.products, id)

	return nil
}

func (r memProductRepo) SeedIfAbsent(_ context.Context, product *entity.Product) (bool, error) {
	if _, ok := r.s.products[product.ID]; ok {
		return false, nil
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return false, domainerrors.ErrInvalidReference.WithDetails("category does not exist")
	}
	r.s.products[product.ID] = *product

	return true, nil
}

func (r memProductRepo) SyncIDSequence(context.Context) error {
	for id := range r.s.products {
		r.s.nextProductID = max(r.s.nextProductID, id+1)
	}

	return nil
}

func (r memProductRepo) Count(context.Context) (int64, error) {
	return int64(len(r.s.products)), nil
}

// memImages keeps image bytes by reference. putErr and deleteErr inject failures.
type memImages struct {
	objects   map[string][]byte
	putErr    error
	deleteErr error
}

func newMemImages() *memImages {
	return &memImages{objects: map[string][]byte{}}
}

func (m *memImages) Put(_ context.Context, hint string, data []byte) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	if len(data) == 0 {
		return "", domainerrors.ErrInvalidValue.WithDetails("image is empty")
	}
	ref := hint + ".png"
	m.objects[ref] = bytes.Clone(data)

	return ref, nil
}

func (m *memImages) Delete(_ context.Context, ref string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.objects, ref)

	return nil
}

func (m *memImages) Open(_ context.Context, ref string) (io.ReadCloser, string, error) {
	data, ok := m.objects[ref]
	if !ok {
		return nil, "", errors.New("image not found")
	}

	return io.NopCloser(bytes.NewReader(data)), "image/png", nil
}

func (m *memImages) Exists(_ context.Context, ref string) (bool, error) {
	_, ok := m.objects[ref]

	return ok, nil
}

func (m *memImages) refsWithPrefix(prefix string) []string {
	var refs []string
	for ref := range m.objects {
		if strings.HasPrefix(ref, prefix) {
			refs = append(refs, ref)
		}
	}

	return refs
}

type nopCatalogCache struct{}

func (nopCatalogCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (nopCatalogCache) Set(context.Context, string, any) error         { return nil }
func (nopCatalogCache) Invalidate(context.Context) error               { return nil }

type recordingPublisher struct {
	events []*service.CatalogEvent
}

func (p *recordingPublisher) PublishCatalogEvent(_ context.Context, event *service.CatalogEvent) error {
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }
