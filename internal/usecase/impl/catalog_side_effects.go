package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

const (
	cacheKeyCategories = "categories"

	warnImagePurgeFailed = "previous image could not be removed and may linger in storage"
)

func categoryCacheKey(id int64) string {
	return "category:" + strconv.FormatInt(id, 10)
}

func productCacheKey(id int64) string {
	return "product:" + strconv.FormatInt(id, 10)
}

func productListCacheKey(filter entity.ProductFilter) string {
	category := "all"
	if filter.CategoryID != nil {
		category = strconv.FormatInt(*filter.CategoryID, 10)
	}

	return "products:" + category + ":" + strconv.FormatBool(filter.FeaturedOnly)
}

// newImageHint gives every upload its own key so concurrent writers never overwrite each other.
func newImageHint(kind entity.ImageKind) string {
	return string(kind) + "/" + uuid.NewString()
}

// putImage writes the upload and returns its reference, or "" when no image was given.
func (srv *catalogService) putImage(ctx context.Context, kind entity.ImageKind, image *entity.ImageUpload) (string, error) {
	if image.IsEmpty() {
		return "", nil
	}

	ref, err := srv.images.Put(ctx, srv.newImageHint(kind), image.Data)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidValue) {
			return "", err
		}

		return "", errors.Wrap(err, "failed to store image")
	}

	return ref, nil
}

// discardImage removes an image whose row never committed.
func (srv *catalogService) discardImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}

	if err := srv.images.Delete(ctx, ref); err != nil {
		srv.log(ctx).Warn("Failed to remove image of rolled back mutation", slog.String("ref", ref), slog.Any("error", err))
	}
}

// purgeImage removes an image no committed row points at any more.
// A failure is returned as a warning and never undoes the commit.
func (srv *catalogService) purgeImage(ctx context.Context, ref string) []string {
	if ref == "" {
		return nil
	}

	if err := srv.images.Delete(ctx, ref); err != nil {
		srv.log(ctx).Warn("Failed to purge stale image", slog.String("ref", ref), slog.Any("error", err))

		return []string{warnImagePurgeFailed}
	}

	return nil
}

// afterCommit drops cached projections and announces the change. Both are best effort.
func (srv *catalogService) afterCommit(ctx context.Context, eventType service.CatalogEventType, entityID int64, photoRef string) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate catalog cache", slog.Any("error", err))
	}

	event := &service.CatalogEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		PhotoRef:   photoRef,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish catalog event",
			slog.String("type", string(eventType)),
			slog.Int64("entityID", entityID),
			slog.Any("error", err))
	}
}

func (srv *catalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	hit, err := srv.cache.Get(ctx, key, dest)
	if err != nil {
		srv.log(ctx).Debug("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return hit
}

func (srv *catalogService) cacheSet(ctx context.Context, key string, value any) {
	if err := srv.cache.Set(ctx, key, value); err != nil {
		srv.log(ctx).Debug("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
