// services/cascade_service.go
package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
)

// CascadeService deletes a category or brand together with every item that
// references it, writing one audit entry per removed item. Items are never
// left pointing at a parent that no longer exists.
//
// The steps are not wrapped in a transaction: a store failure between the
// bulk item delete, the log appends and the parent delete surfaces as an
// error for that request and can leave a partially cascaded state. All log
// appends are attempted before the parent delete is issued, so a cascade
// whose items are gone has its audit trail written first.
type CascadeService struct {
	categories repositories.CategoryRepository
	brands     repositories.BrandRepository
	items      repositories.ItemRepository
	logs       repositories.LogRepository
}

// NewCascadeService creates the cascade service over the given repositories.
func NewCascadeService(
	categories repositories.CategoryRepository,
	brands repositories.BrandRepository,
	items repositories.ItemRepository,
	logs repositories.LogRepository,
) *CascadeService {
	return &CascadeService{
		categories: categories,
		brands:     brands,
		items:      items,
		logs:       logs,
	}
}

// DeleteCategory removes the category and all items referencing it, and
// reports how many items were removed. Deleting a category that does not
// exist succeeds with zero items removed, so retries are safe.
func (s *CascadeService) DeleteCategory(ctx context.Context, id primitive.ObjectID, actor models.Actor) (int, error) {
	return s.cascade(ctx, id, actor, "category",
		s.items.FindByCategory, s.items.DeleteByCategory, s.categories.Delete)
}

// DeleteBrand removes the brand and all items referencing it, and reports
// how many items were removed. Same idempotency as DeleteCategory.
func (s *CascadeService) DeleteBrand(ctx context.Context, id primitive.ObjectID, actor models.Actor) (int, error) {
	return s.cascade(ctx, id, actor, "brand",
		s.items.FindByBrand, s.items.DeleteByBrand, s.brands.Delete)
}

func (s *CascadeService) cascade(
	ctx context.Context,
	parentID primitive.ObjectID,
	actor models.Actor,
	parentKind string,
	findItems func(context.Context, primitive.ObjectID) ([]models.Item, error),
	deleteItems func(context.Context, primitive.ObjectID) (int64, error),
	deleteParent func(context.Context, primitive.ObjectID) (bool, error),
) (int, error) {
	// The cascade set is captured once, up front. It is not re-queried after
	// the bulk delete; the captured snapshot is what gets logged.
	dependents, err := findItems(ctx, parentID)
	if err != nil {
		return 0, err
	}

	if len(dependents) > 0 {
		if _, err := deleteItems(ctx, parentID); err != nil {
			return 0, err
		}
		for _, item := range dependents {
			entry := &models.Log{
				Action:   models.ActionDeleted,
				ItemID:   item.ID,
				ItemName: item.Name,
				UserID:   actor.ID,
				UserName: actor.Name,
				Details: fmt.Sprintf("Item automatically deleted due to %s deletion: %s (SKU: %s)",
					parentKind, item.Name, item.SKU),
			}
			if err := s.logs.Append(ctx, entry); err != nil {
				// The parent is intentionally left in place: its next delete
				// re-runs with an already-empty cascade set.
				return 0, err
			}
		}
	}

	// Zero-matched delete is success; repeated deletes must not error.
	if _, err := deleteParent(ctx, parentID); err != nil {
		return 0, err
	}
	return len(dependents), nil
}
