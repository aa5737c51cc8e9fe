// services/item_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
)

// ItemService performs direct item mutations, each paired with exactly one
// audit entry. Mutations that do not happen (duplicate SKU, missing ID) must
// not produce a log entry.
type ItemService struct {
	items      repositories.ItemRepository
	categories repositories.CategoryRepository
	brands     repositories.BrandRepository
	logs       repositories.LogRepository
}

// NewItemService creates the item service over the given repositories.
func NewItemService(
	items repositories.ItemRepository,
	categories repositories.CategoryRepository,
	brands repositories.BrandRepository,
	logs repositories.LogRepository,
) *ItemService {
	return &ItemService{
		items:      items,
		categories: categories,
		brands:     brands,
		logs:       logs,
	}
}

// List returns all items with category and brand resolved.
func (s *ItemService) List(ctx context.Context) ([]models.PopulatedItem, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := s.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	categoryByID := make(map[primitive.ObjectID]models.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	brandByID := make(map[primitive.ObjectID]models.Brand, len(brands))
	for _, b := range brands {
		brandByID[b.ID] = b
	}

	populated := make([]models.PopulatedItem, 0, len(items))
	for _, item := range items {
		p := toPopulated(item)
		if c, ok := categoryByID[item.Category]; ok {
			p.Category = &c
		}
		if b, ok := brandByID[item.Brand]; ok {
			p.Brand = &b
		}
		populated = append(populated, p)
	}
	return populated, nil
}

// Create validates the payload, verifies its category and brand exist,
// inserts the item and appends one "created" audit entry.
func (s *ItemService) Create(ctx context.Context, req models.CreateItemRequest, actor models.Actor) (*models.PopulatedItem, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, models.NewValidationError("invalid category ID")
	}
	brandID, err := primitive.ObjectIDFromHex(req.Brand)
	if err != nil {
		return nil, models.NewValidationError("invalid brand ID")
	}

	// No orphan creation: both references must resolve before anything is
	// written.
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewValidationError("category does not exist")
		}
		return nil, err
	}
	if _, err := s.brands.FindByID(ctx, brandID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewValidationError("brand does not exist")
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusForQuantity(req.Quantity)
	}

	item := &models.Item{
		Name:        req.Name,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Description: req.Description,
		Status:      status,
		Category:    categoryID,
		Brand:       brandID,
		CreatedBy:   actor.ID,
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return nil, err
	}

	if err := s.appendLog(ctx, models.ActionCreated, item.ID, item.Name, actor,
		fmt.Sprintf("Created new item: %s (SKU: %s)", item.Name, item.SKU)); err != nil {
		return nil, err
	}

	return s.populate(ctx, item)
}

// Update applies a partial update and appends one "updated" audit entry
// carrying the pre-update name. Updating a missing item returns ErrNotFound
// and writes no log: an audit entry records a mutation that happened.
func (s *ItemService) Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateItemRequest, actor models.Actor) (*models.PopulatedItem, error) {
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, models.NewValidationError("quantity cannot be negative")
	}

	// Snapshot the name before applying the patch; the patch may rename the
	// item and the log must carry the name at the time of the operation.
	before, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.items.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if err := s.appendLog(ctx, models.ActionUpdated, id, before.Name, actor, "Item updated"); err != nil {
		return nil, err
	}

	return s.populate(ctx, updated)
}

// Delete removes the item and, if it existed, appends one "deleted" audit
// entry with its name and SKU. Deleting a missing item succeeds silently so
// repeat deletes are safe; no log is written for them.
func (s *ItemService) Delete(ctx context.Context, id primitive.ObjectID, actor models.Actor) error {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}

	if _, err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	return s.appendLog(ctx, models.ActionDeleted, id, item.Name, actor,
		fmt.Sprintf("Deleted item: %s (SKU: %s)", item.Name, item.SKU))
}

// appendLog writes the audit entry paired with a mutation. A failure here
// surfaces to the caller even though the mutation itself already happened;
// there is no rollback (documented consistency gap, same as the cascade).
func (s *ItemService) appendLog(ctx context.Context, action string, itemID primitive.ObjectID, itemName string, actor models.Actor, details string) error {
	entry := &models.Log{
		Action:   action,
		ItemID:   itemID,
		ItemName: itemName,
		UserID:   actor.ID,
		UserName: actor.Name,
		Details:  details,
	}
	return s.logs.Append(ctx, entry)
}

func (s *ItemService) populate(ctx context.Context, item *models.Item) (*models.PopulatedItem, error) {
	p := toPopulated(*item)
	category, err := s.categories.FindByID(ctx, item.Category)
	if err == nil {
		p.Category = category
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	brand, err := s.brands.FindByID(ctx, item.Brand)
	if err == nil {
		p.Brand = brand
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	return &p, nil
}

func toPopulated(item models.Item) models.PopulatedItem {
	return models.PopulatedItem{
		ID:          item.ID,
		Name:        item.Name,
		SKU:         item.SKU,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Description: item.Description,
		Status:      item.Status,
		CreatedBy:   item.CreatedBy,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
