package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
)

type itemFixture struct {
	categories repositories.CategoryRepository
	brands     repositories.BrandRepository
	items      repositories.ItemRepository
	logs       repositories.LogRepository
	service    *ItemService
	actor      models.Actor
	category   *models.Category
	brand      *models.Brand
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()
	f := &itemFixture{
		categories: repositories.NewMemoryCategoryRepository(),
		brands:     repositories.NewMemoryBrandRepository(),
		items:      repositories.NewMemoryItemRepository(),
		logs:       repositories.NewMemoryLogRepository(),
		actor:      models.Actor{ID: primitive.NewObjectID(), Name: "Staff User"},
	}
	f.service = NewItemService(f.items, f.categories, f.brands, f.logs)

	f.category = &models.Category{Name: "Electronics"}
	require.NoError(t, f.categories.Insert(context.Background(), f.category))
	f.brand = &models.Brand{Name: "TechCorp"}
	require.NoError(t, f.brands.Insert(context.Background(), f.brand))
	return f
}

func (f *itemFixture) createRequest() models.CreateItemRequest {
	return models.CreateItemRequest{
		Name:     "Mouse",
		SKU:      "EL-TC-0001",
		Quantity: 25,
		Price:    19.99,
		Category: f.category.ID.Hex(),
		Brand:    f.brand.ID.Hex(),
	}
}

func TestCreateItemWritesOneCreatedLog(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", created.Name)
	assert.Equal(t, models.StatusInStock, created.Status)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Electronics", created.Category.Name)
	require.NotNil(t, created.Brand)
	assert.Equal(t, "TechCorp", created.Brand.Name)

	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionCreated, logs[0].Action)
	assert.Equal(t, created.ID, logs[0].ItemID)
	assert.Equal(t, "Created new item: Mouse (SKU: EL-TC-0001)", logs[0].Details)
	assert.Equal(t, "Staff User", logs[0].UserName)
}

func TestCreateItemDerivesStatusFromQuantity(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	cases := []struct {
		quantity int
		status   string
	}{
		{0, models.StatusOutOfStock},
		{10, models.StatusLowStock},
		{11, models.StatusInStock},
	}
	for i, tc := range cases {
		req := f.createRequest()
		req.SKU = req.SKU + string(rune('A'+i))
		req.Quantity = tc.quantity
		created, err := f.service.Create(ctx, req, f.actor)
		require.NoError(t, err)
		assert.Equal(t, tc.status, created.Status, "quantity %d", tc.quantity)
	}
}

func TestCreateItemRejectsMissingCategory(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	req := f.createRequest()
	req.Category = primitive.NewObjectID().Hex()

	_, err := f.service.Create(ctx, req, f.actor)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	// A rejected create leaves no item and no log behind
	items, err := f.items.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestCreateItemRejectsMissingBrand(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	req := f.createRequest()
	req.Brand = primitive.NewObjectID().Hex()

	_, err := f.service.Create(ctx, req, f.actor)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateItemRejectsDuplicateSKU(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)

	second := f.createRequest()
	second.Name = "Trackball"
	_, err = f.service.Create(ctx, second, f.actor)
	assert.ErrorIs(t, err, models.ErrDuplicate)

	// The failed create adds neither an item nor a log
	items, err := f.items.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestUpdateItemLogsPreUpdateName(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)

	newName := "Wireless Mouse"
	updated, err := f.service.Update(ctx, created.ID, models.UpdateItemRequest{Name: &newName}, f.actor)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", updated.Name)

	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// Newest first: the update entry snapshots the name from before the rename
	assert.Equal(t, models.ActionUpdated, logs[0].Action)
	assert.Equal(t, "Mouse", logs[0].ItemName)
	assert.Equal(t, "Item updated", logs[0].Details)
}

func TestUpdateMissingItemReturnsNotFound(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	name := "Ghost"
	_, err := f.service.Update(ctx, primitive.NewObjectID(), models.UpdateItemRequest{Name: &name}, f.actor)
	assert.ErrorIs(t, err, models.ErrNotFound)

	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, logs, "an update that did not happen writes no log")
}

func TestUpdateItemRejectsNegativeQuantity(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)

	negative := -5
	_, err = f.service.Update(ctx, created.ID, models.UpdateItemRequest{Quantity: &negative}, f.actor)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDeleteItemWritesOneDeletedLog(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, created.ID, f.actor))

	items, err := f.items.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.ActionDeleted, logs[0].Action)
	assert.Equal(t, "Deleted item: Mouse (SKU: EL-TC-0001)", logs[0].Details)
}

func TestDeleteMissingItemIsIdempotent(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(ctx, created.ID, f.actor))

	// Second delete succeeds without adding a log
	require.NoError(t, f.service.Delete(ctx, created.ID, f.actor))

	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestLogsSurviveItemDeletion(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(ctx, created.ID, f.actor))

	// Both entries keep the item's name and ID after the item is gone
	logs, err := f.logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, entry := range logs {
		assert.Equal(t, created.ID, entry.ItemID)
		assert.Equal(t, "Mouse", entry.ItemName)
	}
}

func TestListResolvesCategoryAndBrand(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, f.createRequest(), f.actor)
	require.NoError(t, err)

	listed, err := f.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Category)
	assert.Equal(t, "Electronics", listed[0].Category.Name)
	require.NotNil(t, listed[0].Brand)
	assert.Equal(t, "TechCorp", listed[0].Brand.Name)
}

func TestListReturnsNilReferenceWhenUnresolved(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	// Insert directly with a dangling brand reference; the listing must not
	// fail, it reports the reference as nil.
	item := &models.Item{
		Name:     "Orphan",
		SKU:      "OR-XX-0001",
		Category: f.category.ID,
		Brand:    primitive.NewObjectID(),
		Status:   models.StatusInStock,
	}
	require.NoError(t, f.items.Insert(ctx, item))

	listed, err := f.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Category)
	assert.Nil(t, listed[0].Brand)
}
