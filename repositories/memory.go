package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/models"
)

// In-memory repository implementations. They back the test suite and local
// development without a running MongoDB, and mirror the Mongo behavior the
// services rely on: unique-key rejection, not-found errors on reads and
// updates, and idempotent deletes.

type memoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
}

// NewMemoryCategoryRepository creates an in-memory category repository.
func NewMemoryCategoryRepository() CategoryRepository {
	return &memoryCategoryRepository{}
}

func (r *memoryCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memoryCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memoryCategoryRepository) Insert(ctx context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == category.Name {
			return &models.DuplicateError{Field: "name"}
		}
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *memoryCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateCategoryRequest) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID != id {
			continue
		}
		if patch.Name != nil {
			for _, other := range r.categories {
				if other.ID != id && other.Name == *patch.Name {
					return nil, &models.DuplicateError{Field: "name"}
				}
			}
			r.categories[i].Name = *patch.Name
		}
		if patch.Description != nil {
			r.categories[i].Description = *patch.Description
		}
		updated := r.categories[i]
		return &updated, nil
	}
	return nil, models.ErrNotFound
}

func (r *memoryCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memoryBrandRepository struct {
	mu     sync.RWMutex
	brands []models.Brand
}

// NewMemoryBrandRepository creates an in-memory brand repository.
func NewMemoryBrandRepository() BrandRepository {
	return &memoryBrandRepository{}
}

func (r *memoryBrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Brand, len(r.brands))
	copy(out, r.brands)
	return out, nil
}

func (r *memoryBrandRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.brands {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memoryBrandRepository) Insert(ctx context.Context, brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.Name == brand.Name {
			return &models.DuplicateError{Field: "name"}
		}
	}
	if brand.ID.IsZero() {
		brand.ID = primitive.NewObjectID()
	}
	if brand.CreatedAt.IsZero() {
		brand.CreatedAt = time.Now()
	}
	r.brands = append(r.brands, *brand)
	return nil
}

func (r *memoryBrandRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateBrandRequest) (*models.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.brands {
		if r.brands[i].ID != id {
			continue
		}
		if patch.Name != nil {
			for _, other := range r.brands {
				if other.ID != id && other.Name == *patch.Name {
					return nil, &models.DuplicateError{Field: "name"}
				}
			}
			r.brands[i].Name = *patch.Name
		}
		if patch.Logo != nil {
			r.brands[i].Logo = *patch.Logo
		}
		updated := r.brands[i]
		return &updated, nil
	}
	return nil, models.ErrNotFound
}

func (r *memoryBrandRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.brands {
		if r.brands[i].ID == id {
			r.brands = append(r.brands[:i], r.brands[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memoryItemRepository struct {
	mu    sync.RWMutex
	items []models.Item
}

// NewMemoryItemRepository creates an in-memory item repository.
func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepository{}
}

func (r *memoryItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memoryItemRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := []models.Item{}
	for _, it := range r.items {
		if it.Category == categoryID {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func (r *memoryItemRepository) FindByBrand(ctx context.Context, brandID primitive.ObjectID) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := []models.Item{}
	for _, it := range r.items {
		if it.Brand == brandID {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func (r *memoryItemRepository) Insert(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.SKU == item.SKU {
			return &models.DuplicateError{Field: "sku"}
		}
	}
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *memoryItemRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateItemRequest) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if patch.SKU != nil {
			for _, other := range r.items {
				if other.ID != id && other.SKU == *patch.SKU {
					return nil, &models.DuplicateError{Field: "sku"}
				}
			}
			r.items[i].SKU = *patch.SKU
		}
		if patch.Name != nil {
			r.items[i].Name = *patch.Name
		}
		if patch.Quantity != nil {
			r.items[i].Quantity = *patch.Quantity
		}
		if patch.Price != nil {
			r.items[i].Price = *patch.Price
		}
		if patch.Description != nil {
			r.items[i].Description = *patch.Description
		}
		if patch.Status != nil {
			r.items[i].Status = *patch.Status
		}
		if patch.Category != nil {
			categoryID, err := primitive.ObjectIDFromHex(*patch.Category)
			if err != nil {
				return nil, models.NewValidationError("invalid category ID")
			}
			r.items[i].Category = categoryID
		}
		if patch.Brand != nil {
			brandID, err := primitive.ObjectIDFromHex(*patch.Brand)
			if err != nil {
				return nil, models.NewValidationError("invalid brand ID")
			}
			r.items[i].Brand = brandID
		}
		r.items[i].UpdatedAt = time.Now()
		updated := r.items[i]
		return &updated, nil
	}
	return nil, models.ErrNotFound
}

func (r *memoryItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryItemRepository) DeleteByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	var removed int64
	for _, it := range r.items {
		if it.Category == categoryID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	r.items = kept
	return removed, nil
}

func (r *memoryItemRepository) DeleteByBrand(ctx context.Context, brandID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	var removed int64
	for _, it := range r.items {
		if it.Brand == brandID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	r.items = kept
	return removed, nil
}

type memoryLogRepository struct {
	mu   sync.RWMutex
	logs []models.Log
}

// NewMemoryLogRepository creates an in-memory log repository.
func NewMemoryLogRepository() LogRepository {
	return &memoryLogRepository{}
}

func (r *memoryLogRepository) Append(ctx context.Context, entry *models.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *memoryLogRepository) ListRecent(ctx context.Context, limit int64) ([]models.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > MaxRecentLogs {
		limit = MaxRecentLogs
	}
	// Append order equals timestamp order, so newest-first is a reverse walk.
	out := []models.Log{}
	for i := len(r.logs) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, r.logs[i])
	}
	return out, nil
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewMemoryUserRepository creates an in-memory user repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (r *memoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memoryUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return &models.DuplicateError{Field: "email"}
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if patch.Email != nil {
			for _, other := range r.users {
				if other.ID != id && other.Email == *patch.Email {
					return nil, &models.DuplicateError{Field: "email"}
				}
			}
			r.users[i].Email = *patch.Email
		}
		if patch.Name != nil {
			r.users[i].Name = *patch.Name
		}
		if patch.Role != nil {
			r.users[i].Role = *patch.Role
		}
		if patch.IsActive != nil {
			r.users[i].IsActive = *patch.IsActive
		}
		if patch.PasswordHash != nil {
			r.users[i].PasswordHash = *patch.PasswordHash
		}
		updated := r.users[i]
		return &updated, nil
	}
	return nil, models.ErrNotFound
}

func (r *memoryUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
