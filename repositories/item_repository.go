package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowventory/backend/models"
)

// ItemRepository is the data-access contract for inventory items. The
// by-category/by-brand queries and bulk deletes exist for the cascade:
// deleting a category or brand first removes every item referencing it.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Item, error)
	FindByBrand(ctx context.Context, brandID primitive.ObjectID) ([]models.Item, error)
	Insert(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateItemRequest) (*models.Item, error)
	// Delete removes one item by ID; deleting a missing item is not an error.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	DeleteByBrand(ctx context.Context, brandID primitive.ObjectID) (int64, error)
}

type mongoItemRepository struct {
	collection *mongo.Collection
}

// NewItemRepository creates the Mongo-backed item repository.
func NewItemRepository(db *mongo.Database) ItemRepository {
	return &mongoItemRepository{collection: db.Collection("items")}
}

func (r *mongoItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoItemRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Item, error) {
	return r.find(ctx, bson.M{"category": categoryID})
}

func (r *mongoItemRepository) FindByBrand(ctx context.Context, brandID primitive.ObjectID) ([]models.Item, error) {
	return r.find(ctx, bson.M{"brand": brandID})
}

func (r *mongoItemRepository) find(ctx context.Context, filter bson.M) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var item models.Item
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoItemRepository) Insert(ctx context.Context, item *models.Item) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
	result, err := r.collection.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return &models.DuplicateError{Field: "sku"}
	}
	if err != nil {
		return err
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoItemRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateItemRequest) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.SKU != nil {
		set["sku"] = *patch.SKU
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*patch.Category)
		if err != nil {
			return nil, models.NewValidationError("invalid category ID")
		}
		set["category"] = categoryID
	}
	if patch.Brand != nil {
		brandID, err := primitive.ObjectIDFromHex(*patch.Brand)
		if err != nil {
			return nil, models.NewValidationError("invalid brand ID")
		}
		set["brand"] = brandID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Item
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, &models.DuplicateError{Field: "sku"}
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *mongoItemRepository) DeleteByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	return r.deleteMany(ctx, bson.M{"category": categoryID})
}

func (r *mongoItemRepository) DeleteByBrand(ctx context.Context, brandID primitive.ObjectID) (int64, error) {
	return r.deleteMany(ctx, bson.M{"brand": brandID})
}

func (r *mongoItemRepository) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
