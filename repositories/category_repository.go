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

// CategoryRepository is the data-access contract for categories. The cascade
// service depends on this interface rather than on a Mongo handle so it can
// be exercised against the in-memory implementation in tests.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateCategoryRequest) (*models.Category, error)
	// Delete removes the category by ID. Deleting a missing category is not
	// an error; the bool reports whether a document was actually removed.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates the Mongo-backed category repository.
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{collection: db.Collection("categories")}
}

func (r *mongoCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var category models.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *mongoCategoryRepository) Insert(ctx context.Context, category *models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, category)
	if mongo.IsDuplicateKeyError(err) {
		return &models.DuplicateError{Field: "name"}
	}
	if err != nil {
		return err
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateCategoryRequest) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Category
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, &models.DuplicateError{Field: "name"}
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
