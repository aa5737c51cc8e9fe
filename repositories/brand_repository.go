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

// BrandRepository is the data-access contract for brands.
type BrandRepository interface {
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	Insert(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateBrandRequest) (*models.Brand, error)
	// Delete removes the brand by ID; deleting a missing brand is not an error.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type mongoBrandRepository struct {
	collection *mongo.Collection
}

// NewBrandRepository creates the Mongo-backed brand repository.
func NewBrandRepository(db *mongo.Database) BrandRepository {
	return &mongoBrandRepository{collection: db.Collection("brands")}
}

func (r *mongoBrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *mongoBrandRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var brand models.Brand
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *mongoBrandRepository) Insert(ctx context.Context, brand *models.Brand) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if brand.CreatedAt.IsZero() {
		brand.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, brand)
	if mongo.IsDuplicateKeyError(err) {
		return &models.DuplicateError{Field: "name"}
	}
	if err != nil {
		return err
	}
	brand.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoBrandRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UpdateBrandRequest) (*models.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Logo != nil {
		set["logo"] = *patch.Logo
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Brand
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

func (r *mongoBrandRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
