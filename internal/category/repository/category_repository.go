package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sebet/internal/domain"
	apperrors "sebet/internal/errors"
)

type MongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{collection: db.Collection("categories")}
}

func (r *MongoCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return categories, nil
}

func (r *MongoCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying category by id: %w", err)
	}
	return &category, nil
}

func (r *MongoCategoryRepository) Create(ctx context.Context, category *domain.Category) (string, error) {
	category.ID = primitive.NewObjectID().Hex()
	for i := range category.Subcategories {
		if category.Subcategories[i].ID == "" {
			category.Subcategories[i].ID = primitive.NewObjectID().Hex()
		}
	}

	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		return "", fmt.Errorf("inserting category: %w", err)
	}
	return category.ID, nil
}

func (r *MongoCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	for i := range category.Subcategories {
		if category.Subcategories[i].ID == "" {
			category.Subcategories[i].ID = primitive.NewObjectID().Hex()
		}
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", category.ID))
	}
	return nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", id))
	}
	return nil
}
