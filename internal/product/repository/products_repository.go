package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sebet/internal/domain"
	apperrors "sebet/internal/errors"
)

type MongoProductsRepository struct {
	collection *mongo.Collection
}

func NewMongoProductsRepository(db *mongo.Database) *MongoProductsRepository {
	return &MongoProductsRepository{collection: db.Collection("products")}
}

func (r *MongoProductsRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}
	return &product, nil
}

// FindByIDs resolves a batch of product ids. Missing ids are simply absent
// from the result; the caller decides whether that is an error.
func (r *MongoProductsRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("querying products by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

func (r *MongoProductsRepository) List(ctx context.Context, categoryID, subcategoryID string, activeOnly bool, limit, offset int64) ([]domain.Product, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}
	if subcategoryID != "" {
		filter["subcategoryId"] = subcategoryID
	}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

func (r *MongoProductsRepository) Create(ctx context.Context, product *domain.Product) (string, error) {
	product.ID = primitive.NewObjectID().Hex()
	product.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return "", fmt.Errorf("inserting product: %w", err)
	}
	return product.ID, nil
}

func (r *MongoProductsRepository) Update(ctx context.Context, product *domain.Product) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", product.ID))
	}
	return nil
}

// Delete removes the product document. Orders referencing it keep their
// denormalized copy; the reference is weak and resolves to null afterwards.
func (r *MongoProductsRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	return nil
}
