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

type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

// Create persists the order and returns the generated id. Uniqueness of the
// id relies on the store's atomic insert.
func (r *MongoOrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	order.ID = primitive.NewObjectID().Hex()
	order.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("inserting order: %w", err)
	}

	return order.ID, nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	return &order, nil
}

// ListByUser returns up to fetch orders for one user, newest first.
func (r *MongoOrderRepository) ListByUser(ctx context.Context, userID string, fetch int64) ([]domain.Order, error) {
	return r.list(ctx, bson.M{"userId": userID}, fetch)
}

// ListAll returns up to fetch orders across all users, newest first.
func (r *MongoOrderRepository) ListAll(ctx context.Context, fetch int64) ([]domain.Order, error) {
	return r.list(ctx, bson.M{}, fetch)
}

func (r *MongoOrderRepository) list(ctx context.Context, filter bson.M, fetch int64) ([]domain.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(fetch)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus flips the status only if the order is still in the expected
// state, so concurrent transitions cannot race past the lifecycle graph.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	if result.MatchedCount == 0 {
		// Either the order vanished or its status moved concurrently.
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("checking order existence: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
		}
		return apperrors.NewInvalidTransitionError(string(from), string(to))
	}

	return nil
}
