package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sebet/internal/domain"
	apperrors "sebet/internal/errors"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}
	return &user, nil
}

// Ensure creates the user document on first sign-in. Existing documents are
// left untouched so admin flags and preferences survive.
func (r *MongoUserRepository) Ensure(ctx context.Context, user domain.User) error {
	update := bson.M{"$setOnInsert": bson.M{
		"email":     user.Email,
		"name":      user.Name,
		"admin":     false,
		"createdAt": time.Now().UTC(),
	}}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) List(ctx context.Context, limit, offset int64) ([]domain.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepository) SetAdmin(ctx context.Context, id string, admin bool) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"admin": admin}})
	if err != nil {
		return fmt.Errorf("setting admin flag: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return nil
}

func (r *MongoUserRepository) UpdatePreferences(ctx context.Context, id, theme, language string) error {
	set := bson.M{}
	if theme != "" {
		set["theme"] = theme
	}
	if language != "" {
		set["language"] = language
	}
	if len(set) == 0 {
		return nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("updating preferences: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return nil
}
