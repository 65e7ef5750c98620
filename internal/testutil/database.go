package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupTestDB connects to a local mongod and returns the test database.
// Skips the test when no instance is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return client.Database("sebet_test")
}

// CleanupTestDB drops the test collections and disconnects.
func CleanupTestDB(t *testing.T, db *mongo.Database) {
	t.Helper()
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range []string{"orders", "products", "categories", "users"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Logf("failed to drop collection %s: %v", name, err)
		}
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		t.Logf("failed to disconnect: %v", err)
	}
}
