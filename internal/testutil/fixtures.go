package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/bloodbank/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateDonor inserts an active donor directly, bypassing the store.
func (f *Fixtures) CreateDonor(ctx context.Context, name, email, bloodGroup string) models.User {
	f.t.Helper()

	user := models.User{
		ID:         primitive.NewObjectID(),
		Email:      email,
		Name:       name,
		BloodGroup: &bloodGroup,
		Role:       models.RoleDonor,
		Status:     models.StatusActive,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test donor: %v", err)
	}
	return user
}

// WriteRefFile writes a reference-data file into a temp dir and returns its path.
func WriteRefFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
