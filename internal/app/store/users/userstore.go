package userstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/bloodbank/internal/app/system/metrics"
	"github.com/dalemusser/bloodbank/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no user matches a lookup.
var ErrNotFound = errors.New("user not found")

// Store wraps the users collection.
type Store struct {
	c *mongo.Collection
	m *metrics.Metrics
}

// New returns a Store over db.users. m may be nil.
func New(db *mongo.Database, m *metrics.Metrics) *Store {
	return &Store{c: db.Collection("users"), m: m}
}

// Create inserts a new donor. Role and status are always reset to donor and
// active; whatever the caller put there is ignored. No duplicate-email check
// is made.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Role = models.RoleDonor
	u.Status = models.StatusActive

	err := s.m.ObserveStore("insert_user", func() error {
		_, err := s.c.InsertOne(ctx, u)
		return err
	})
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// List returns every user in natural (storage) order. The result is never
// nil.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	err := s.m.ObserveStore("list_users", func() error {
		cur, err := s.c.Find(ctx, bson.M{})
		if err != nil {
			return err
		}
		defer cur.Close(ctx)
		return cur.All(ctx, &out)
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if out == nil {
		out = []models.User{}
	}
	return out, nil
}

// GetByEmail returns the first user whose email matches exactly
// (case-sensitive). Returns ErrNotFound if there is none.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.m.ObserveStore("find_user_by_email", func() error {
		return s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}
