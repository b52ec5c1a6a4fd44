// internal/app/features/users/handler.go
package users

import (
	"context"

	errorsfeature "github.com/dalemusser/bloodbank/internal/app/features/errors"
	"github.com/dalemusser/bloodbank/internal/domain/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Store is the subset of userstore.Store the handlers need.
type Store interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handler serves donor registration and lookup.
type Handler struct {
	Users    Store
	Validate *validator.Validate
	ErrLog   *errorsfeature.ErrorLogger
	Log      *zap.Logger
}

// NewHandler creates a users handler backed by store.
func NewHandler(store Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    store,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		ErrLog:   errLog,
		Log:      logger,
	}
}
