package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/parkspot/services/user UserRepo
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, fullName string, isEVUser bool) (*models.User, error)
}
