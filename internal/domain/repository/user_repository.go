package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
}

// CompanyRepository defines the interface for the seller profile
type CompanyRepository interface {
	Get(ctx context.Context) (*entity.CompanyProfile, error)
	Upsert(ctx context.Context, profile *entity.CompanyProfile) error
}
