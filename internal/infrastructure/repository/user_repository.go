package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	domainRepo "github.com/manikandans/billbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return conn(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := conn(ctx, r.db).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*entity.User, error) {
	var user entity.User
	err := conn(ctx, r.db).First(&user, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return conn(ctx, r.db).Save(user).Error
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := conn(ctx, r.db).Order("created_at ASC").Find(&users).Error
	return users, err
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company profile repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Get(ctx context.Context) (*entity.CompanyProfile, error) {
	var profile entity.CompanyProfile
	err := conn(ctx, r.db).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *companyRepository) Upsert(ctx context.Context, profile *entity.CompanyProfile) error {
	db := conn(ctx, r.db)

	var existing entity.CompanyProfile
	err := db.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return db.Save(profile).Error
}
