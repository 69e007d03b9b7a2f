package service

import (
	"context"

	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/apperror"
)

// CompanyService manages the single seller profile printed on documents
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// GetProfile returns the seller profile, or a not-found error when none
// has been configured yet
func (s *CompanyService) GetProfile(ctx context.Context) (*entity.CompanyProfile, error) {
	profile, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Company profile")
	}
	return profile, nil
}

// UpdateProfileInput represents the seller profile input
type UpdateProfileInput struct {
	Name        string
	Address     string
	GSTNumber   string
	Phone       string
	BankDetails string
}

// UpdateProfile creates or replaces the seller profile
func (s *CompanyService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.CompanyProfile, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Company name is required")
	}

	profile := &entity.CompanyProfile{
		Name:        input.Name,
		Address:     input.Address,
		GSTNumber:   input.GSTNumber,
		Phone:       input.Phone,
		BankDetails: input.BankDetails,
	}
	if err := s.companyRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
