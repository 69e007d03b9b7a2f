package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/apperror"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// CustomerService handles customer-related operations. Balances are
// moved only by bill submission, bill deletion and payment allocation,
// never by a direct customer update.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name      string
	Mobile    string
	Address   string
	GSTNumber string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:      input.Name,
		Mobile:    input.Mobile,
		Address:   input.Address,
		GSTNumber: input.GSTNumber,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with optional name/mobile search
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.PartyFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID        uuid.UUID
	Name      *string
	Mobile    *string
	Address   *string
	GSTNumber *string
}

// UpdateCustomer updates a customer's contact details
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Mobile != nil {
		customer.Mobile = *input.Mobile
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.GSTNumber != nil {
		customer.GSTNumber = *input.GSTNumber
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a customer. Customers with an outstanding
// balance cannot be deleted.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	if customer.Balance != 0 {
		return apperror.NewBadRequestError("Customer has an outstanding balance")
	}
	return s.customerRepo.Delete(ctx, id)
}

// VendorService handles vendor-related operations
type VendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// CreateVendorInput represents the create vendor input
type CreateVendorInput struct {
	Name      string
	Mobile    string
	Address   string
	GSTNumber string
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		Name:      input.Name,
		Mobile:    input.Mobile,
		Address:   input.Address,
		GSTNumber: input.GSTNumber,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListVendors lists vendors with optional name/mobile search
func (s *VendorService) ListVendors(ctx context.Context, params *repository.PartyFilterParams) (*pagination.PaginatedResult[entity.Vendor], error) {
	vendors, total, err := s.vendorRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}

// UpdateVendorInput represents the update vendor input
type UpdateVendorInput struct {
	ID        uuid.UUID
	Name      *string
	Mobile    *string
	Address   *string
	GSTNumber *string
}

// UpdateVendor updates a vendor's contact details
func (s *VendorService) UpdateVendor(ctx context.Context, input *UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.Mobile != nil {
		vendor.Mobile = *input.Mobile
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.GSTNumber != nil {
		vendor.GSTNumber = *input.GSTNumber
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor soft-deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}
	if vendor.Balance != 0 {
		return apperror.NewBadRequestError("Vendor has an outstanding balance")
	}
	return s.vendorRepo.Delete(ctx, id)
}
