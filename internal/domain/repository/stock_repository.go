package repository

import (
	"context"

	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// StockRepository defines the interface for stock entry and damage records
type StockRepository interface {
	CreateEntry(ctx context.Context, entry *entity.StockEntry) error
	ListEntries(ctx context.Context, params *pagination.PaginationParams) ([]entity.StockEntry, int64, error)

	CreateDamage(ctx context.Context, damage *entity.DamagedStock) error
	ListDamage(ctx context.Context, params *pagination.PaginationParams) ([]entity.DamagedStock, int64, error)
	RecentDamage(ctx context.Context, limit int) ([]entity.DamagedStock, error)
}
