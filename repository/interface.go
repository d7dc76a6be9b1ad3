package repository

import (
	"context"
	"errors"

	"github.com/cemerttu/backend-store-master/models"
)

// ErrNotFound is returned when a lookup or single-document write matched
// nothing. Malformed ids are treated the same way as misses.
var ErrNotFound = errors.New("document not found")

// ProductQuery carries the supported catalog list filters.
type ProductQuery struct {
	Category string // substring match, case-insensitive
	Gender   string // exact match
	Search   string // substring match on name, case-insensitive
	Sort     string // price_asc | price_desc | newest | rating
	Limit    int64  // 0 = no cap
}

// ProductRepository defines the product data access operations. The interface
// uses plain Go types (no mongo-driver types) so it can be swapped for an
// in-memory fake in tests.
type ProductRepository interface {
	Find(ctx context.Context, q ProductQuery) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindFeatured(ctx context.Context, limit int64) ([]models.Product, error)
	FindBestsellers(ctx context.Context, limit int64) ([]models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	InsertMany(ctx context.Context, products []models.Product) (int, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// OrderRepository defines the order data access operations.
type OrderRepository interface {
	Insert(ctx context.Context, o *models.Order) error
	Find(ctx context.Context, email string) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
}

// ContactRepository defines the contact-submission data access operations.
type ContactRepository interface {
	Insert(ctx context.Context, m *models.Contact) error
}
