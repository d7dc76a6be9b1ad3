package controllers

import (
	"context"

	"github.com/cemerttu/backend-store-master/models"
	"github.com/cemerttu/backend-store-master/services"
)

// ProductServiceAPI defines the catalog operations consumed by the product
// controller. Fakes implement it in tests.
type ProductServiceAPI interface {
	List(ctx context.Context, params services.ListParams) ([]models.Product, bool, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Featured(ctx context.Context) ([]models.Product, error)
	Bestsellers(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) (int, error)
}

// OrderServiceAPI defines the order operations consumed by the order
// controller.
type OrderServiceAPI interface {
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	List(ctx context.Context, email string) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
}

// ContactServiceAPI defines the contact operation consumed by the contact
// controller.
type ContactServiceAPI interface {
	Submit(ctx context.Context, submission models.Contact) error
}
