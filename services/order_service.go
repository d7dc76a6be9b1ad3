package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
	"github.com/cemerttu/backend-store-master/repository"
)

// OrderService implements order submission and retrieval. Orders are
// append-only: status transitions are plain field updates with no state
// machine.
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	validate *validator.Validate
}

// NewOrderService creates the order service. The product repository is used
// only to expand referenced product documents on reads and may be nil.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		validate: newValidator(),
	}
}

// Create validates the submission before touching storage, assigns the order
// number, and persists. Nothing is written when validation fails.
func (s *OrderService) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	if err := s.validate.Struct(&order); err != nil {
		return nil, apperrors.Validation(validationMessage(err))
	}
	if s.orders == nil {
		return nil, apperrors.StoreUnavailable("No database connection")
	}

	now := time.Now().UTC()
	order.ID = ""
	order.ApplyDefaults(now)
	order.OrderNumber = GenerateOrderNumber(now)

	if err := s.orders.Insert(ctx, &order); err != nil {
		return nil, apperrors.Internal("Failed to create order", err)
	}

	s.expand(ctx, &order)
	return &order, nil
}

// List returns orders newest-first, optionally filtered by exact customer
// email, with referenced products expanded inline. Without a store the list
// is empty rather than an error.
func (s *OrderService) List(ctx context.Context, email string) ([]models.Order, error) {
	if s.orders == nil {
		return []models.Order{}, nil
	}
	orders, err := s.orders.Find(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}
	for i := range orders {
		s.expand(ctx, &orders[i])
	}
	return orders, nil
}

// Get returns a single order with referenced products expanded inline.
func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	if s.orders == nil {
		return nil, apperrors.NotFound("Order not found")
	}
	order, err := s.orders.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch order", err)
	}
	s.expand(ctx, order)
	return order, nil
}

// expand attaches the current product document to each line item, best
// effort. A product deleted since order time simply stays unexpanded; the
// denormalized snapshot remains authoritative.
func (s *OrderService) expand(ctx context.Context, order *models.Order) {
	if s.products == nil {
		return
	}
	for i := range order.Products {
		product, err := s.products.FindByID(ctx, order.Products[i].ProductID)
		if err != nil {
			if err != repository.ErrNotFound {
				zap.L().Warn("Failed to expand order line item",
					zap.String("orderNumber", order.OrderNumber),
					zap.String("productId", order.Products[i].ProductID),
					zap.Error(err),
				)
			}
			continue
		}
		order.Products[i].Product = product
	}
}
