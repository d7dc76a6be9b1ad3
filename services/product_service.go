package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
	"github.com/cemerttu/backend-store-master/repository"
	"github.com/cemerttu/backend-store-master/utils/calc"
)

// Curated-subset limits.
const (
	FeaturedLimit    = 6
	BestsellersLimit = 8
)

// ListParams carries the catalog list filters parsed from the query string.
type ListParams struct {
	Category string
	Gender   string
	Search   string
	Sort     string
	Limit    int64
}

// ProductService implements the catalog operations with a
// database-first, static-fallback-second read policy. The repository may be
// nil, meaning no store was configured.
type ProductService struct {
	repo     repository.ProductRepository
	validate *validator.Validate
}

// NewProductService creates the catalog service. Pass a nil repository to run
// on fallback data only.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: newValidator(),
	}
}

// List returns the filtered catalog. When the store is unreachable or returns
// zero products the fixed sample list is served instead, with the same
// filters applied in-process; an empty catalog is never an error. The second
// return reports whether fallback data was served.
func (s *ProductService) List(ctx context.Context, params ListParams) ([]models.Product, bool, error) {
	query := repository.ProductQuery{
		Category: params.Category,
		Gender:   params.Gender,
		Search:   params.Search,
		Sort:     params.Sort,
		Limit:    params.Limit,
	}

	if s.repo != nil {
		products, err := s.repo.Find(ctx, query)
		if err != nil {
			zap.L().Warn("Catalog read failed, serving sample data", zap.Error(err))
		} else if len(products) > 0 {
			decorate(products)
			return products, false, nil
		}
	}

	products := filterSamples(query)
	decorate(products)
	return products, true, nil
}

// Get looks a product up by store id, then by fallback id. NotFound only when
// absent from both. A malformed id is not pre-validated; it simply misses.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	if s.repo != nil {
		product, err := s.repo.FindByID(ctx, id)
		if err == nil {
			decorateOne(product)
			return product, nil
		}
		if err != repository.ErrNotFound {
			zap.L().Warn("Product lookup failed, checking sample data", zap.String("id", id), zap.Error(err))
		}
	}

	for _, p := range SampleProducts() {
		if p.ID == id {
			decorateOne(&p)
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("Product not found")
}

// Featured returns products flagged isNew or isHot, capped at FeaturedLimit.
// No fallback: without a store the subset is empty.
func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	if s.repo == nil {
		return []models.Product{}, nil
	}
	products, err := s.repo.FindFeatured(ctx, FeaturedLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch featured products", err)
	}
	decorate(products)
	return products, nil
}

// Bestsellers returns the top products by rating then review count, capped at
// BestsellersLimit. No fallback.
func (s *ProductService) Bestsellers(ctx context.Context) ([]models.Product, error) {
	if s.repo == nil {
		return []models.Product{}, nil
	}
	products, err := s.repo.FindBestsellers(ctx, BestsellersLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch bestsellers", err)
	}
	decorate(products)
	return products, nil
}

// Create validates the payload, applies the documented defaults, and inserts.
func (s *ProductService) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	if err := s.validate.Struct(&product); err != nil {
		return nil, apperrors.Validation(validationMessage(err))
	}
	if s.repo == nil {
		return nil, apperrors.StoreUnavailable("No database connection")
	}

	product.ID = ""
	product.ApplyDefaults(time.Now().UTC())

	if err := s.repo.Insert(ctx, &product); err != nil {
		return nil, apperrors.Internal("Failed to create product", err)
	}
	decorateOne(&product)
	return &product, nil
}

// Update applies a partial merge: unspecified fields keep their prior values.
// Enum fields present in the update are checked against their declared sets.
func (s *ProductService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	delete(updates, "_id")
	delete(updates, "id")
	delete(updates, "createdAt")

	if gender, ok := updates["gender"].(string); ok {
		switch gender {
		case models.GenderMen, models.GenderWomen, models.GenderUnisex:
		default:
			return nil, apperrors.Validation("Invalid value for gender: must be one of [men women unisex]")
		}
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("No fields to update")
	}
	if s.repo == nil {
		return nil, apperrors.StoreUnavailable("No database connection")
	}

	product, err := s.repo.Update(ctx, id, updates)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to update product", err)
	}
	decorateOne(product)
	return product, nil
}

// Delete removes a product. A miss is NotFound, not a server error, and
// repeating the delete stays NotFound with no side effect.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return apperrors.StoreUnavailable("No database connection")
	}
	err := s.repo.Delete(ctx, id)
	if err == repository.ErrNotFound {
		return apperrors.NotFound("Product not found")
	}
	if err != nil {
		return apperrors.Internal("Failed to delete product", err)
	}
	return nil
}

// Seed clears the whole product collection and bulk-inserts the built-in
// catalog. It strictly requires a live store and never writes to the fallback
// data.
func (s *ProductService) Seed(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, apperrors.StoreUnavailable("Database connection required for seeding")
	}

	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, apperrors.Internal("Failed to clear products", err)
	}
	zap.L().Info("Cleared product collection for reseed", zap.Int64("removed", removed))

	inserted, err := s.repo.InsertMany(ctx, SeedProducts())
	if err != nil {
		return 0, apperrors.Internal("Failed to seed products", err)
	}
	return inserted, nil
}

func decorate(products []models.Product) {
	for i := range products {
		decorateOne(&products[i])
	}
}

func decorateOne(p *models.Product) {
	p.DiscountPercent = calc.DiscountPercent(p.Price, p.OriginalPrice)
}
