package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
	"github.com/cemerttu/backend-store-master/repository"
)

// ---- fake repository ----

type fakeProductRepo struct {
	products []models.Product
	findErr  error

	inserted        []models.Product
	insertManyCount int
	deleteAllCalled bool
	updated         map[string]interface{}
}

func (f *fakeProductRepo) Find(_ context.Context, q repository.ProductQuery) ([]models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductRepo) FindFeatured(_ context.Context, limit int64) ([]models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.products, nil
}

func (f *fakeProductRepo) FindBestsellers(_ context.Context, limit int64) ([]models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.products, nil
}

func (f *fakeProductRepo) Insert(_ context.Context, p *models.Product) error {
	p.ID = "stored-id"
	f.inserted = append(f.inserted, *p)
	return nil
}

func (f *fakeProductRepo) InsertMany(_ context.Context, products []models.Product) (int, error) {
	f.insertManyCount = len(products)
	return len(products), nil
}

func (f *fakeProductRepo) Update(_ context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			f.updated = updates
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) DeleteAll(_ context.Context) (int64, error) {
	f.deleteAllCalled = true
	n := int64(len(f.products))
	f.products = nil
	return n, nil
}

// ---- list / fallback ----

func TestListWithoutStoreServesFallback(t *testing.T) {
	svc := NewProductService(nil)

	products, fromFallback, err := svc.List(context.Background(), ListParams{})

	assert.NoError(t, err)
	assert.True(t, fromFallback)
	assert.NotEmpty(t, products)
}

func TestListFallsBackOnStoreError(t *testing.T) {
	repo := &fakeProductRepo{findErr: errors.New("connection reset")}
	svc := NewProductService(repo)

	products, fromFallback, err := svc.List(context.Background(), ListParams{})

	assert.NoError(t, err)
	assert.True(t, fromFallback)
	assert.NotEmpty(t, products)
}

func TestListFallsBackOnEmptyCatalog(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	products, fromFallback, err := svc.List(context.Background(), ListParams{})

	assert.NoError(t, err)
	assert.True(t, fromFallback)
	assert.NotEmpty(t, products)
}

func TestListPrefersStoreData(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{{ID: "abc", Name: "Stored", Price: 10}}}
	svc := NewProductService(repo)

	products, fromFallback, err := svc.List(context.Background(), ListParams{})

	assert.NoError(t, err)
	assert.False(t, fromFallback)
	assert.Len(t, products, 1)
	assert.Equal(t, "Stored", products[0].Name)
}

func TestListFallbackSortPriceAsc(t *testing.T) {
	svc := NewProductService(nil)

	products, _, err := svc.List(context.Background(), ListParams{Sort: "price_asc"})

	assert.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Price, products[i].Price)
	}
}

func TestListFallbackSortPriceDesc(t *testing.T) {
	svc := NewProductService(nil)

	products, _, err := svc.List(context.Background(), ListParams{Sort: "price_desc"})

	assert.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(t, products[i-1].Price, products[i].Price)
	}
}

func TestListFallbackLimit(t *testing.T) {
	svc := NewProductService(nil)

	products, _, err := svc.List(context.Background(), ListParams{Limit: 2})

	assert.NoError(t, err)
	assert.LessOrEqual(t, len(products), 2)
}

func TestListFallbackFilters(t *testing.T) {
	svc := NewProductService(nil)

	products, _, err := svc.List(context.Background(), ListParams{Gender: models.GenderWomen})
	assert.NoError(t, err)
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, models.GenderWomen, p.Gender)
	}

	products, _, err = svc.List(context.Background(), ListParams{Search: "denim"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Slim Fit Denim Jeans", products[0].Name)
}

func TestListDecoratesDiscountPercent(t *testing.T) {
	svc := NewProductService(nil)

	products, _, err := svc.List(context.Background(), ListParams{Search: "Classic Cotton"})

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	// 24.99 off 34.99 is a 29% discount.
	assert.Equal(t, 29, products[0].DiscountPercent)
}

// ---- get ----

func TestGetFallsBackToSampleByID(t *testing.T) {
	svc := NewProductService(nil)

	product, err := svc.Get(context.Background(), "3")

	assert.NoError(t, err)
	assert.Equal(t, "Floral Summer Dress", product.Name)
}

func TestGetNotFoundInStoreOrSamples(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.Get(context.Background(), "does-not-exist")

	appErr := apperrors.From(err)
	assert.Equal(t, 404, appErr.Code)
}

// ---- create ----

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	created, err := svc.Create(context.Background(), models.Product{
		Name:        "Plain Tee",
		Description: "A plain tee",
		Price:       19.99,
		Image:       "https://images.example.com/plain-tee.jpg",
		Category:    "t-shirts",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.GenderUnisex, created.Gender)
	if assert.NotNil(t, created.InStock) {
		assert.True(t, *created.InStock)
	}
	assert.Len(t, repo.inserted, 1)
}

func TestCreateRejectsInvalidGender(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), models.Product{
		Name:        "Plain Tee",
		Description: "A plain tee",
		Price:       19.99,
		Image:       "https://images.example.com/plain-tee.jpg",
		Category:    "t-shirts",
		Gender:      "kids",
	})

	appErr := apperrors.From(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "gender")
	assert.Empty(t, repo.inserted)
}

func TestCreateRejectsMissingRequiredField(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), models.Product{Name: "No price"})

	appErr := apperrors.From(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, repo.inserted)
}

func TestCreateWithoutStore(t *testing.T) {
	svc := NewProductService(nil)

	_, err := svc.Create(context.Background(), models.Product{
		Name:        "Plain Tee",
		Description: "A plain tee",
		Price:       19.99,
		Image:       "https://images.example.com/plain-tee.jpg",
		Category:    "t-shirts",
	})

	appErr := apperrors.From(err)
	assert.Equal(t, 503, appErr.Code)
}

// ---- update ----

func TestUpdateRejectsInvalidGender(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{{ID: "abc"}}}
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), "abc", map[string]interface{}{"gender": "kids"})

	appErr := apperrors.From(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Nil(t, repo.updated)
}

func TestUpdateStripsProtectedFields(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{{ID: "abc"}}}
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), "abc", map[string]interface{}{
		"_id":   "evil",
		"price": 9.99,
	})

	assert.NoError(t, err)
	assert.NotContains(t, repo.updated, "_id")
	assert.Contains(t, repo.updated, "price")
}

func TestUpdateMissIsNotFound(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), "missing", map[string]interface{}{"price": 9.99})

	appErr := apperrors.From(err)
	assert.Equal(t, 404, appErr.Code)
}

// ---- delete ----

func TestDeleteMissIsNotFoundAndIdempotent(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{{ID: "abc"}}}
	svc := NewProductService(repo)

	assert.NoError(t, svc.Delete(context.Background(), "abc"))

	// Repeating the delete is a NotFound, never a server error, with no
	// further side effect.
	for i := 0; i < 2; i++ {
		err := svc.Delete(context.Background(), "abc")
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Code)
	}
}

// ---- seed ----

func TestSeedWithoutStoreIsServiceUnavailable(t *testing.T) {
	svc := NewProductService(nil)

	before := SampleProducts()

	_, err := svc.Seed(context.Background())

	appErr := apperrors.From(err)
	assert.Equal(t, 503, appErr.Code)

	// The fallback catalog must never be mutated by a failed seed.
	after := SampleProducts()
	assert.Equal(t, before, after)
	assert.Len(t, after, 6)
}

func TestSeedClearsThenInserts(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{{ID: "old"}}}
	svc := NewProductService(repo)

	count, err := svc.Seed(context.Background())

	assert.NoError(t, err)
	assert.True(t, repo.deleteAllCalled)
	assert.Equal(t, len(SampleProducts()), count)
	assert.Equal(t, count, repo.insertManyCount)
}

// ---- curated subsets ----

func TestFeaturedWithoutStoreIsEmpty(t *testing.T) {
	svc := NewProductService(nil)

	products, err := svc.Featured(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestBestsellersStoreErrorIsInternal(t *testing.T) {
	repo := &fakeProductRepo{findErr: errors.New("boom")}
	svc := NewProductService(repo)

	_, err := svc.Bestsellers(context.Background())

	appErr := apperrors.From(err)
	assert.Equal(t, 500, appErr.Code)
}
