package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
	"github.com/cemerttu/backend-store-master/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---- fake product service ----

type fakeProductService struct {
	listFn     func(ctx context.Context, params services.ListParams) ([]models.Product, bool, error)
	getFn      func(ctx context.Context, id string) (*models.Product, error)
	createFn   func(ctx context.Context, product models.Product) (*models.Product, error)
	updateFn   func(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error)
	deleteFn   func(ctx context.Context, id string) error
	seedFn     func(ctx context.Context) (int, error)
	listCalled int
	lastParams services.ListParams
}

func (f *fakeProductService) List(ctx context.Context, params services.ListParams) ([]models.Product, bool, error) {
	f.listCalled++
	f.lastParams = params
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return []models.Product{}, true, nil
}

func (f *fakeProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, apperrors.NotFound("Product not found")
}

func (f *fakeProductService) Featured(ctx context.Context) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (f *fakeProductService) Bestsellers(ctx context.Context) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (f *fakeProductService) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	if f.createFn != nil {
		return f.createFn(ctx, product)
	}
	return &product, nil
}

func (f *fakeProductService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, updates)
	}
	return &models.Product{ID: id}, nil
}

func (f *fakeProductService) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeProductService) Seed(ctx context.Context) (int, error) {
	if f.seedFn != nil {
		return f.seedFn(ctx)
	}
	return 0, nil
}

func newProductRouter(svc ProductServiceAPI, env string) *gin.Engine {
	r := gin.New()
	pc := NewProductController(svc, nil, env)
	r.GET("/api/products", pc.GetProducts)
	r.GET("/api/products/featured", pc.GetFeatured)
	r.GET("/api/products/:id", pc.GetProductByID)
	r.POST("/api/products", pc.CreateProduct)
	r.PUT("/api/products/:id", pc.UpdateProduct)
	r.DELETE("/api/products/:id", pc.DeleteProduct)
	r.POST("/api/seed-products", pc.SeedProducts)
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

// ---- tests ----

func TestGetProductsEnvelope(t *testing.T) {
	svc := &fakeProductService{
		listFn: func(_ context.Context, _ services.ListParams) ([]models.Product, bool, error) {
			return []models.Product{{ID: "1", Name: "Tee", Price: 9.99}}, false, nil
		},
	}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=shirts&sort=price_asc&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
	assert.NotNil(t, body["products"])

	assert.Equal(t, "shirts", svc.lastParams.Category)
	assert.Equal(t, "price_asc", svc.lastParams.Sort)
	assert.Equal(t, int64(2), svc.lastParams.Limit)
}

func TestGetProductsDefaultsSortToNewest(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "newest", svc.lastParams.Sort)
}

func TestGetProductsInvalidSort(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodGet, "/api/products?sort=cheapest", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, 0, svc.listCalled)
}

func TestGetProductsInvalidLimit(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodGet, "/api/products?limit=-3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductByIDNotFound(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product not found", body["message"])
}

func TestCreateProductInvalidJSON(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductCreated(t *testing.T) {
	svc := &fakeProductService{
		createFn: func(_ context.Context, p models.Product) (*models.Product, error) {
			p.ID = "new-id"
			return &p, nil
		},
	}
	router := newProductRouter(svc, "development")

	payload := `{"name":"Tee","description":"d","price":9.99,"image":"i","category":"t-shirts"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestSeedWithoutStore(t *testing.T) {
	svc := &fakeProductService{
		seedFn: func(_ context.Context) (int, error) {
			return 0, apperrors.StoreUnavailable("Database connection required for seeding")
		},
	}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodPost, "/api/seed-products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestErrorDetailHiddenInProduction(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	svc := &fakeProductService{
		deleteFn: func(_ context.Context, _ string) error {
			return apperrors.Internal("Failed to delete product", boom)
		},
	}

	// Development responses carry the underlying error.
	router := newProductRouter(svc, "development")
	req := httptest.NewRequest(http.MethodDelete, "/api/products/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, boom.Error(), body["error"])

	// Production responses do not.
	router = newProductRouter(svc, "production")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/abc", nil))

	body = decodeBody(t, rec)
	assert.NotContains(t, body, "error")
	assert.Equal(t, "Failed to delete product", body["message"])
}

func TestUpdateProductPassthrough(t *testing.T) {
	var gotUpdates map[string]interface{}
	svc := &fakeProductService{
		updateFn: func(_ context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
			gotUpdates = updates
			return &models.Product{ID: id}, nil
		},
	}
	router := newProductRouter(svc, "development")

	req := httptest.NewRequest(http.MethodPut, "/api/products/abc", strings.NewReader(`{"price":12.5,"isHot":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12.5, gotUpdates["price"])
	assert.Equal(t, true, gotUpdates["isHot"])
}
