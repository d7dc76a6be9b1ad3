package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
)

// ProductController maps catalog endpoints to the product service.
type ProductController struct {
	service   ProductServiceAPI
	cache     *CatalogCache
	validator *RequestValidator
	env       string
}

// NewProductController creates the catalog controller. The cache may be nil.
func NewProductController(service ProductServiceAPI, cache *CatalogCache, env string) *ProductController {
	return &ProductController{
		service:   service,
		cache:     cache,
		validator: NewRequestValidator(),
		env:       env,
	}
}

// GetProducts handles GET /api/products.
func (pc *ProductController) GetProducts(c *gin.Context) {
	params, err := pc.validator.ParseListParams(c)
	if err != nil {
		respondError(c, pc.env, apperrors.Validation(err.Error()))
		return
	}

	if cached, ok := pc.cache.GetList(c.Request.Context(), params); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, fromFallback, err := pc.service.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, pc.env, err)
		return
	}

	response := gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	}
	// Fallback responses are not cached: the store may come back with real
	// data at any moment.
	if !fromFallback {
		pc.cache.SetListAsync(params, response)
	}
	c.JSON(http.StatusOK, response)
}

// GetFeatured handles GET /api/products/featured.
func (pc *ProductController) GetFeatured(c *gin.Context) {
	products, err := pc.service.Featured(c.Request.Context())
	if err != nil {
		respondError(c, pc.env, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

// GetBestsellers handles GET /api/products/bestsellers.
func (pc *ProductController) GetBestsellers(c *gin.Context) {
	products, err := pc.service.Bestsellers(c.Request.Context())
	if err != nil {
		respondError(c, pc.env, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

// GetProductByID handles GET /api/products/:id.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, err := pc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, pc.env, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

// CreateProduct handles POST /api/products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondError(c, pc.env, apperrors.Validation("Invalid JSON payload"))
		return
	}

	created, err := pc.service.Create(c.Request.Context(), product)
	if err != nil {
		respondError(c, pc.env, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"product": created,
	})
}

// UpdateProduct handles PUT /api/products/:id with partial-merge semantics.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, pc.env, apperrors.Validation("Invalid JSON payload"))
		return
	}

	updated, err := pc.service.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondError(c, pc.env, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": updated,
	})
}

// DeleteProduct handles DELETE /api/products/:id. Idempotent on miss.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, pc.env, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// SeedProducts handles POST /api/seed-products, the destructive reseed.
func (pc *ProductController) SeedProducts(c *gin.Context) {
	count, err := pc.service.Seed(c.Request.Context())
	if err != nil {
		respondError(c, pc.env, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Products seeded successfully",
		"count":   count,
	})
}
