package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cemerttu/backend-store-master/controllers"
)

// endpoints lists every supported route, served by the banner and by the
// NoRoute handler.
var endpoints = gin.H{
	"GET /":                         "service banner",
	"GET /api/health":               "liveness and store connectivity",
	"GET /api/products":             "list products (category, gender, search, sort, limit)",
	"GET /api/products/featured":    "featured products",
	"GET /api/products/bestsellers": "bestselling products",
	"GET /api/products/:id":         "single product",
	"POST /api/products":            "create product",
	"PUT /api/products/:id":         "update product",
	"DELETE /api/products/:id":      "delete product",
	"POST /api/seed-products":       "destructive reseed of the catalog",
	"GET /api/orders":               "list orders (optional ?email=)",
	"POST /api/orders":              "create order",
	"GET /api/orders/:id":           "single order",
	"POST /api/contact":             "submit contact message",
}

// RegisterRoutes wires every endpoint to its controller.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	orders *controllers.OrderController,
	contact *controllers.ContactController,
	health *controllers.HealthController,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Storefront API",
			"endpoints": endpoints,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", health.Health)

		api.GET("/products", products.GetProducts)
		api.GET("/products/featured", products.GetFeatured)
		api.GET("/products/bestsellers", products.GetBestsellers)
		api.GET("/products/:id", products.GetProductByID)
		api.POST("/products", products.CreateProduct)
		api.PUT("/products/:id", products.UpdateProduct)
		api.DELETE("/products/:id", products.DeleteProduct)
		api.POST("/seed-products", products.SeedProducts)

		api.GET("/orders", orders.GetOrders)
		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders/:id", orders.GetOrderByID)

		api.POST("/contact", contact.SubmitContact)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":   false,
			"message":   "Route not found",
			"endpoints": endpoints,
		})
	})
}
