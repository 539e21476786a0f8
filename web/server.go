// Package web exposes the storefront over HTTP: catalog browsing, the
// cart operations, and the simulated checkout. Handlers never see storage
// errors; the fail-soft contract lives in the cart store below them.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/example/moldz3d/pkg/cart"
	"github.com/example/moldz3d/pkg/catalog"
	"github.com/example/moldz3d/pkg/checkout"
	"github.com/example/moldz3d/pkg/config"
	"github.com/example/moldz3d/pkg/models"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *gin.Engine
	catalog  *catalog.Catalog
	cart     *cart.Store
	checkout *checkout.Service
}

func NewServer(cfg *config.Config, logger *zap.Logger, cat *catalog.Catalog, cartStore *cart.Store, co *checkout.Service) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config:   cfg,
		logger:   logger,
		router:   router,
		catalog:  cat,
		cart:     cartStore,
		checkout: co,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/:id", s.getProduct)
		}

		cartGroup := v1.Group("/cart")
		{
			cartGroup.GET("", s.getCart)
			cartGroup.DELETE("", s.clearCart)
			cartGroup.POST("/items", s.addCartItem)
			cartGroup.PUT("/items/:key", s.updateCartItem)
			cartGroup.DELETE("/items/:key", s.removeCartItem)
		}

		checkoutGroup := v1.Group("/checkout")
		{
			checkoutGroup.GET("/quote", s.getQuote)
			checkoutGroup.POST("", s.placeOrder)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Storefront starting", zap.String("address", addr))
	return s.router.Run(addr)
}

func (s *Server) listProducts(c *gin.Context) {
	filter := catalog.Filter{
		Category:  c.Query("category"),
		Materials: c.QueryArray("material"),
		Sort:      catalog.SortOrder(c.Query("sort")),
	}
	if v := c.Query("min_price"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = min
		}
	}
	if v := c.Query("max_price"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = max
		}
	}

	products := s.catalog.Search(filter)
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

func (s *Server) getProduct(c *gin.Context) {
	product, ok := s.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cartPayload(c))
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	if req.VariantID != "" {
		variant, ok := product.Variant(req.VariantID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "variant not found"})
			return
		}
		s.cart.AddVariant(c.Request.Context(), product, &variant, quantity)
	} else {
		s.cart.Add(c.Request.Context(), product, quantity)
	}

	c.JSON(http.StatusCreated, s.cartPayload(c))
}

// Quantity is clamped to a minimum of 1 downstream, so zero and negative
// values are accepted here.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.cart.UpdateQuantity(c.Request.Context(), c.Param("key"), req.Quantity)
	c.JSON(http.StatusOK, s.cartPayload(c))
}

func (s *Server) removeCartItem(c *gin.Context) {
	s.cart.Remove(c.Request.Context(), c.Param("key"))
	c.JSON(http.StatusOK, s.cartPayload(c))
}

func (s *Server) clearCart(c *gin.Context) {
	s.cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, s.cartPayload(c))
}

func (s *Server) getQuote(c *gin.Context) {
	c.JSON(http.StatusOK, s.checkout.Quote(c.Request.Context()))
}

type placeOrderRequest struct {
	Shipping checkout.ShippingInfo `json:"shipping"`
	Payment  checkout.PaymentInfo  `json:"payment"`
}

func (s *Server) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.checkout.PlaceOrder(c.Request.Context(), req.Shipping, req.Payment)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (s *Server) cartPayload(c *gin.Context) gin.H {
	ctx := c.Request.Context()

	items := s.cart.Items(ctx)
	if items == nil {
		items = []models.CartLine{}
	}

	var subtotal float64
	var count int
	for _, line := range items {
		subtotal += line.Subtotal()
		count += line.Quantity
	}

	return gin.H{
		"items":    items,
		"subtotal": subtotal,
		"count":    count,
	}
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
