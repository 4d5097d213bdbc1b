package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/server/http/dto"
	"github.com/polkiloo/storemart/internal/usecase"
)

// ProductHandler serves the storefront catalog and vendor management.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductListResponse(products))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), CurrentSession(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// ListMine handles GET /api/vendor/products.
func (h *ProductHandler) ListMine(c *gin.Context) {
	products, err := h.facade.VendorProducts(c.Request.Context(), CurrentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductListResponse(products))
}

// Create handles POST /api/vendor/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentSession(c), productInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// Update handles PUT /api/vendor/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), CurrentSession(c), id, productInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

func productInput(req dto.ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Active:      req.Active,
	}
}
