package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/server/http/dto"
)

// CategoryHandler serves the category taxonomy.
type CategoryHandler struct {
	facade CategoryFacade
}

// NewCategoryHandler creates CategoryHandler instance.
func NewCategoryHandler(facade CategoryFacade) *CategoryHandler {
	return &CategoryHandler{facade: facade}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// Update handles PUT /api/admin/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.UpdateCategory(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Delete handles DELETE /api/admin/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
