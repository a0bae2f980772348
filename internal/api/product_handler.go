package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/store"
)

// ProductHandler serves the marketplace catalog. Listing is public; edits are
// scoped to the teacher who owns the product.
type ProductHandler struct {
	commerce *store.CommerceStore
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(commerce *store.CommerceStore) *ProductHandler {
	return &ProductHandler{commerce: commerce}
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.commerce.Products())
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.commerce.ProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /api/v1/products (teachers only).
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	product := h.commerce.AddProduct(callerID(c), req)
	c.JSON(http.StatusCreated, product)
}

// Update handles PATCH /api/v1/products/:id (teachers only).
func (h *ProductHandler) Update(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	product, err := h.commerce.UpdateProduct(callerID(c), c.Param("id"), req)
	if err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/v1/products/:id (teachers only).
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.commerce.DeleteProduct(callerID(c), c.Param("id")); err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted"})
}

// Sales handles GET /api/v1/products/sales (teachers only): orders containing
// the caller's products.
func (h *ProductHandler) Sales(c *gin.Context) {
	c.JSON(http.StatusOK, h.commerce.TeacherSales(callerID(c)))
}

func writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotProductOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Product belongs to another teacher"})
	case errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Catalog operation failed"})
	}
}
