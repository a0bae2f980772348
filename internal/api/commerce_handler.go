package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/metrics"
	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/store"
)

// CommerceHandler serves the caller's cart, checkout and order history.
type CommerceHandler struct {
	commerce *store.CommerceStore
}

// NewCommerceHandler creates a CommerceHandler.
func NewCommerceHandler(commerce *store.CommerceStore) *CommerceHandler {
	return &CommerceHandler{commerce: commerce}
}

// Cart handles GET /api/v1/cart.
func (h *CommerceHandler) Cart(c *gin.Context) {
	userID := callerID(c)
	c.JSON(http.StatusOK, CartResponse{
		Items: h.commerce.Cart(userID),
		Total: h.commerce.CartTotal(userID),
	})
}

// AddToCart handles POST /api/v1/cart/items.
func (h *CommerceHandler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if err := h.commerce.AddToCart(callerID(c), req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found", Details: req.ProductID})
		return
	}
	h.Cart(c)
}

// UpdateQuantity handles PUT /api/v1/cart/items/:productId. Zero or negative
// removes the line.
func (h *CommerceHandler) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	h.commerce.UpdateQuantity(callerID(c), c.Param("productId"), req.Quantity)
	h.Cart(c)
}

// RemoveFromCart handles DELETE /api/v1/cart/items/:productId.
func (h *CommerceHandler) RemoveFromCart(c *gin.Context) {
	h.commerce.RemoveFromCart(callerID(c), c.Param("productId"))
	h.Cart(c)
}

// Checkout handles POST /api/v1/orders: turns the cart into an order.
func (h *CommerceHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	order, err := h.commerce.CreateOrder(callerID(c), req.Billing)
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Checkout failed"})
		return
	}
	metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, order)
}

// Orders handles GET /api/v1/orders, newest first.
func (h *CommerceHandler) Orders(c *gin.Context) {
	c.JSON(http.StatusOK, h.commerce.UserOrders(callerID(c)))
}

// PurchasedProducts handles GET /api/v1/orders/products: the deduplicated
// products across the caller's orders.
func (h *CommerceHandler) PurchasedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.commerce.UserPurchasedProducts(callerID(c)))
}
