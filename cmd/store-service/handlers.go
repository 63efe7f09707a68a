package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/htechvn/htech-store/internal/store"
)

// AddCartItemRequest adds a product to the cart.
// swagger:model AddCartItemRequest
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" example:"1"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" example:"2"`
}

// UpdateCartItemRequest overwrites a line's quantity; zero or negative
// removes the line.
// swagger:model UpdateCartItemRequest
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" example:"3"`
}

// CheckoutRequest submits the current cart as an order.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	Customer      store.Customer      `json:"customer"`
	PaymentMethod store.PaymentMethod `json:"paymentMethod" example:"cod"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func listProductsHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat := store.Category(c.Query("category"))
		if cat != "" && !cat.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": st.Products(cat, c.Query("q"))})
	}
}

func getProductHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		p, found := st.FindProduct(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func getCartHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items": st.Cart(),
			"count": st.CartCount(),
			"total": st.CartTotal(),
		})
	}
}

func addCartItemHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		p, found := st.FindProduct(req.ProductID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		qty := req.Quantity
		if qty == 0 {
			qty = 1
		}
		st.AddToCart(p, qty)
		c.JSON(http.StatusOK, gin.H{
			"items": st.Cart(),
			"count": st.CartCount(),
			"total": st.CartTotal(),
		})
	}
}

func updateCartItemHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		st.UpdateCartQuantity(id, req.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items": st.Cart(),
			"count": st.CartCount(),
			"total": st.CartTotal(),
		})
	}
}

func removeCartItemHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		st.RemoveFromCart(id)
		c.Status(http.StatusNoContent)
	}
}

// checkoutHandler holds the only user-facing validation in the system:
// required customer fields and a non-empty cart. The Store itself accepts
// whatever it is handed.
func checkoutHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		cu := req.Customer
		if cu.FullName == "" || cu.Phone == "" || cu.Address == "" || cu.City == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fullName, phone, address and city are required"})
			return
		}
		if !req.PaymentMethod.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
			return
		}
		if len(st.Cart()) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		order := st.CreateOrder(cu, req.PaymentMethod)
		c.JSON(http.StatusCreated, order)
	}
}
