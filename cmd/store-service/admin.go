package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/htechvn/htech-store/internal/store"
)

// CreateProductRequest payload of product creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name          string         `json:"name" example:"MacBook Air 13 M3"`
	Category      store.Category `json:"category" example:"laptop"`
	Price         int64          `json:"price" example:"27990000"`
	OriginalPrice int64          `json:"originalPrice" example:"31990000"`
	Image         string         `json:"image"`
	Description   string         `json:"description"`
	Specs         []string       `json:"specs"`
	Stock         int            `json:"stock" example:"10"`
	Brand         string         `json:"brand" example:"Apple"`
}

// UpdateOrderStatusRequest payload of an order status transition.
// swagger:model UpdateOrderStatusRequest
type UpdateOrderStatusRequest struct {
	Status store.OrderStatus `json:"status" example:"shipping"`
}

func statsHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Stats())
	}
}

func listOrdersHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": st.Orders()})
	}
}

func updateOrderStatusHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		if !st.UpdateOrderStatus(id, req.Status) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		order, _ := st.FindOrder(id)
		c.JSON(http.StatusOK, order)
	}
}

func createProductHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Name == "" || !req.Category.Valid() || req.Price <= 0 || req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, category, positive price and non-negative stock are required"})
			return
		}
		p := st.AddProduct(store.Product{
			Name:          req.Name,
			Category:      req.Category,
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Image:         req.Image,
			Description:   req.Description,
			Specs:         req.Specs,
			Stock:         req.Stock,
			Brand:         req.Brand,
		})
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req store.ProductUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Category != nil && !req.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		if !st.UpdateProduct(id, req) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		p, _ := st.FindProduct(id)
		c.JSON(http.StatusOK, p)
	}
}

// deleteProductHandler answers 204 whether or not the id existed; delete
// on an unknown product stays a no-op all the way down.
func deleteProductHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		st.DeleteProduct(id)
		c.Status(http.StatusNoContent)
	}
}
