package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/htechvn/htech-store/internal/config"
	"github.com/htechvn/htech-store/internal/httpx"
	"github.com/htechvn/htech-store/internal/storage"
	"github.com/htechvn/htech-store/internal/store"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	var repo store.Repository
	switch cfg.StorageBackend {
	case "redis":
		repo, err = storage.NewRedisRepo(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.WithError(err).Fatal("init redis storage")
		}
	default:
		repo = storage.NewFileRepo(cfg.StoreFile)
	}
	defer repo.Close()

	st, err := store.New(repo, log)
	if err != nil {
		log.WithError(err).Fatal("load store state")
	}

	r := newRouter(st, log)
	log.WithField("addr", cfg.Addr).Info("store-service listening")
	if err := r.Run(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newRouter(st *store.Store, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log), httpx.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// storefront
	r.GET("/products", listProductsHandler(st))
	r.GET("/products/:id", getProductHandler(st))
	r.GET("/cart", getCartHandler(st))
	r.POST("/cart/items", addCartItemHandler(st))
	r.PUT("/cart/items/:id", updateCartItemHandler(st))
	r.DELETE("/cart/items/:id", removeCartItemHandler(st))
	r.POST("/checkout", checkoutHandler(st))

	// admin console
	admin := r.Group("/admin")
	admin.GET("/stats", statsHandler(st))
	admin.GET("/orders", listOrdersHandler(st))
	admin.PUT("/orders/:id/status", updateOrderStatusHandler(st))
	admin.POST("/products", createProductHandler(st))
	admin.PUT("/products/:id", updateProductHandler(st))
	admin.DELETE("/products/:id", deleteProductHandler(st))

	return r
}
