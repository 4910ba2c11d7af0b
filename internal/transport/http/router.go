// Package rest exposes the storefront over HTTP: catalog reads with
// filtering, the persistent collections (cart, wishlist, addresses,
// orders), the checkout flow and the auth session.
package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/store"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/usecase"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/httpx"
)

type Handler struct {
	catalog   ports.CatalogReadService
	cart      *store.Cart
	wishlist  *store.Wishlist
	addresses *store.AddressBook
	orders    *store.OrderLog
	checkout  *usecase.Checkout
	auth      *usecase.Auth
	clpRate   float64
	log       ports.Logger
}

// HandlerDeps bundles everything the HTTP layer needs; gin handlers
// never construct domain objects themselves.
type HandlerDeps struct {
	Catalog   ports.CatalogReadService
	Cart      *store.Cart
	Wishlist  *store.Wishlist
	Addresses *store.AddressBook
	Orders    *store.OrderLog
	Checkout  *usecase.Checkout
	Auth      *usecase.Auth
	CLPRate   float64
	Log       ports.Logger
}

func NewHandler(d HandlerDeps) *Handler {
	return &Handler{
		catalog:   d.Catalog,
		cart:      d.Cart,
		wishlist:  d.Wishlist,
		addresses: d.Addresses,
		orders:    d.Orders,
		checkout:  d.Checkout,
		auth:      d.Auth,
		clpRate:   d.CLPRate,
		log:       d.Log,
	}
}

// NewRouter wires middleware and the route table. serviceName enables
// trace instrumentation when non-empty.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/categories", h.listCategories)
		api.GET("/categories/:slug/products", h.listCategoryProducts)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PUT("/cart/items/:id", h.updateCartItem)
		api.DELETE("/cart/items/:id", h.removeCartItem)
		api.DELETE("/cart", h.clearCart)

		api.GET("/wishlist", h.getWishlist)
		api.POST("/wishlist/toggle", h.toggleWishlist)
		api.POST("/wishlist/move-to-cart", h.moveWishlistToCart)

		api.GET("/addresses", h.listAddresses)
		api.POST("/addresses", h.addAddress)
		api.PUT("/addresses/:id", h.updateAddress)
		api.POST("/addresses/:id/default", h.setDefaultAddress)
		api.DELETE("/addresses/:id", h.deleteAddress)

		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrder)

		api.GET("/checkout/form", h.getCheckoutForm)
		api.PUT("/checkout/form", h.updateCheckoutForm)
		api.POST("/checkout", h.startCheckout)
		api.POST("/checkout/confirm", h.confirmCheckout)

		api.POST("/auth/login", h.login)
		api.GET("/auth/me", h.me)
		api.POST("/auth/register", h.register)
		api.POST("/auth/logout", h.logout)
	}

	return r
}
