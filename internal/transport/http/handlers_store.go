package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/store"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/httpx"
)

type cartPayload struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalCLP   int64             `json:"totalCLP"`
}

func (h *Handler) cartJSON(c *gin.Context, status int) {
	c.JSON(status, cartPayload{
		Items:      h.cart.Items(),
		TotalItems: h.cart.TotalItems(),
		TotalCLP:   h.cart.TotalCLP(),
	})
}

func (h *Handler) getCart(c *gin.Context) {
	h.cartJSON(c, http.StatusOK)
}

func (h *Handler) addCartItem(c *gin.Context) {
	var body struct {
		ProductID int `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	ctx := c.Request.Context()
	p, err := h.catalog.Product(ctx, body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	h.cart.Add(ctx, *p)
	h.cartJSON(c, http.StatusOK)
}

func (h *Handler) updateCartItem(c *gin.Context) {
	id, ok := httpx.IntParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	h.cart.UpdateQuantity(c.Request.Context(), id, body.Quantity)
	h.cartJSON(c, http.StatusOK)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	id, ok := httpx.IntParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	h.cart.Remove(c.Request.Context(), id)
	h.cartJSON(c, http.StatusOK)
}

func (h *Handler) clearCart(c *gin.Context) {
	h.cart.Clear(c.Request.Context())
	h.cartJSON(c, http.StatusOK)
}

func (h *Handler) getWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.wishlist.Items()})
}

func (h *Handler) toggleWishlist(c *gin.Context) {
	var body struct {
		ProductID int `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	ctx := c.Request.Context()
	p, err := h.catalog.Product(ctx, body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	added := h.wishlist.Toggle(ctx, *p)
	c.JSON(http.StatusOK, gin.H{"added": added, "items": h.wishlist.Items()})
}

func (h *Handler) moveWishlistToCart(c *gin.Context) {
	moved := h.wishlist.MoveAllToCart(c.Request.Context(), h.cart)
	c.JSON(http.StatusOK, gin.H{"moved": moved, "cart": cartPayload{
		Items:      h.cart.Items(),
		TotalItems: h.cart.TotalItems(),
		TotalCLP:   h.cart.TotalCLP(),
	}})
}

func (h *Handler) listAddresses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.addresses.List()})
}

func (h *Handler) addAddress(c *gin.Context) {
	var addr domain.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address payload"})
		return
	}
	saved := h.addresses.Add(c.Request.Context(), addr)
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) updateAddress(c *gin.Context) {
	var addr domain.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address payload"})
		return
	}
	addr.ID = c.Param("id")

	if err := h.addresses.Update(c.Request.Context(), addr); err != nil {
		h.addressError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.addresses.List()})
}

func (h *Handler) setDefaultAddress(c *gin.Context) {
	if err := h.addresses.SetDefault(c.Request.Context(), c.Param("id")); err != nil {
		h.addressError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.addresses.List()})
}

func (h *Handler) deleteAddress(c *gin.Context) {
	if err := h.addresses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.addressError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.addresses.List()})
}

func (h *Handler) addressError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDefaultAddress), errors.Is(err, store.ErrLastAddress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "address operation failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.orders.List()})
}

func (h *Handler) getOrder(c *gin.Context) {
	order, ok := h.orders.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}
