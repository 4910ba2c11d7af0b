package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/usecase"
)

func (h *Handler) getCheckoutForm(c *gin.Context) {
	form := h.checkout.Form()
	c.JSON(http.StatusOK, gin.H{
		"values":  form.Values(),
		"touched": form.Touched(),
		"errors":  form.Errors(),
		"valid":   form.IsValid(),
	})
}

// updateCheckoutForm applies partial field updates. Only fields
// present in the body are touched; the phone keeps its previous value
// when the new one does not start with the fixed prefix.
func (h *Handler) updateCheckoutForm(c *gin.Context) {
	var body struct {
		FullName *string `json:"fullName"`
		Address  *string `json:"address"`
		City     *string `json:"city"`
		Phone    *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}

	form := h.checkout.Form()
	if body.FullName != nil {
		form.SetFullName(*body.FullName)
	}
	if body.Address != nil {
		form.SetAddress(*body.Address)
	}
	if body.City != nil {
		form.SetCity(*body.City)
	}
	if body.Phone != nil {
		form.SetPhone(*body.Phone)
	}

	c.JSON(http.StatusOK, gin.H{
		"values":  form.Values(),
		"touched": form.Touched(),
		"errors":  form.Errors(),
		"valid":   form.IsValid(),
	})
}

func (h *Handler) startCheckout(c *gin.Context) {
	link, err := h.checkout.Start(c.Request.Context())
	switch {
	case errors.Is(err, usecase.ErrInvalidForm):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "form has invalid fields",
			"errors": h.checkout.Form().Errors(),
		})
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
	default:
		c.JSON(http.StatusOK, link)
	}
}

func (h *Handler) confirmCheckout(c *gin.Context) {
	var body struct {
		Reference string `json:"reference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	order, err := h.checkout.Confirm(c.Request.Context(), body.Reference)
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case err != nil:
		h.log.Errorf(c.Request.Context(), "confirm failed ref=%s err=%v", body.Reference, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		c.JSON(http.StatusCreated, order)
	}
}
