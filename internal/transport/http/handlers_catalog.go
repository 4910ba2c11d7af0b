package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/filter"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/httpx"
)

// listProducts serves the filtered catalog view. Filter inputs arrive
// as query params in the same sparse encoding the UI mirrors into its
// address bar; unknown or malformed values fall back to defaults.
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil && len(products) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	st := filter.DecodeQuery(c.Request.URL.Query())
	c.JSON(http.StatusOK, filter.Apply(products, st, h.clpRate))
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := httpx.IntParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	p, err := h.catalog.Product(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.catalog.Categories(c.Request.Context())
	if err != nil && len(cats) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) listCategoryProducts(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty category"})
		return
	}

	products, err := h.catalog.ProductsByCategory(c.Request.Context(), slug)
	if err != nil && len(products) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	st := filter.DecodeQuery(c.Request.URL.Query())
	st.Category = ""
	c.JSON(http.StatusOK, filter.Apply(products, st, h.clpRate))
}
