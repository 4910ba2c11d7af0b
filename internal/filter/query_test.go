package filter_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/filter"
)

func TestEncodeQuery_DefaultsAreOmitted(t *testing.T) {
	q := filter.EncodeQuery(filter.Default())
	assert.Empty(t, q, "a default state must encode to an empty query")
}

func TestEncodeQuery_Sparse(t *testing.T) {
	st := filter.Default()
	st.SearchTerm = "laptop"
	st.Category = "tech"
	st.MinRating = 4
	st.Page = 3
	// PriceMax and SortBy left at defaults

	q := filter.EncodeQuery(st)

	assert.Equal(t, "laptop", q.Get("search"))
	assert.Equal(t, "tech", q.Get("category"))
	assert.Equal(t, "4", q.Get("rating"))
	assert.Equal(t, "3", q.Get("page"))
	assert.False(t, q.Has("price_max"), "default price max must not be written")
	assert.False(t, q.Has("sort"), "default sort must not be written")
}

func TestDecodeQuery_RoundTrip(t *testing.T) {
	st := filter.Default()
	st.SearchTerm = "phone"
	st.Category = "smartphones"
	st.PriceMax = 750_000
	st.MinRating = 3.5
	st.SortBy = filter.SortPriceDesc
	st.Page = 2

	got := filter.DecodeQuery(filter.EncodeQuery(st))
	assert.Equal(t, st, got)
}

func TestDecodeQuery_JunkFallsBackToDefaults(t *testing.T) {
	q := url.Values{}
	q.Set("price_max", "lots")
	q.Set("rating", "-3")
	q.Set("sort", "alphabetical")
	q.Set("page", "zero")

	got := filter.DecodeQuery(q)
	assert.Equal(t, filter.Default(), got)
}

func TestDecodeQuery_PageOneIsDefault(t *testing.T) {
	q := url.Values{}
	q.Set("page", "1")

	got := filter.DecodeQuery(q)
	assert.Equal(t, 1, got.Page)
}
