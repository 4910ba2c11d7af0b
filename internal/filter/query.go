package filter

import (
	"net/url"
	"strconv"
)

// Query parameter names used on the products listing URL.
const (
	paramSearch   = "search"
	paramCategory = "category"
	paramPriceMax = "price_max"
	paramRating   = "rating"
	paramSort     = "sort"
	paramPage     = "page"
)

// EncodeQuery serializes the state sparsely: default-valued fields are
// omitted entirely rather than written out as defaults, keeping shared
// URLs short.
func EncodeQuery(st State) url.Values {
	q := url.Values{}
	if st.SearchTerm != "" {
		q.Set(paramSearch, st.SearchTerm)
	}
	if st.Category != "" {
		q.Set(paramCategory, st.Category)
	}
	if st.PriceMax != DefaultMaxPrice {
		q.Set(paramPriceMax, strconv.FormatInt(st.PriceMax, 10))
	}
	if st.MinRating > 0 {
		q.Set(paramRating, strconv.FormatFloat(st.MinRating, 'f', -1, 64))
	}
	if st.SortBy != "" && st.SortBy != SortDefault {
		q.Set(paramSort, st.SortBy)
	}
	if st.Page > 1 {
		q.Set(paramPage, strconv.Itoa(st.Page))
	}
	return q
}

// DecodeQuery seeds a state from query parameters. Absent or malformed
// values fall back to their defaults; decoding never fails.
func DecodeQuery(q url.Values) State {
	st := Default()

	st.SearchTerm = q.Get(paramSearch)
	st.Category = q.Get(paramCategory)

	if raw := q.Get(paramPriceMax); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v >= 0 {
			st.PriceMax = v
		}
	}
	if raw := q.Get(paramRating); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			st.MinRating = v
		}
	}
	switch q.Get(paramSort) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc:
		st.SortBy = q.Get(paramSort)
	}
	if raw := q.Get(paramPage); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 1 {
			st.Page = v
		}
	}
	return st
}
