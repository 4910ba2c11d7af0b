// Package filter derives the filtered/sorted/paginated product view.
// The derivation is a pure function over the full product list and a
// filter state; the stateful Pipeline (debounce, URL sync) sits on top.
package filter

import (
	"sort"
	"strings"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/currency"
)

// PageSize is the fixed number of products per page.
const PageSize = 8

// Price bounds are in CLP; the default range admits the whole catalog.
const (
	DefaultMinPrice int64 = 0
	DefaultMaxPrice int64 = 2_000_000
)

// Sort keys.
const (
	SortDefault    = "default"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// State is the full set of filter inputs. Session-local; optionally
// mirrored into the URL query string, never persisted.
type State struct {
	SearchTerm string
	Category   string
	PriceMin   int64
	PriceMax   int64
	MinRating  float64
	SortBy     string
	Page       int
}

// Default returns the neutral state every filter resets to.
func Default() State {
	return State{
		PriceMin: DefaultMinPrice,
		PriceMax: DefaultMaxPrice,
		SortBy:   SortDefault,
		Page:     1,
	}
}

// View is the derived output: one page of products plus pagination
// metadata computed over the pre-pagination filtered set.
type View struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	TotalItems int              `json:"totalItems"`
}

// Apply recomputes the view from scratch. Filtering order: category,
// title substring (case-insensitive), CLP price range (inclusive),
// minimum rating (inclusive). Sorting is stable; "default" keeps the
// filtered order. clpRate converts catalog USD prices for the price
// comparison.
func Apply(products []domain.Product, st State, clpRate float64) View {
	filtered := make([]domain.Product, 0, len(products))
	term := strings.ToLower(strings.TrimSpace(st.SearchTerm))

	for _, p := range products {
		if st.Category != "" && p.Category != st.Category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		clp := currency.ToCLP(p.Price, clpRate)
		if clp < st.PriceMin || clp > st.PriceMax {
			continue
		}
		if p.Rating < st.MinRating {
			continue
		}
		filtered = append(filtered, p)
	}

	switch st.SortBy {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRatingDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	page := st.Page
	if page < 1 {
		page = 1
	}
	lo := (page - 1) * PageSize
	hi := lo + PageSize
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return View{
		Items:      filtered[lo:hi],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
