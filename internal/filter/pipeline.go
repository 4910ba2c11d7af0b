package filter

import (
	"net/url"
	"sync"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

// Pipeline owns mutable filter state for one browsing session. Search
// input is debounced before it reaches the state; every committed
// change resets pagination and notifies the onChange hook with the
// sparse query encoding (the URL-sync side effect).
type Pipeline struct {
	clpRate  float64
	debounce *Debouncer

	mu        sync.Mutex
	state     State
	rawSearch string

	onChange func(url.Values)
}

// NewPipeline builds a pipeline at the default state. onChange may be
// nil; it fires after every committed state change.
func NewPipeline(clpRate float64, debounceDelay time.Duration, onChange func(url.Values)) *Pipeline {
	return &Pipeline{
		clpRate:  clpRate,
		debounce: NewDebouncer(debounceDelay),
		state:    Default(),
		onChange: onChange,
	}
}

// Seed replaces the whole state, typically from DecodeQuery on mount.
func (p *Pipeline) Seed(st State) {
	p.mu.Lock()
	p.state = st
	p.rawSearch = st.SearchTerm
	p.mu.Unlock()
}

// State returns the committed state (debounced search included).
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// RawSearch returns the latest keystroke value, which may still be
// waiting out the debounce window.
func (p *Pipeline) RawSearch() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rawSearch
}

// SetSearch records the keystroke immediately and commits it to the
// filter state only after the quiet period.
func (p *Pipeline) SetSearch(term string) {
	p.mu.Lock()
	p.rawSearch = term
	p.mu.Unlock()

	p.debounce.Do(func() {
		p.update(func(st *State) {
			st.SearchTerm = term
			st.Page = 1
		})
	})
}

func (p *Pipeline) SetCategory(category string) {
	p.update(func(st *State) {
		st.Category = category
		st.Page = 1
	})
}

func (p *Pipeline) SetPriceMax(max int64) {
	p.update(func(st *State) {
		if max < 0 {
			max = 0
		}
		st.PriceMax = max
		st.Page = 1
	})
}

func (p *Pipeline) SetMinRating(rating float64) {
	p.update(func(st *State) {
		st.MinRating = rating
		st.Page = 1
	})
}

func (p *Pipeline) SetSort(sortBy string) {
	p.update(func(st *State) {
		st.SortBy = sortBy
		st.Page = 1
	})
}

func (p *Pipeline) SetPage(page int) {
	p.update(func(st *State) {
		if page < 1 {
			page = 1
		}
		st.Page = page
	})
}

// ClearFilters resets every field in one atomic update, so observers
// never see a half-reset intermediate state.
func (p *Pipeline) ClearFilters() {
	p.debounce.Stop()
	p.mu.Lock()
	p.state = Default()
	p.rawSearch = ""
	p.mu.Unlock()
	p.notify()
}

// View derives the current page over the given product list.
func (p *Pipeline) View(products []domain.Product) View {
	return Apply(products, p.State(), p.clpRate)
}

func (p *Pipeline) update(mutate func(*State)) {
	p.mu.Lock()
	mutate(&p.state)
	p.mu.Unlock()
	p.notify()
}

func (p *Pipeline) notify() {
	if p.onChange == nil {
		return
	}
	p.onChange(EncodeQuery(p.State()))
}
