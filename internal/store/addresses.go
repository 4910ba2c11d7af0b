package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/metrics"
)

// Deletion guards. The default address and the sole remaining address
// are protected at the data layer, not just hidden in the interface.
var (
	ErrAddressNotFound = errors.New("address not found")
	ErrDefaultAddress  = errors.New("cannot delete the default address")
	ErrLastAddress     = errors.New("cannot delete the only address")
)

// AddressBook keeps saved shipping addresses. Invariant: a non-empty
// book has exactly one default; the first address ever saved becomes
// the default automatically.
type AddressBook struct {
	kv  ports.KVStore
	log ports.Logger

	mu       sync.Mutex
	items    []domain.Address
	hydrated bool
}

func NewAddressBook(kv ports.KVStore, log ports.Logger) *AddressBook {
	return &AddressBook{kv: kv, log: log}
}

func (b *AddressBook) Hydrate(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hydrated {
		return
	}
	var items []domain.Address
	if _, err := b.kv.Load(keyAddresses, &items); err != nil {
		b.log.Warnf(ctx, "addresses blob unreadable, starting empty: %v", err)
		items = nil
	}
	b.items = items
	b.hydrated = true
}

// Add saves addr under a generated id. The first-ever address is
// auto-marked default; an explicit IsDefault demotes the others.
func (b *AddressBook) Add(ctx context.Context, addr domain.Address) domain.Address {
	b.mu.Lock()
	defer b.mu.Unlock()

	addr.ID = uuid.New().String()
	if len(b.items) == 0 {
		addr.IsDefault = true
	} else if addr.IsDefault {
		for i := range b.items {
			b.items[i].IsDefault = false
		}
	}
	b.items = append(b.items, addr)
	b.persist(ctx)
	return addr
}

// Update replaces the stored fields of an existing address; the
// default flag is managed through SetDefault only.
func (b *AddressBook) Update(ctx context.Context, addr domain.Address) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.items {
		if b.items[i].ID == addr.ID {
			addr.IsDefault = b.items[i].IsDefault
			b.items[i] = addr
			b.persist(ctx)
			return nil
		}
	}
	return ErrAddressNotFound
}

// SetDefault marks exactly one entry default and clears the flag on
// every other, replacing the whole collection atomically.
func (b *AddressBook) SetDefault(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	found := false
	next := make([]domain.Address, len(b.items))
	for i, a := range b.items {
		a.IsDefault = a.ID == id
		if a.IsDefault {
			found = true
		}
		next[i] = a
	}
	if !found {
		return ErrAddressNotFound
	}
	b.items = next
	b.persist(ctx)
	return nil
}

// Delete removes an address, refusing to remove the current default
// or the only remaining entry.
func (b *AddressBook) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := -1
	for i := range b.items {
		if b.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAddressNotFound
	}
	if len(b.items) == 1 {
		return ErrLastAddress
	}
	if b.items[idx].IsDefault {
		return ErrDefaultAddress
	}

	b.items = append(b.items[:idx], b.items[idx+1:]...)
	b.persist(ctx)
	return nil
}

// List returns a copy of all addresses.
func (b *AddressBook) List() []domain.Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Address(nil), b.items...)
}

// Default returns the current default address, if any.
func (b *AddressBook) Default() (domain.Address, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, a := range b.items {
		if a.IsDefault {
			return a, true
		}
	}
	return domain.Address{}, false
}

func (b *AddressBook) persist(ctx context.Context) {
	if !b.hydrated {
		return
	}
	if err := b.kv.Save(keyAddresses, b.items); err != nil {
		b.log.Errorf(ctx, "addresses persist failed: %v", err)
		return
	}
	metrics.StoreWrites.WithLabelValues("addresses").Inc()
}
