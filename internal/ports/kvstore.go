package ports

// KVStore is the persistence substrate for the client collections
// (cart, wishlist, addresses, orders, auth token). Values are stored
// as JSON blobs under fixed string keys; there is no schema versioning.
type KVStore interface {
	// Load reads the value under key into dst. Returns (false, nil)
	// when the key is absent. A blob that fails to decode is an error;
	// callers treat it as absent after logging.
	Load(key string, dst any) (bool, error)

	// Save serializes v and writes it under key, replacing any
	// previous value.
	Save(key string, v any) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
