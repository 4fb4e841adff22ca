package store

// NewTestStore creates a Store backed by an in-memory database.
// This is only intended for use in tests.
func NewTestStore() (*Store, error) {
	return openAt(":memory:")
}
