package entity

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmptyCustomerID  = errors.New("customer id is empty")
)

// Store is the customer lookup capability. The demo wires MockStore; a
// production deployment swaps in RESTStore or PostgresStore without
// touching any tool signature.
type Store interface {
	Lookup(ctx context.Context, customerID string) (*Customer, error)
}

// MockStore answers every lookup with the canonical example profile. It
// never returns ErrCustomerNotFound; that is a documented limitation of
// the demo, not a bug.
type MockStore struct{}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (s *MockStore) Lookup(_ context.Context, customerID string) (*Customer, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrEmptyCustomerID
	}
	return ExampleCustomer(customerID), nil
}
