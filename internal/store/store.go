// Package store implements the in-memory entity store. Each entity kind is
// guarded independently, so a read after a write to the same key observes
// that write or a later one. No cross-entity transactions.
package store

import (
	"sync"

	"github.com/verichain/coldchain/internal/model"
)

type Store struct {
	productsMu sync.RWMutex
	products   map[string]model.Product

	shipmentsMu sync.RWMutex
	shipments   map[string]model.Shipment

	usersMu sync.RWMutex
	users   map[string]model.User
}

func New() *Store {
	return &Store{
		products:  make(map[string]model.Product),
		shipments: make(map[string]model.Shipment),
		users:     make(map[string]model.User),
	}
}

// PutProduct inserts or replaces a product by id.
func (s *Store) PutProduct(p model.Product) model.Product {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()
	s.products[p.ID] = p
	return p
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(id string) (model.Product, bool) {
	s.productsMu.RLock()
	defer s.productsMu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// ListProducts returns a snapshot of all products in unspecified order.
func (s *Store) ListProducts() []model.Product {
	s.productsMu.RLock()
	defer s.productsMu.RUnlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

// PutShipment inserts or replaces a shipment by id.
func (s *Store) PutShipment(sh model.Shipment) model.Shipment {
	s.shipmentsMu.Lock()
	defer s.shipmentsMu.Unlock()
	s.shipments[sh.ID] = sh
	return sh
}

// UpdateShipment is the id-preserving upsert used by the lifecycle write-back.
func (s *Store) UpdateShipment(sh model.Shipment) model.Shipment {
	return s.PutShipment(sh)
}

// GetShipment returns the shipment with the given id.
func (s *Store) GetShipment(id string) (model.Shipment, bool) {
	s.shipmentsMu.RLock()
	defer s.shipmentsMu.RUnlock()
	sh, ok := s.shipments[id]
	return sh, ok
}

// ListShipments returns a snapshot of all shipments in unspecified order.
func (s *Store) ListShipments() []model.Shipment {
	s.shipmentsMu.RLock()
	defer s.shipmentsMu.RUnlock()
	out := make([]model.Shipment, 0, len(s.shipments))
	for _, sh := range s.shipments {
		out = append(out, sh)
	}
	return out
}

// ListShipmentsByUser returns shipments whose role field matches userID.
// Unknown role values yield an empty result, not an error.
func (s *Store) ListShipmentsByUser(userID, role string) []model.Shipment {
	s.shipmentsMu.RLock()
	defer s.shipmentsMu.RUnlock()
	out := []model.Shipment{}
	for _, sh := range s.shipments {
		switch role {
		case "manufacturer":
			if sh.Manufacturer == userID {
				out = append(out, sh)
			}
		case "logistics":
			if sh.LogisticsPartner == userID {
				out = append(out, sh)
			}
		case "consumer":
			if sh.Consumer == userID {
				out = append(out, sh)
			}
		}
	}
	return out
}

// PutUser inserts or replaces a user by id.
func (s *Store) PutUser(u model.User) model.User {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	s.users[u.ID] = u
	return u
}

// ListUsers returns a snapshot of all users in unspecified order.
func (s *Store) ListUsers() []model.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}
