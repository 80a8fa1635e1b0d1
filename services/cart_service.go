package services

import (
	"sync"

	"clinic-portal/models"
)

// CartStore holds every live cart in process memory, keyed by the opaque cart
// token from the visitor's cookie. Carts are never persisted; a restart starts
// everyone with an empty cart again.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*models.Cart)}
}

// cart returns the cart for key, creating an empty one on first use.
// Callers must hold the write lock.
func (s *CartStore) cart(key string) *models.Cart {
	c, ok := s.carts[key]
	if !ok {
		c = models.NewCart()
		s.carts[key] = c
	}
	return c
}

func (s *CartStore) Add(key string, med models.Medicine) models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(key)
	c.Add(med)
	return response(c)
}

func (s *CartStore) SetQuantity(key, medicineID string, quantity int) models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(key)
	c.SetQuantity(medicineID, quantity)
	return response(c)
}

func (s *CartStore) Remove(key, medicineID string) models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(key)
	c.Remove(medicineID)
	return response(c)
}

func (s *CartStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[key]; ok {
		c.Clear()
	}
}

func (s *CartStore) Get(key string) models.CartResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[key]
	if !ok {
		return models.CartResponse{Items: []models.CartItem{}}
	}
	return response(c)
}

// Snapshot copies the cart's line items in order, for iteration outside the
// lock (checkout reads this while backend calls are in flight).
func (s *CartStore) Snapshot(key string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[key]
	if !ok {
		return []models.CartItem{}
	}
	return c.Snapshot()
}

func response(c *models.Cart) models.CartResponse {
	return models.CartResponse{Items: c.Snapshot(), Total: c.Total()}
}
