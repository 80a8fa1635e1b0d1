package models

// CartItem is a medicine plus how many of it the cart holds. Quantity is
// always >= 1 while the item is present; an item that would drop to 0 is
// removed instead.
type CartItem struct {
	Medicine
	Quantity int `json:"quantity"`
}

// Cart keeps line items in insertion order: the first Add of a medicine fixes
// its position, later Adds of the same medicine only bump the quantity.
// There is at most one line item per medicine ID.
//
// Cart itself is not safe for concurrent use; CartStore serializes access.
type Cart struct {
	Items []CartItem `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// Add merges into an existing line item or appends a new one with quantity 1.
// Stock is not checked here: availability is a catalog concern, the cart only
// records what was requested.
func (c *Cart) Add(med Medicine) {
	for i := range c.Items {
		if c.Items[i].ID == med.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Medicine: med, Quantity: 1})
}

// Remove deletes the line item for medicineID. Removing an absent item is a
// no-op, not an error.
func (c *Cart) Remove(medicineID string) {
	for i := range c.Items {
		if c.Items[i].ID == medicineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity clamps quantity to a minimum of 0 and updates the line item in
// place, keeping its position. A clamped value of 0 removes the item.
func (c *Cart) SetQuantity(medicineID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		c.Remove(medicineID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == medicineID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// Total is recomputed on every call, never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.Items)
}

// Snapshot returns a copy of the line items so callers can iterate without
// holding the store lock.
func (c *Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}

type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

type AddCartItemRequest struct {
	MedicineID string `json:"medicine_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
