package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func med(id, name string, price float64) Medicine {
	return Medicine{ID: id, Name: name, Price: price, Stock: 10}
}

func TestCartAddNewItem(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "m1", cart.Items[0].ID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartAddSameMedicineMerges(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m1", "Paracetamol", 50))

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m2", "Ibuprofen", 80))
	cart.Add(med("m3", "Cetirizine", 30))
	// Re-adding m1 must not move it to the back.
	cart.Add(med("m1", "Paracetamol", 50))

	require.Equal(t, 3, cart.Len())
	assert.Equal(t, "m1", cart.Items[0].ID)
	assert.Equal(t, "m2", cart.Items[1].ID)
	assert.Equal(t, "m3", cart.Items[2].ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m2", "Ibuprofen", 80))

	cart.Remove("m1")

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "m2", cart.Items[0].ID)
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))

	cart.Remove("nope")

	assert.Equal(t, 1, cart.Len())
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m2", "Ibuprofen", 80))

	cart.SetQuantity("m1", 5)

	require.Equal(t, 2, cart.Len())
	assert.Equal(t, 5, cart.Items[0].Quantity)
	// Position must not change on a quantity update.
	assert.Equal(t, "m1", cart.Items[0].ID)
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m2", "Ibuprofen", 80))

	cart.SetQuantity("m1", 0)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "m2", cart.Items[0].ID)
}

func TestCartSetQuantityNegativeClampsToRemoval(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))

	cart.SetQuantity("m1", -3)

	assert.Equal(t, 0, cart.Len())
}

func TestCartSetQuantityAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))

	cart.SetQuantity("ghost", 4)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0.0, cart.Total())

	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m2", "Ibuprofen", 80))
	assert.Equal(t, 180.0, cart.Total())

	cart.SetQuantity("m2", 3)
	assert.Equal(t, 340.0, cart.Total())

	cart.Remove("m1")
	assert.Equal(t, 240.0, cart.Total())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m2", "Ibuprofen", 80))

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartSnapshotIsACopy(t *testing.T) {
	cart := NewCart()
	cart.Add(med("m1", "Paracetamol", 50))

	snap := cart.Snapshot()
	cart.SetQuantity("m1", 9)

	require.Len(t, snap, 1)
	assert.Equal(t, 1, snap[0].Quantity)
}

// Mirrors a typical browsing session end to end.
func TestCartShoppingScenario(t *testing.T) {
	cart := NewCart()

	cart.Add(med("m1", "Paracetamol", 50))
	cart.Add(med("m2", "Ibuprofen", 80))
	cart.Add(med("m1", "Paracetamol", 50))
	cart.SetQuantity("m2", 2)
	cart.Add(med("m3", "Vitamin C", 120))
	cart.Remove("m1")

	require.Equal(t, 2, cart.Len())
	assert.Equal(t, "m2", cart.Items[0].ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "m3", cart.Items[1].ID)
	assert.Equal(t, 280.0, cart.Total())
}
