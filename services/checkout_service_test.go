package services

import (
	"context"
	"errors"
	"testing"

	"clinic-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderCreator struct {
	requests []models.CreateOrderRequest
	failAt   int // 1-based call index to fail on; 0 = never
	err      error
	nextID   int
}

func (f *fakeOrderCreator) CreateOrder(_ context.Context, _ string, req models.CreateOrderRequest) (models.PharmacyOrder, error) {
	f.requests = append(f.requests, req)
	if f.failAt > 0 && len(f.requests) == f.failAt {
		return models.PharmacyOrder{}, f.err
	}
	f.nextID++
	return models.PharmacyOrder{
		ID:           f.nextID,
		PatientID:    req.PatientID,
		MedicineName: req.MedicineName,
		Quantity:     req.Quantity,
		TotalAmount:  req.TotalAmount,
		Status:       models.OrderStatusPending,
	}, nil
}

func checkoutFixture(failAt int, err error) (*CheckoutService, *fakeOrderCreator, *CartStore) {
	orders := &fakeOrderCreator{failAt: failAt, err: err}
	carts := NewCartStore()
	return NewCheckoutService(orders, carts, nil), orders, carts
}

func patientSession() *models.Session {
	return &models.Session{
		ID:          "sess-1",
		UserID:      "patient-1",
		Name:        "Asha",
		Role:        models.RolePatient,
		AccessToken: "backend-access-token",
	}
}

func TestCheckoutCreatesOneOrderPerLineItem(t *testing.T) {
	svc, orders, carts := checkoutFixture(0, nil)
	carts.Add("cart-1", testMed("m1", 50))
	carts.Add("cart-1", testMed("m1", 50))
	carts.Add("cart-1", testMed("m2", 80))

	result, err := svc.Submit(context.Background(), patientSession(), "cart-1")

	require.NoError(t, err)
	assert.Equal(t, 2, result.OrdersCreated)
	assert.Equal(t, 180.0, result.TotalAmount)

	require.Len(t, orders.requests, 2)
	assert.Equal(t, "Med m1", orders.requests[0].MedicineName)
	assert.Equal(t, 2, orders.requests[0].Quantity)
	assert.Equal(t, 100.0, orders.requests[0].TotalAmount)
	assert.Equal(t, "Med m2", orders.requests[1].MedicineName)
	assert.Equal(t, "patient-1", orders.requests[1].PatientID)

	// Full success empties the cart.
	assert.Empty(t, carts.Get("cart-1").Items)
}

func TestCheckoutAbortsOnFirstFailure(t *testing.T) {
	backendErr := errors.New("stock ran out")
	svc, orders, carts := checkoutFixture(2, backendErr)
	carts.Add("cart-1", testMed("m1", 50))
	carts.Add("cart-1", testMed("m2", 80))
	carts.Add("cart-1", testMed("m3", 120))

	result, err := svc.Submit(context.Background(), patientSession(), "cart-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)

	// First order went through, third was never attempted.
	assert.Equal(t, 1, result.OrdersCreated)
	assert.Equal(t, 50.0, result.TotalAmount)
	require.Len(t, orders.requests, 2)

	// The cart stays intact so the user can retry.
	assert.Len(t, carts.Get("cart-1").Items, 3)
}

func TestCheckoutRequiresSession(t *testing.T) {
	svc, orders, carts := checkoutFixture(0, nil)
	carts.Add("cart-1", testMed("m1", 50))

	_, err := svc.Submit(context.Background(), nil, "cart-1")
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = svc.Submit(context.Background(), &models.Session{}, "cart-1")
	assert.ErrorIs(t, err, ErrLoginRequired)

	// No backend call may happen without a session.
	assert.Empty(t, orders.requests)
	assert.Len(t, carts.Get("cart-1").Items, 1)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, orders, _ := checkoutFixture(0, nil)

	_, err := svc.Submit(context.Background(), patientSession(), "cart-1")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.requests)
}

func TestCheckoutSendsBackendToken(t *testing.T) {
	orders := &tokenRecordingCreator{}
	carts := NewCartStore()
	svc := NewCheckoutService(orders, carts, nil)
	carts.Add("cart-1", testMed("m1", 50))

	_, err := svc.Submit(context.Background(), patientSession(), "cart-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"backend-access-token"}, orders.tokens)
}

type tokenRecordingCreator struct {
	tokens []string
}

func (f *tokenRecordingCreator) CreateOrder(_ context.Context, token string, req models.CreateOrderRequest) (models.PharmacyOrder, error) {
	f.tokens = append(f.tokens, token)
	return models.PharmacyOrder{ID: 1, MedicineName: req.MedicineName}, nil
}
