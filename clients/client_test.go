package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 5*time.Second), server
}

func TestCreateOrder(t *testing.T) {
	var gotAuth string
	var gotBody models.CreateOrderRequest

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/pharmacy-orders/", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.PharmacyOrder{
			ID:           7,
			MedicineName: gotBody.MedicineName,
			Quantity:     gotBody.Quantity,
			TotalAmount:  gotBody.TotalAmount,
			Status:       models.OrderStatusPending,
		})
	})
	defer server.Close()

	order, err := client.CreateOrder(context.Background(), "token-123", models.CreateOrderRequest{
		PatientID:    "patient-1",
		MedicineName: "Paracetamol",
		Quantity:     2,
		PricePerUnit: 50,
		TotalAmount:  100,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "Paracetamol", gotBody.MedicineName)
}

func TestCreateOrderValidationError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "quantity must be positive"}`))
	})
	defer server.Close()

	_, err := client.CreateOrder(context.Background(), "token", models.CreateOrderRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "quantity must be positive", apiErr.Message)
}

func TestUnauthorizedResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer server.Close()

	_, err := client.ListOrders(context.Background(), "stale-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerErrorMapsToBackendUnavailable(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.ListOrders(context.Background(), "token")

	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestNetworkFailureMapsToBackendUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client := New(server.URL, time.Second)
	server.Close() // connection refused from here on

	_, err := client.ListOrders(context.Background(), "token")

	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestListMedicinesBuildsQuery(t *testing.T) {
	inStock := true
	var gotQuery map[string][]string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/medicines/", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Medicine{
			{ID: "m1", Name: "Paracetamol", Price: 50},
		})
	})
	defer server.Close()

	medicines, err := client.ListMedicines(context.Background(), models.MedicineFilter{
		Category: "painkillers",
		Search:   "para",
		MinPrice: 10,
		MaxPrice: 100,
		InStock:  &inStock,
	})

	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Equal(t, "m1", medicines[0].ID)

	assert.Equal(t, []string{"painkillers"}, gotQuery["category"])
	assert.Equal(t, []string{"para"}, gotQuery["search"])
	assert.Equal(t, []string{"10"}, gotQuery["min_price"])
	assert.Equal(t, []string{"100"}, gotQuery["max_price"])
	assert.Equal(t, []string{"true"}, gotQuery["in_stock"])
}

func TestCancelOrderPatchesStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotPatch map[string]string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPatch))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.PharmacyOrder{ID: 4, Status: models.OrderStatusCancelled})
	})
	defer server.Close()

	order, err := client.CancelOrder(context.Background(), "token", 4)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/pharmacy-orders/4/", gotPath)
	assert.Equal(t, map[string]string{"status": "cancelled"}, gotPatch)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
}

func TestAPIMessageFallbacks(t *testing.T) {
	assert.Equal(t, "boom", apiMessage([]byte(`{"detail": "boom"}`)))
	assert.Equal(t, "boom", apiMessage([]byte(`{"message": "boom"}`)))
	assert.Equal(t, "quantity: [must be positive]", apiMessage([]byte(`{"quantity": ["must be positive"]}`)))
	assert.Equal(t, "plain text", apiMessage([]byte("plain text")))
	assert.Equal(t, "request rejected", apiMessage(nil))
}
