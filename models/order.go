package models

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// PharmacyOrder mirrors the backend's order resource. The backend does not
// support multi-line orders, so checkout creates one of these per cart item.
type PharmacyOrder struct {
	ID              int     `json:"id"`
	PatientID       string  `json:"patient_id"`
	Patient         string  `json:"patient,omitempty"`
	MedicineName    string  `json:"medicine_name"`
	Quantity        int     `json:"quantity"`
	PricePerUnit    float64 `json:"price_per_unit"`
	MedicineImage   string  `json:"medicine_image,omitempty"`
	TotalAmount     float64 `json:"total_amount"`
	OrderDate       string  `json:"order_date,omitempty"`
	Status          string  `json:"status"`
	DeliveryAddress string  `json:"delivery_address,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	PaymentStatus   string  `json:"payment_status,omitempty"`
}

type CreateOrderRequest struct {
	PatientID     string  `json:"patient_id"`
	MedicineName  string  `json:"medicine_name"`
	Quantity      int     `json:"quantity"`
	PricePerUnit  float64 `json:"price_per_unit"`
	MedicineImage string  `json:"medicine_image,omitempty"`
	TotalAmount   float64 `json:"total_amount"`
}
