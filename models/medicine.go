package models

type Medicine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

type MedicineFilter struct {
	Category string
	Search   string
	MinPrice float64
	MaxPrice float64
	InStock  *bool
}
