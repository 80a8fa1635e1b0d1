package models

type LaboratoryTest struct {
	ID              int    `json:"id"`
	TestName        string `json:"test_name"`
	TestDescription string `json:"test_description"`
	TestDate        string `json:"test_date"`
	TestTime        string `json:"test_time"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	IsPast          bool   `json:"is_past"`
	PatientName     string `json:"patient_name,omitempty"`
}

type CreateLabTestRequest struct {
	TestName        string `json:"test_name" binding:"required"`
	TestDescription string `json:"test_description" binding:"omitempty"`
	TestDate        string `json:"test_date" binding:"required"`
	TestTime        string `json:"test_time" binding:"required"`
	Notes           string `json:"notes" binding:"omitempty"`
}
