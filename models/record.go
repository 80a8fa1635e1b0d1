package models

type MedicalRecord struct {
	ID          int    `json:"id"`
	Patient     int    `json:"patient,omitempty"`
	PatientName string `json:"patient_name,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
}

type CreateRecordRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type"`
}
