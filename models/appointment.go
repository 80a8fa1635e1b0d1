package models

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Appointment struct {
	ID                   int    `json:"id"`
	DoctorName           string `json:"doctor_name"`
	DoctorSpecialization string `json:"doctor_specialization"`
	AppointmentDate      string `json:"appointment_date"`
	AppointmentTime      string `json:"appointment_time"`
	Status               string `json:"status"`
	Reason               string `json:"reason,omitempty"`
	Notes                string `json:"notes,omitempty"`
	IsPast               bool   `json:"is_past"`
	Patient              string `json:"patient,omitempty"`
}

type CreateAppointmentRequest struct {
	DoctorName           string `json:"doctor_name" binding:"required"`
	DoctorSpecialization string `json:"doctor_specialization" binding:"required"`
	AppointmentDate      string `json:"appointment_date" binding:"required"`
	AppointmentTime      string `json:"appointment_time" binding:"required"`
	Reason               string `json:"reason" binding:"omitempty"`
}
