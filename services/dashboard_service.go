package services

import (
	"context"

	"clinic-portal/config"
	"clinic-portal/models"
)

type DashboardData struct {
	UpcomingAppointments []models.Appointment    `json:"upcoming_appointments"`
	UpcomingLabTests     []models.LaboratoryTest `json:"upcoming_lab_tests"`
	RecentOrders         []models.PharmacyOrder  `json:"recent_orders"`
	RecordCount          int                     `json:"record_count"`
}

// DashboardService assembles the patient's home view from the backend. Each
// section degrades to empty on its own upstream failure instead of failing
// the whole dashboard.
type DashboardService struct {
	appointments AppointmentAPI
	labTests     LabTestAPI
	orders       OrderAPI
	records      RecordAPI
}

func NewDashboardService(appointments AppointmentAPI, labTests LabTestAPI, orders OrderAPI, records RecordAPI) *DashboardService {
	return &DashboardService{
		appointments: appointments,
		labTests:     labTests,
		orders:       orders,
		records:      records,
	}
}

const recentOrderLimit = 5

func (s *DashboardService) Load(ctx context.Context, session *models.Session) DashboardData {
	data := DashboardData{
		UpcomingAppointments: []models.Appointment{},
		UpcomingLabTests:     []models.LaboratoryTest{},
		RecentOrders:         []models.PharmacyOrder{},
	}
	token := session.AccessToken

	appts, err := s.appointments.ListAppointments(ctx, token)
	if err != nil {
		config.Log.Warn("Dashboard: appointments unavailable", config.Field("error", err.Error()))
	}
	for _, a := range appts {
		if !a.IsPast && a.Status != models.BookingStatusCancelled {
			data.UpcomingAppointments = append(data.UpcomingAppointments, a)
		}
	}

	tests, err := s.labTests.ListLabTests(ctx, token)
	if err != nil {
		config.Log.Warn("Dashboard: lab tests unavailable", config.Field("error", err.Error()))
	}
	for _, t := range tests {
		if !t.IsPast && t.Status != models.BookingStatusCancelled {
			data.UpcomingLabTests = append(data.UpcomingLabTests, t)
		}
	}

	orders, err := s.orders.ListOrders(ctx, token)
	if err != nil {
		config.Log.Warn("Dashboard: orders unavailable", config.Field("error", err.Error()))
	}
	for i, o := range orders {
		if i >= recentOrderLimit {
			break
		}
		data.RecentOrders = append(data.RecentOrders, o)
	}

	records, err := s.records.ListRecords(ctx, token)
	if err != nil {
		config.Log.Warn("Dashboard: records unavailable", config.Field("error", err.Error()))
	}
	data.RecordCount = len(records)

	return data
}
