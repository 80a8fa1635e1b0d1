package services

import (
	"context"
	"errors"
	"time"

	"clinic-portal/config"
	"clinic-portal/models"
)

type AppointmentAPI interface {
	CreateAppointment(ctx context.Context, token string, req models.CreateAppointmentRequest) (models.Appointment, error)
	ListAppointments(ctx context.Context, token string) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, token string, id int) (models.Appointment, error)
}

type AppointmentService struct {
	api    AppointmentAPI
	mailer *models.EmailService
}

func NewAppointmentService(api AppointmentAPI, mailer *models.EmailService) *AppointmentService {
	return &AppointmentService{api: api, mailer: mailer}
}

func validateSchedule(date, timeOfDay string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return errors.New("time must be in HH:MM format")
	}
	return nil
}

func (s *AppointmentService) Book(ctx context.Context, session *models.Session, req models.CreateAppointmentRequest) (models.Appointment, error) {
	if err := validateSchedule(req.AppointmentDate, req.AppointmentTime); err != nil {
		return models.Appointment{}, err
	}

	appt, err := s.api.CreateAppointment(ctx, session.AccessToken, req)
	if err != nil {
		return models.Appointment{}, err
	}

	// Confirmation is best-effort; the booking stands either way.
	if s.mailer != nil && session.Email != "" {
		if err := s.mailer.SendBookingConfirmation(session.Email, session.Name,
			"appointment with "+appt.DoctorName, appt.AppointmentDate, appt.AppointmentTime); err != nil {
			config.Log.Warn("Booking confirmation email failed",
				config.Field("error", err.Error()))
		}
	}

	return appt, nil
}

func (s *AppointmentService) List(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	return s.api.ListAppointments(ctx, session.AccessToken)
}

func (s *AppointmentService) Cancel(ctx context.Context, session *models.Session, id int) (models.Appointment, error) {
	return s.api.CancelAppointment(ctx, session.AccessToken, id)
}
