package services

import (
	"context"

	"clinic-portal/config"
	"clinic-portal/models"
)

type LabTestAPI interface {
	CreateLabTest(ctx context.Context, token string, req models.CreateLabTestRequest) (models.LaboratoryTest, error)
	ListLabTests(ctx context.Context, token string) ([]models.LaboratoryTest, error)
	CancelLabTest(ctx context.Context, token string, id int) (models.LaboratoryTest, error)
}

type LabTestService struct {
	api    LabTestAPI
	mailer *models.EmailService
}

func NewLabTestService(api LabTestAPI, mailer *models.EmailService) *LabTestService {
	return &LabTestService{api: api, mailer: mailer}
}

func (s *LabTestService) Book(ctx context.Context, session *models.Session, req models.CreateLabTestRequest) (models.LaboratoryTest, error) {
	if err := validateSchedule(req.TestDate, req.TestTime); err != nil {
		return models.LaboratoryTest{}, err
	}

	test, err := s.api.CreateLabTest(ctx, session.AccessToken, req)
	if err != nil {
		return models.LaboratoryTest{}, err
	}

	if s.mailer != nil && session.Email != "" {
		if err := s.mailer.SendBookingConfirmation(session.Email, session.Name,
			test.TestName, test.TestDate, test.TestTime); err != nil {
			config.Log.Warn("Booking confirmation email failed",
				config.Field("error", err.Error()))
		}
	}

	return test, nil
}

func (s *LabTestService) List(ctx context.Context, session *models.Session) ([]models.LaboratoryTest, error) {
	return s.api.ListLabTests(ctx, session.AccessToken)
}

func (s *LabTestService) Cancel(ctx context.Context, session *models.Session, id int) (models.LaboratoryTest, error) {
	return s.api.CancelLabTest(ctx, session.AccessToken, id)
}
