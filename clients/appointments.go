package clients

import (
	"context"
	"fmt"
	"net/http"

	"clinic-portal/models"
)

func (c *Client) CreateAppointment(ctx context.Context, token string, req models.CreateAppointmentRequest) (models.Appointment, error) {
	var appt models.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments/", token, nil, req, &appt); err != nil {
		return models.Appointment{}, err
	}
	return appt, nil
}

func (c *Client) ListAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments/", token, nil, nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, token string, id int, fields map[string]interface{}) (models.Appointment, error) {
	var appt models.Appointment
	path := fmt.Sprintf("/appointments/%d/", id)
	if err := c.do(ctx, http.MethodPatch, path, token, nil, fields, &appt); err != nil {
		return models.Appointment{}, err
	}
	return appt, nil
}

func (c *Client) CancelAppointment(ctx context.Context, token string, id int) (models.Appointment, error) {
	return c.UpdateAppointment(ctx, token, id, map[string]interface{}{
		"status": models.BookingStatusCancelled,
	})
}
