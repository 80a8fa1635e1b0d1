package clients

import (
	"context"
	"fmt"
	"net/http"

	"clinic-portal/models"
)

func (c *Client) CreateLabTest(ctx context.Context, token string, req models.CreateLabTestRequest) (models.LaboratoryTest, error) {
	var test models.LaboratoryTest
	if err := c.do(ctx, http.MethodPost, "/laboratory-tests/", token, nil, req, &test); err != nil {
		return models.LaboratoryTest{}, err
	}
	return test, nil
}

func (c *Client) ListLabTests(ctx context.Context, token string) ([]models.LaboratoryTest, error) {
	var tests []models.LaboratoryTest
	if err := c.do(ctx, http.MethodGet, "/laboratory-tests/", token, nil, nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (c *Client) UpdateLabTest(ctx context.Context, token string, id int, fields map[string]interface{}) (models.LaboratoryTest, error) {
	var test models.LaboratoryTest
	path := fmt.Sprintf("/laboratory-tests/%d/", id)
	if err := c.do(ctx, http.MethodPatch, path, token, nil, fields, &test); err != nil {
		return models.LaboratoryTest{}, err
	}
	return test, nil
}

func (c *Client) CancelLabTest(ctx context.Context, token string, id int) (models.LaboratoryTest, error) {
	return c.UpdateLabTest(ctx, token, id, map[string]interface{}{
		"status": models.BookingStatusCancelled,
	})
}
