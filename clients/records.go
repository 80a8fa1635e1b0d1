package clients

import (
	"context"
	"fmt"
	"net/http"

	"clinic-portal/models"
)

func (c *Client) CreateRecord(ctx context.Context, token string, req models.CreateRecordRequest) (models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := c.do(ctx, http.MethodPost, "/medical-records/", token, nil, req, &record); err != nil {
		return models.MedicalRecord{}, err
	}
	return record, nil
}

func (c *Client) ListRecords(ctx context.Context, token string) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	if err := c.do(ctx, http.MethodGet, "/medical-records/", token, nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) GetRecord(ctx context.Context, token string, id int) (models.MedicalRecord, error) {
	var record models.MedicalRecord
	path := fmt.Sprintf("/medical-records/%d/", id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &record); err != nil {
		return models.MedicalRecord{}, err
	}
	return record, nil
}

func (c *Client) DeleteRecord(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/medical-records/%d/", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil)
}
