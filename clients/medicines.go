package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"clinic-portal/models"
)

func (c *Client) ListMedicines(ctx context.Context, filter models.MedicineFilter) ([]models.Medicine, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.MinPrice > 0 {
		query.Set("min_price", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	if filter.InStock != nil {
		query.Set("in_stock", strconv.FormatBool(*filter.InStock))
	}

	var medicines []models.Medicine
	if err := c.do(ctx, http.MethodGet, "/medicines/", "", query, nil, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (c *Client) GetMedicine(ctx context.Context, id string) (models.Medicine, error) {
	var medicine models.Medicine
	path := fmt.Sprintf("/medicines/%s/", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, "", nil, nil, &medicine); err != nil {
		return models.Medicine{}, err
	}
	return medicine, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/medicines/categories/", "", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
