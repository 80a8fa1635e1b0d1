package services

import (
	"context"
	"encoding/json"
	"fmt"

	"clinic-portal/config"
	"clinic-portal/models"
)

// MedicineCatalog is the backend's read-only medicine surface.
type MedicineCatalog interface {
	ListMedicines(ctx context.Context, filter models.MedicineFilter) ([]models.Medicine, error)
	GetMedicine(ctx context.Context, id string) (models.Medicine, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type MedicineService struct {
	api MedicineCatalog
}

func NewMedicineService(api MedicineCatalog) *MedicineService {
	return &MedicineService{api: api}
}

func listCacheKey(filter models.MedicineFilter) string {
	inStock := ""
	if filter.InStock != nil {
		inStock = fmt.Sprintf("%t", *filter.InStock)
	}
	return fmt.Sprintf("medicines_list_c%s_s%s_min%g_max%g_in%s",
		filter.Category, filter.Search, filter.MinPrice, filter.MaxPrice, inStock)
}

func (s *MedicineService) List(ctx context.Context, filter models.MedicineFilter) ([]models.Medicine, error) {
	cacheKey := listCacheKey(filter)

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var medicines []models.Medicine
			if json.Unmarshal([]byte(cached), &medicines) == nil {
				return medicines, nil
			}
		}
	}

	medicines, err := s.api.ListMedicines(ctx, filter)
	if err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		if payload, err := json.Marshal(medicines); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(payload), config.AppConfig.CacheTTL)
		}
	}

	return medicines, nil
}

func (s *MedicineService) GetByID(ctx context.Context, id string) (models.Medicine, error) {
	return s.api.GetMedicine(ctx, id)
}

func (s *MedicineService) Categories(ctx context.Context) ([]string, error) {
	const cacheKey = "medicines_categories"

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var categories []string
			if json.Unmarshal([]byte(cached), &categories) == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		if payload, err := json.Marshal(categories); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(payload), config.AppConfig.CacheTTL)
		}
	}

	return categories, nil
}
