package catalog

import (
	"context"
	"fmt"

	catalogRepo "glowbook/database/repository/catalog"
	"glowbook/models"
)

// Fallback counters shown before the stats collection is seeded.
const (
	defaultTotalServices  = 150
	defaultTotalProviders = 500
	defaultTotalBookings  = 2500
)

// CatalogService serves the static reference data behind the marketing and
// browse pages.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetStats(ctx context.Context) (models.MarketStats, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
}

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories()
}

func (s *DefaultCatalogService) GetStats(ctx context.Context) (models.MarketStats, error) {
	values, err := s.Repo.GetStatValues()
	if err != nil {
		return models.MarketStats{}, fmt.Errorf("get stats: %w", err)
	}
	return models.MarketStats{
		TotalServices:  statOrDefault(values, models.StatTotalServices, defaultTotalServices),
		TotalProviders: statOrDefault(values, models.StatTotalProviders, defaultTotalProviders),
		TotalBookings:  statOrDefault(values, models.StatTotalBookings, defaultTotalBookings),
	}, nil
}

func (s *DefaultCatalogService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return s.Repo.ListPlans()
}

func statOrDefault(values map[string]int64, key string, fallback int64) int64 {
	if v, ok := values[key]; ok && v > 0 {
		return v
	}
	return fallback
}
