package catalogRepo

import "glowbook/models"

// CatalogRepository defines read access to the static reference collections
// backing the marketing and browse pages.
type CatalogRepository interface {
	// ListCategories retrieves all categories.
	ListCategories() ([]models.Category, error)
	// GetStatValues retrieves the marketing counters keyed by stat name.
	GetStatValues() (map[string]int64, error)
	// ListPlans retrieves all subscription plans.
	ListPlans() ([]models.Plan, error)
}
