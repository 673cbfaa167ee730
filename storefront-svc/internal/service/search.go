package service

import (
	"strings"

	"storefront/storefront-svc/internal/domain"
)

// FilterCatalog keeps the records whose name contains query, ignoring case.
// A blank query returns the input slices themselves.
func FilterCatalog(query string, restaurants []domain.Restaurant, dishes []domain.Dish) ([]domain.Restaurant, []domain.Dish) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return restaurants, dishes
	}

	matchedRestaurants := []domain.Restaurant{}
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matchedRestaurants = append(matchedRestaurants, r)
		}
	}

	matchedDishes := []domain.Dish{}
	for _, d := range dishes {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			matchedDishes = append(matchedDishes, d)
		}
	}

	return matchedRestaurants, matchedDishes
}

func NoResults(query string, restaurants []domain.Restaurant, dishes []domain.Dish) bool {
	return strings.TrimSpace(query) != "" && len(restaurants) == 0 && len(dishes) == 0
}
