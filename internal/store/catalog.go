package store

import (
	"strings"

	"github.com/onlinedrinkshop/backend/internal/model"
)

// CatalogStore holds the seeded categories, drinks and toppings. The
// catalog is immutable after construction, so reads need no locking.
// Absent results are empty slices or a false second return, never errors.
type CatalogStore struct {
	categories []model.Category
	drinks     []model.Drink
	toppings   []model.Topping
}

// NewCatalogStore builds a store from the seeded catalog data.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		categories: seedCategories(),
		drinks:     seedDrinks(),
		toppings:   seedToppings(),
	}
}

// Categories returns all categories in seed order.
func (s *CatalogStore) Categories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Drinks returns all drinks in seed order.
func (s *CatalogStore) Drinks() []model.Drink {
	out := make([]model.Drink, len(s.drinks))
	copy(out, s.drinks)
	return out
}

// Toppings returns all toppings in seed order.
func (s *CatalogStore) Toppings() []model.Topping {
	out := make([]model.Topping, len(s.toppings))
	copy(out, s.toppings)
	return out
}

// FindDrinkByID looks up a drink by id.
func (s *CatalogStore) FindDrinkByID(id uint64) (model.Drink, bool) {
	for _, d := range s.drinks {
		if d.ID == id {
			return d, true
		}
	}
	return model.Drink{}, false
}

// FindCategoryByID looks up a category by id.
func (s *CatalogStore) FindCategoryByID(id uint64) (model.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// FindToppingByID looks up a topping by id.
func (s *CatalogStore) FindToppingByID(id uint64) (model.Topping, bool) {
	for _, t := range s.toppings {
		if t.ID == id {
			return t, true
		}
	}
	return model.Topping{}, false
}

// DrinksByCategory returns the drinks of one category in seed order. An
// unknown category yields an empty slice.
func (s *CatalogStore) DrinksByCategory(categoryID uint64) []model.Drink {
	out := []model.Drink{}
	for _, d := range s.drinks {
		if d.CategoryID == categoryID {
			out = append(out, d)
		}
	}
	return out
}

// Popular returns the drinks flagged as popular, in seed order.
func (s *CatalogStore) Popular() []model.Drink {
	out := []model.Drink{}
	for _, d := range s.drinks {
		if d.IsPopular {
			out = append(out, d)
		}
	}
	return out
}

// Search returns every drink whose name or description contains the query,
// case-insensitively. An empty query matches everything.
func (s *CatalogStore) Search(query string) []model.Drink {
	q := strings.ToLower(query)
	out := []model.Drink{}
	for _, d := range s.drinks {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			out = append(out, d)
		}
	}
	return out
}
