package repo

import (
	"sort"
	"strings"

	"github.com/lendifyit/lendify-api/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository used by the test suites.
type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{nextID: 1}
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *InMemoryCategoryRepository) Create(c models.Category) (models.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) Delete(id int) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = nil
	r.nextID = 1
}
