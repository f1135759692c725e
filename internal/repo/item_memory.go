package repo

import (
	"sort"
	"strings"

	"github.com/lendifyit/lendify-api/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
type InMemoryItemRepository struct {
	items  []models.Item
	nextID int
}

func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{nextID: 1}
}

func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *InMemoryItemRepository) GetByID(id int) (models.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Create(it models.Item) (models.Item, error) {
	it.ID = r.nextID
	r.nextID++
	r.items = append(r.items, it)
	return it, nil
}

func (r *InMemoryItemRepository) Update(it models.Item) (models.Item, error) {
	for i, existing := range r.items {
		if existing.ID == it.ID {
			r.items[i] = it
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Delete(id int) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryItemRepository) AdjustQuantity(id, delta int) (models.Item, error) {
	for i, it := range r.items {
		if it.ID == id {
			if it.Quantity+delta < 0 {
				return models.Item{}, ErrInvalidQuantityChange
			}
			r.items[i].Quantity += delta
			return r.items[i], nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Clear() {
	r.items = nil
	r.nextID = 1
}
