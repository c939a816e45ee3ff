package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
)

// Repository is the in-process menu catalog. Items never change after
// construction, so reads need no locking.
type Repository struct {
	items []domain.MenuItem
	byID  map[string]domain.MenuItem
}

func NewRepository(items []domain.MenuItem) *Repository {
	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Repository{items: items, byID: byID}
}

func (r *Repository) FindItemByID(ctx context.Context, id string) (domain.MenuItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrItemNotFound
	}
	return item, nil
}

func (r *Repository) AllItems(ctx context.Context) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Seed returns the reference menu loaded at process start.
func Seed() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "P001", Name: "Margherita Pizza", Price: decimal.NewFromFloat(1000.0), Category: "Pizza", Description: "Classic tomato and mozzarella"},
		{ID: "P002", Name: "Pepperoni Pizza", Price: decimal.NewFromFloat(359.0), Category: "Pizza", Description: "Pepperoni with mozzarella cheese"},
		{ID: "P003", Name: "Hawaiian Pizza", Price: decimal.NewFromFloat(379.0), Category: "Pizza", Description: "Ham and pineapple"},
		{ID: "P004", Name: "พิซซ่าเรดฮาวายเอี้ยน", Price: decimal.NewFromFloat(128.0), Category: "Pizza", Description: "Red Hawaiian pizza"},
		{ID: "D001", Name: "Coke", Price: decimal.NewFromFloat(45.0), Category: "Drink", Description: "Coca Cola 330ml"},
		{ID: "D002", Name: "Orange Juice", Price: decimal.NewFromFloat(55.0), Category: "Drink", Description: "Fresh orange juice"},
	}
}
