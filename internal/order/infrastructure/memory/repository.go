package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/application"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
)

// Repository is the in-memory order log for the process lifetime. A
// single mutex serialises saves so the order-id-uniqueness invariant
// holds across sessions.
type Repository struct {
	mu     sync.Mutex
	orders []*domain.Order
	byID   map[string]*domain.Order
	nextID int
}

func NewRepository() *Repository {
	return &Repository{
		byID:   make(map[string]*domain.Order),
		nextID: 1,
	}
}

// Save appends a finalized order. Saving an id already in the log is a
// no-op.
func (r *Repository) Save(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[o.ID()]; ok {
		return nil
	}
	r.byID[o.ID()] = o
	r.orders = append(r.orders, o)
	return nil
}

func (r *Repository) NextOrderID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("ORD%06d", r.nextID)
	r.nextID++
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *Repository) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := decimal.Zero
	for _, o := range r.orders {
		total = total.Add(o.TotalPrice())
	}
	return total, nil
}

func (r *Repository) SalesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := decimal.Zero
	for _, o := range r.orders {
		day := dateOf(o.CreatedAt())
		if day.Before(dateOf(from)) || day.After(dateOf(to)) {
			continue
		}
		total = total.Add(o.TotalPrice())
	}
	return total, nil
}

func (r *Repository) OrdersOn(ctx context.Context, day time.Time) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Order
	for _, o := range r.orders {
		if dateOf(o.CreatedAt()).Equal(dateOf(day)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *Repository) OrdersByMember(ctx context.Context, memberID string) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Order
	for _, o := range r.orders {
		if m := o.Member(); m != nil && m.ID == memberID {
			out = append(out, o)
		}
	}
	return out, nil
}

// PopularItems ranks menu items by total quantity sold across the log.
func (r *Repository) PopularItems(ctx context.Context, top int) ([]application.ItemSales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]*application.ItemSales)
	for _, o := range r.orders {
		for _, line := range o.Lines() {
			row, ok := counts[line.Item.ID]
			if !ok {
				row = &application.ItemSales{Item: line.Item}
				counts[line.Item.ID] = row
			}
			row.Quantity += line.Quantity
		}
	}

	rows := make([]application.ItemSales, 0, len(counts))
	for _, row := range counts {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].Item.ID < rows[j].Item.ID
	})
	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}
	return rows, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
