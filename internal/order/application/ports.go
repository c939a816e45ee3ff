package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	catalog "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
	member "github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
)

type Catalog interface {
	FindItemByID(ctx context.Context, id string) (catalog.MenuItem, error)
}

type MemberDirectory interface {
	FindByPhone(ctx context.Context, phone string) (*member.Member, error)
}

// ItemSales is one row of the popular-items report.
type ItemSales struct {
	Item     catalog.MenuItem
	Quantity int
}

type OrderLog interface {
	// Save persists a finalized order. Re-saving an already-saved order
	// id is a no-op, not an error.
	Save(ctx context.Context, o *domain.Order) error
	NextOrderID(ctx context.Context) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	SalesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	OrdersOn(ctx context.Context, day time.Time) ([]*domain.Order, error)
	OrdersByMember(ctx context.Context, memberID string) ([]*domain.Order, error)
	PopularItems(ctx context.Context, top int) ([]ItemSales, error)
}
