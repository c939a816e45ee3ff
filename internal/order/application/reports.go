package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
)

// Reporting passthroughs over the order log. The log serialises its own
// reads, so no session lock is taken here.

func (s *Service) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	return s.orders.TotalSales(ctx)
}

func (s *Service) SalesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return s.orders.SalesBetween(ctx, from, to)
}

func (s *Service) TodaysOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.OrdersOn(ctx, s.now())
}

func (s *Service) OrdersByMember(ctx context.Context, memberID string) ([]*domain.Order, error) {
	return s.orders.OrdersByMember(ctx, memberID)
}

func (s *Service) PopularItems(ctx context.Context, top int) ([]ItemSales, error) {
	return s.orders.PopularItems(ctx, top)
}
