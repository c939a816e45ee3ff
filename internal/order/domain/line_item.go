package domain

import (
	"github.com/shopspring/decimal"
	catalog "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
)

// LineItem is one (menu item, quantity) pair inside an order. Lines are
// owned by their order; adding the same item again merges into the
// existing line instead of duplicating it.
type LineItem struct {
	Item     catalog.MenuItem
	Quantity int
}

// Total is the line's price before any discount.
func (l LineItem) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
