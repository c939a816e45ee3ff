package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrItemNotFound = errors.New("menu item not found")

// MenuItem is one entry of the fixed menu. Immutable once seeded.
type MenuItem struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string
	Description string
}
