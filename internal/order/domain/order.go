package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	catalog "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
	member "github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrOrderNotFound   = errors.New("order not found")
)

// Order is the cart for one in-progress transaction. Every mutation
// reprices the whole cart, so the derived totals are never stale between
// calls. An Order is confined to one checkout session and is not safe
// for concurrent use.
type Order struct {
	id        string
	lines     []LineItem
	member    *member.Member
	dineIn    bool
	createdAt time.Time
	rules     Rules
	now       func() time.Time
	quote     Quote
}

// NewOrder opens an empty order. An empty id gets a timestamp-seeded
// fallback for carts opened outside the order-log sequence. A nil clock
// defaults to wall time.
func NewOrder(id string, rules Rules, now func() time.Time) *Order {
	if now == nil {
		now = time.Now
	}
	if id == "" {
		id = fmt.Sprintf("ORD%d", now().UnixMilli())
	}
	o := &Order{
		id:        id,
		rules:     rules,
		now:       now,
		createdAt: now(),
	}
	o.reprice()
	return o
}

// AddItem puts quantity units of the item in the cart, merging into an
// existing line for the same item id. The order is left untouched when
// the quantity is not positive.
func (o *Order) AddItem(item catalog.MenuItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range o.lines {
		if o.lines[i].Item.ID == item.ID {
			o.lines[i].Quantity += quantity
			o.reprice()
			return nil
		}
	}
	o.lines = append(o.lines, LineItem{Item: item, Quantity: quantity})
	o.reprice()
	return nil
}

// RemoveItem drops every line referencing the item. Removing an absent
// item is a no-op, not an error.
func (o *Order) RemoveItem(item catalog.MenuItem) {
	kept := o.lines[:0]
	for _, line := range o.lines {
		if line.Item.ID != item.ID {
			kept = append(kept, line)
		}
	}
	o.lines = kept
	o.reprice()
}

// RemoveItemQuantity decrements the matching line by quantity, dropping
// the line when nothing remains. No-op if the item is absent.
func (o *Order) RemoveItemQuantity(item catalog.MenuItem, quantity int) {
	for i := range o.lines {
		if o.lines[i].Item.ID != item.ID {
			continue
		}
		o.lines[i].Quantity -= quantity
		if o.lines[i].Quantity <= 0 {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
		}
		o.reprice()
		return
	}
}

// Clear empties the cart and zeroes every derived total.
func (o *Order) Clear() {
	o.lines = nil
	o.reprice()
}

// SetMember replaces the attached member reference. The order borrows
// the record and does not re-validate it; discount eligibility reflects
// the new member immediately.
func (o *Order) SetMember(m *member.Member) {
	o.member = m
	o.reprice()
}

// SetDineIn is metadata only and does not affect pricing.
func (o *Order) SetDineIn(dineIn bool) { o.dineIn = dineIn }

func (o *Order) ID() string                    { return o.id }
func (o *Order) Member() *member.Member        { return o.member }
func (o *Order) DineIn() bool                  { return o.dineIn }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) IsEmpty() bool                 { return len(o.lines) == 0 }
func (o *Order) Quote() Quote                  { return o.quote }
func (o *Order) Subtotal() decimal.Decimal     { return o.quote.Subtotal }
func (o *Order) TotalSavings() decimal.Decimal { return o.quote.Savings }
func (o *Order) TotalPrice() decimal.Decimal   { return o.quote.Total }
func (o *Order) HasFreeWednesdayPizza() bool   { return o.quote.FreeWednesdayPizza }

// Lines returns a copy of the cart's lines in insertion order.
func (o *Order) Lines() []LineItem {
	out := make([]LineItem, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) reprice() {
	o.quote = Price(o.lines, o.member, o.now(), o.rules)
}

// Summary renders the receipt text: id, line breakdown, subtotal, one
// line per applied discount with its rate, and the payable total.
func (o *Order) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s\n", o.id)
	b.WriteString("Items:\n")
	for _, line := range o.lines {
		fmt.Fprintf(&b, "- %s x%d = ฿%s\n", line.Item.Name, line.Quantity, line.Total().StringFixed(2))
	}
	fmt.Fprintf(&b, "Subtotal: ฿%s\n", o.quote.Subtotal.StringFixed(2))
	if o.quote.FreeWednesdayPizza {
		fmt.Fprintf(&b, "Wednesday free pizza: -฿%s\n", o.quote.WednesdayDiscount.StringFixed(2))
	}
	if o.quote.MemberDiscount.IsPositive() {
		rate := o.quote.MemberRate.Mul(decimal.NewFromInt(100))
		fmt.Fprintf(&b, "Member discount (%s%%): -฿%s\n", rate.StringFixed(0), o.quote.MemberDiscount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: ฿%s", o.quote.Total.StringFixed(2))
	if o.quote.Savings.IsPositive() {
		fmt.Fprintf(&b, "\nSavings: ฿%s", o.quote.Savings.StringFixed(2))
	}
	return b.String()
}
