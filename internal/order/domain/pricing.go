package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	member "github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
)

// Quote is the priced projection of a cart at one instant. All amounts
// are exact decimals; rounding to two places happens only at display.
type Quote struct {
	Subtotal           decimal.Decimal
	WednesdayDiscount  decimal.Decimal
	MemberDiscount     decimal.Decimal
	MemberRate         decimal.Decimal
	Savings            decimal.Decimal
	Total              decimal.Decimal
	FreeWednesdayPizza bool
}

// Price computes the payable total for the given lines, optional member
// and instant. It is a pure function: no promotion state is carried
// between calls.
//
// Discounts stack sequentially. The Wednesday free-pizza deduction comes
// off the subtotal first; the member rate then applies to what remains.
func Price(lines []LineItem, m *member.Member, at time.Time, rules Rules) Quote {
	q := Quote{
		Subtotal:          decimal.Zero,
		WednesdayDiscount: decimal.Zero,
		MemberDiscount:    decimal.Zero,
		MemberRate:        decimal.Zero,
		Savings:           decimal.Zero,
		Total:             decimal.Zero,
	}

	for _, line := range lines {
		q.Subtotal = q.Subtotal.Add(line.Total())
	}
	q.Total = q.Subtotal

	if discount := wednesdayDiscount(lines, q.Subtotal, at, rules); discount.IsPositive() {
		q.WednesdayDiscount = discount
		q.FreeWednesdayPizza = true
		q.Total = q.Total.Sub(discount)
	}

	// The order trusts whoever attached the member: expired or inactive
	// members still get the rate here. Eligibility is gated where the
	// member is attached, not re-checked per quote.
	if m != nil && q.Total.IsPositive() {
		q.MemberRate = rules.MemberRate
		if m.IsBirthday(at) {
			q.MemberRate = rules.BirthdayRate
		}
		q.MemberDiscount = q.Total.Mul(q.MemberRate)
		q.Total = q.Total.Sub(q.MemberDiscount)
	}

	q.Savings = q.WednesdayDiscount.Add(q.MemberDiscount)
	return q
}

// wednesdayDiscount is the unit price of the first promotional line in
// the cart, when the weekday and minimum-subtotal conditions hold. One
// free unit per order, never multiplied by quantity.
func wednesdayDiscount(lines []LineItem, subtotal decimal.Decimal, at time.Time, rules Rules) decimal.Decimal {
	if at.Weekday() != time.Wednesday || subtotal.LessThan(rules.PromoMinSubtotal) {
		return decimal.Zero
	}
	for _, line := range lines {
		if strings.EqualFold(line.Item.Name, rules.PromoItemName) {
			return line.Item.Price
		}
	}
	return decimal.Zero
}
