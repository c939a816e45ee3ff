package application

import (
	"github.com/shopspring/decimal"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
)

// LineView is one cart line as shown to the presentation layer.
type LineView struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// Snapshot carries the derived state of a session's order. Amounts stay
// exact decimals; the presentation layer rounds to two places.
type Snapshot struct {
	SessionID          string
	OrderID            string
	DineIn             bool
	Empty              bool
	Lines              []LineView
	Subtotal           decimal.Decimal
	WednesdayDiscount  decimal.Decimal
	MemberDiscount     decimal.Decimal
	MemberRate         decimal.Decimal
	Savings            decimal.Decimal
	Total              decimal.Decimal
	FreeWednesdayPizza bool
	MemberID           string
	MemberName         string
	Summary            string
}

func snapshotOf(sessionID string, o *domain.Order) Snapshot {
	q := o.Quote()
	snap := Snapshot{
		SessionID:          sessionID,
		OrderID:            o.ID(),
		DineIn:             o.DineIn(),
		Empty:              o.IsEmpty(),
		Subtotal:           q.Subtotal,
		WednesdayDiscount:  q.WednesdayDiscount,
		MemberDiscount:     q.MemberDiscount,
		MemberRate:         q.MemberRate,
		Savings:            q.Savings,
		Total:              q.Total,
		FreeWednesdayPizza: q.FreeWednesdayPizza,
		Summary:            o.Summary(),
	}
	for _, line := range o.Lines() {
		snap.Lines = append(snap.Lines, LineView{
			ItemID:    line.Item.ID,
			Name:      line.Item.Name,
			UnitPrice: line.Item.Price,
			Quantity:  line.Quantity,
			LineTotal: line.Total(),
		})
	}
	if m := o.Member(); m != nil {
		snap.MemberID = m.ID
		snap.MemberName = m.Name
	}
	return snap
}
