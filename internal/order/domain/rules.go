package domain

import "github.com/shopspring/decimal"

// Rules holds the promotion parameters. The promotional item is matched
// by name so the shop can repoint the Wednesday deal without a rebuild.
type Rules struct {
	PromoItemName    string
	PromoMinSubtotal decimal.Decimal
	MemberRate       decimal.Decimal
	BirthdayRate     decimal.Decimal
}

// DefaultRules matches the reference deployment: free Red Hawaiian pizza
// on Wednesdays over ฿1000, 10% member discount, 15% on birthdays.
func DefaultRules() Rules {
	return Rules{
		PromoItemName:    "พิซซ่าเรดฮาวายเอี้ยน",
		PromoMinSubtotal: decimal.NewFromInt(1000),
		MemberRate:       decimal.RequireFromString("0.10"),
		BirthdayRate:     decimal.RequireFromString("0.15"),
	}
}
