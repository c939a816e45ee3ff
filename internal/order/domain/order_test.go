package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
	member "github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
)

var (
	// 2025-06-04 is a Wednesday, 2025-06-05 a Thursday.
	wednesday = time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)
	thursday  = time.Date(2025, time.June, 5, 12, 0, 0, 0, time.UTC)

	margherita = catalog.MenuItem{ID: "P001", Name: "Margherita Pizza", Price: decimal.NewFromFloat(1000.0), Category: "Pizza"}
	pepperoni  = catalog.MenuItem{ID: "P002", Name: "Pepperoni Pizza", Price: decimal.NewFromFloat(359.0), Category: "Pizza"}
	promoPizza = catalog.MenuItem{ID: "P004", Name: "พิซซ่าเรดฮาวายเอี้ยน", Price: decimal.NewFromFloat(128.0), Category: "Pizza"}
	coke       = catalog.MenuItem{ID: "D001", Name: "Coke", Price: decimal.NewFromFloat(45.0), Category: "Drink"}
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newOrderAt(t *testing.T, at time.Time) *domain.Order {
	t.Helper()
	return domain.NewOrder("ORD000001", domain.DefaultRules(), fixedClock(at))
}

func TestNewOrderIsEmpty(t *testing.T) {
	o := newOrderAt(t, thursday)

	assert.True(t, o.IsEmpty())
	assert.Equal(t, "0.00", o.Subtotal().StringFixed(2))
	assert.Equal(t, "0.00", o.TotalSavings().StringFixed(2))
	assert.Equal(t, "0.00", o.TotalPrice().StringFixed(2))
	assert.False(t, o.HasFreeWednesdayPizza())
}

func TestNewOrderFallbackID(t *testing.T) {
	o := domain.NewOrder("", domain.DefaultRules(), fixedClock(thursday))
	assert.Contains(t, o.ID(), "ORD")
	assert.NotEqual(t, "ORD", o.ID())
}

func TestAddItemMergesQuantities(t *testing.T) {
	o := newOrderAt(t, thursday)

	require.NoError(t, o.AddItem(pepperoni, 2))
	require.NoError(t, o.AddItem(pepperoni, 3))

	lines := o.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "1795.00", lines[0].Total().StringFixed(2))
	assert.Equal(t, "1795.00", o.Subtotal().StringFixed(2))
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(pepperoni, 1))

	for _, qty := range []int{0, -1, -50} {
		err := o.AddItem(coke, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}

	// order left unmutated
	require.Len(t, o.Lines(), 1)
	assert.Equal(t, "359.00", o.Subtotal().StringFixed(2))
}

func TestRemoveItemDropsAllLines(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(pepperoni, 3))

	o.RemoveItem(pepperoni)

	assert.True(t, o.IsEmpty())
	assert.Equal(t, "0.00", o.TotalPrice().StringFixed(2))
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(pepperoni, 1))

	o.RemoveItem(coke)
	o.RemoveItemQuantity(coke, 2)

	require.Len(t, o.Lines(), 1)
	assert.Equal(t, "359.00", o.TotalPrice().StringFixed(2))
}

func TestRemoveItemQuantityDecrements(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(coke, 5))

	o.RemoveItemQuantity(coke, 2)
	require.Len(t, o.Lines(), 1)
	assert.Equal(t, 3, o.Lines()[0].Quantity)

	o.RemoveItemQuantity(coke, 10)
	assert.True(t, o.IsEmpty())
}

func TestClearIsIdempotent(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(margherita, 2))

	o.Clear()
	first := o.Quote()
	o.Clear()

	assert.True(t, o.IsEmpty())
	assert.Equal(t, first, o.Quote())
	assert.Equal(t, "0.00", o.TotalPrice().StringFixed(2))
	assert.False(t, o.HasFreeWednesdayPizza())
}

func TestSetDineInDoesNotAffectPricing(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(margherita, 1))
	before := o.TotalPrice()

	o.SetDineIn(true)

	assert.True(t, o.DineIn())
	assert.True(t, before.Equal(o.TotalPrice()))
}

func TestPlainOrderNoPromotions(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(margherita, 1))

	assert.Equal(t, "1000.00", o.TotalPrice().StringFixed(2))
	assert.Equal(t, "0.00", o.TotalSavings().StringFixed(2))
	assert.False(t, o.HasFreeWednesdayPizza())
}

func TestWednesdayFreePizza(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(promoPizza, 1))
	require.NoError(t, o.AddItem(margherita, 1))

	assert.Equal(t, "1128.00", o.Subtotal().StringFixed(2))
	assert.Equal(t, "128.00", o.TotalSavings().StringFixed(2))
	assert.Equal(t, "1000.00", o.TotalPrice().StringFixed(2))
	assert.True(t, o.HasFreeWednesdayPizza())
}

func TestWednesdayPromoSingleUnitOnly(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(promoPizza, 4))
	require.NoError(t, o.AddItem(margherita, 1))

	// one free unit regardless of quantity
	assert.Equal(t, "128.00", o.TotalSavings().StringFixed(2))
}

func TestWednesdayPromoNeedsPromoItemInCart(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(margherita, 2))

	assert.False(t, o.HasFreeWednesdayPizza())
	assert.Equal(t, "0.00", o.TotalSavings().StringFixed(2))
	assert.Equal(t, "2000.00", o.TotalPrice().StringFixed(2))
}

func TestWednesdayPromoBelowThreshold(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(promoPizza, 1))

	assert.False(t, o.HasFreeWednesdayPizza())
	assert.Equal(t, "128.00", o.TotalPrice().StringFixed(2))
}

func TestWednesdayPromoOnlyOnWednesday(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(promoPizza, 1))
	require.NoError(t, o.AddItem(margherita, 1))

	assert.False(t, o.HasFreeWednesdayPizza())
	assert.Equal(t, "1128.00", o.TotalPrice().StringFixed(2))
}

func TestMemberDiscountFlatRate(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(margherita, 1))
	o.SetMember(&member.Member{ID: "M0001", BirthDate: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC), Active: true})

	assert.Equal(t, "100.00", o.TotalSavings().StringFixed(2))
	assert.Equal(t, "900.00", o.TotalPrice().StringFixed(2))
}

func TestMemberBirthdayRateOverridesFlatRate(t *testing.T) {
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(margherita, 1))
	// birthday matches the thursday fixture by month and day
	o.SetMember(&member.Member{ID: "M0001", BirthDate: time.Date(1990, time.June, 5, 0, 0, 0, 0, time.UTC), Active: true})

	assert.Equal(t, "150.00", o.TotalSavings().StringFixed(2))
	assert.Equal(t, "850.00", o.TotalPrice().StringFixed(2))
}

func TestDiscountsStackSequentially(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(promoPizza, 1))
	require.NoError(t, o.AddItem(margherita, 1))
	o.SetMember(&member.Member{ID: "M0001", BirthDate: time.Date(1990, time.June, 4, 0, 0, 0, 0, time.UTC), Active: true})

	// 1128 - 128 = 1000, then 15% of 1000, not 15% of 1128
	assert.Equal(t, "150.00", o.Quote().MemberDiscount.StringFixed(2))
	assert.Equal(t, "278.00", o.TotalSavings().StringFixed(2))
	assert.Equal(t, "850.00", o.TotalPrice().StringFixed(2))
	assert.True(t, o.HasFreeWednesdayPizza())
}

func TestDetachMemberKeepsWednesdayPortion(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(promoPizza, 1))
	require.NoError(t, o.AddItem(margherita, 1))
	o.SetMember(&member.Member{ID: "M0001", Active: true})
	require.Equal(t, "228.00", o.TotalSavings().StringFixed(2))

	o.SetMember(nil)

	assert.Equal(t, "128.00", o.TotalSavings().StringFixed(2))
	assert.Equal(t, "1000.00", o.TotalPrice().StringFixed(2))
	assert.True(t, o.HasFreeWednesdayPizza())
}

func TestExpiredMemberStillDiscountedWhenAttached(t *testing.T) {
	// The cart trusts whoever attached the member; eligibility gating
	// happens at attach time in the session layer.
	o := newOrderAt(t, thursday)
	require.NoError(t, o.AddItem(margherita, 1))
	o.SetMember(&member.Member{
		ID:         "M0002",
		ExpireDate: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		Active:     false,
	})

	assert.Equal(t, "900.00", o.TotalPrice().StringFixed(2))
}

func TestSummaryListsDiscountsWithRates(t *testing.T) {
	o := newOrderAt(t, wednesday)
	require.NoError(t, o.AddItem(promoPizza, 1))
	require.NoError(t, o.AddItem(margherita, 1))
	o.SetMember(&member.Member{ID: "M0001", Name: "ปาณัสม์", Active: true})

	summary := o.Summary()

	assert.Contains(t, summary, "Order ID: ORD000001")
	assert.Contains(t, summary, "- Margherita Pizza x1 = ฿1000.00")
	assert.Contains(t, summary, "Subtotal: ฿1128.00")
	assert.Contains(t, summary, "Wednesday free pizza: -฿128.00")
	assert.Contains(t, summary, "Member discount (10%): -฿100.00")
	assert.Contains(t, summary, "Total: ฿900.00")
	assert.Contains(t, summary, "Savings: ฿228.00")
}
