package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarczmarek/catering-wizard/internal/catalog"
	"github.com/pkarczmarek/catering-wizard/internal/order"
	"github.com/pkarczmarek/catering-wizard/internal/pricing"
)

func assertPrice(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got)
}

func TestTotalPrice_BasicOrder(t *testing.T) {
	o := order.New()
	o.SetGuestCount(50)

	// One cheese platter at 450, twice.
	o.SetSimpleQuantity("patera-serow", 2)
	assertPrice(t, 900, pricing.TotalPrice(o))

	// Free packaging must not move the total, whatever the person count.
	o.SetPackaging("jednorazowa", 50)
	assertPrice(t, 900, pricing.TotalPrice(o))

	// One waiter at 600 for the standard tier.
	o.SetWaiterService("standard", 1)
	assertPrice(t, 1500, pricing.TotalPrice(o))
}

func TestTotalPrice_ExpandableSelection(t *testing.T) {
	o := order.New()
	o.SetExpandableVariantQuantity("tacos", "tacos-kurczak", 8)  // 18 each
	o.SetExpandableVariantQuantity("tacos", "tacos-krewetki", 3) // 22 each

	assertPrice(t, 8*18+3*22, pricing.ExpandableSubtotal(o))
	assertPrice(t, 210, pricing.TotalPrice(o))
}

func TestTotalPrice_ConfigurableSelection(t *testing.T) {
	o := order.New()
	o.SetConfigurableSelection("zestaw-1", 12, "", nil)
	assertPrice(t, 840, pricing.TotalPrice(o))

	// Option choices are composition, not pricing.
	o.SetConfigurableSelection("zestaw-1", 12, "miesa", []string{"schabowy", "dorsz"})
	o.SetConfigurableSelection("zestaw-1", 12, "salatki", []string{"mizeria"})
	assertPrice(t, 840, pricing.TotalPrice(o))
}

func TestTotalPrice_Additivity(t *testing.T) {
	o := order.New()
	o.SetGuestCount(40)
	o.SetSimpleQuantity("patera-wedlin", 1)                      // 520
	o.SetSimpleQuantity("patera-antipasto", 2)                   // 760
	o.SetExpandableVariantQuantity("sushi", "sushi-maguro", 16)  // 160
	o.SetExpandableVariantQuantity("mini-burgery", "burger-vege", 10) // 150
	o.SetConfigurableSelection("zestaw-3", 10, "", nil)          // 600
	o.SetExtraQuantity("dekoracja-stolu", 1)                     // 200
	o.SetExtraQuantity("led-swiece", 2)                          // 160
	o.SetPackaging("porcelana", 40)                              // 1000
	o.SetWaiterService("basic", 2)                               // 700

	sum := pricing.SimpleSubtotal(o).
		Add(pricing.ExpandableSubtotal(o)).
		Add(pricing.ConfigurableSubtotal(o)).
		Add(pricing.ExtrasSubtotal(o)).
		Add(pricing.PackagingSubtotal(o)).
		Add(pricing.WaiterSubtotal(o))

	assert.True(t, sum.Equal(pricing.TotalPrice(o)))
	assertPrice(t, 520+760+160+150+600+200+160+1000+700, pricing.TotalPrice(o))
}

func TestTotalPrice_StaleIDsContributeNothing(t *testing.T) {
	o := order.New()
	o.SetSimpleQuantity("discontinued-platter", 4)
	o.SetExpandableVariantQuantity("tacos", "tacos-retired", 5)
	o.SetExpandableVariantQuantity("gone-product", "gone-variant", 5)
	o.SetConfigurableSelection("removed-set", 20, "", nil)
	o.SetExtraQuantity("no-such-extra", 2)
	o.SetPackaging("unknown-packaging", 30)
	o.SetWaiterService("unknown-tier", 2)

	assert.NotPanics(t, func() {
		assertPrice(t, 0, pricing.TotalPrice(o))
		assert.Empty(t, pricing.ProductLines(o))
		assert.Empty(t, pricing.ExtrasLines(o))
	})
}

func TestIsProductSelectedAndSelectedCount(t *testing.T) {
	o := order.New()
	simple, _ := catalog.FindProduct("patera-serow")
	expandable, _ := catalog.FindProduct("tacos")
	configurable, _ := catalog.FindProduct("zestaw-1")

	assert.False(t, pricing.IsProductSelected(o, simple))
	assert.False(t, pricing.IsProductSelected(o, expandable))
	assert.False(t, pricing.IsProductSelected(o, configurable))

	o.SetSimpleQuantity("patera-serow", 2)
	o.SetExpandableVariantQuantity("tacos", "tacos-kurczak", 8)
	o.SetExpandableVariantQuantity("tacos", "tacos-vege", 4)
	o.SetConfigurableSelection("zestaw-1", 12, "", nil)

	assert.True(t, pricing.IsProductSelected(o, simple))
	assert.True(t, pricing.IsProductSelected(o, expandable))
	assert.True(t, pricing.IsProductSelected(o, configurable))

	assert.Equal(t, 2, pricing.SelectedCount(o, simple))
	assert.Equal(t, 12, pricing.SelectedCount(o, expandable), "variant quantities sum up")
	assert.Equal(t, 12, pricing.SelectedCount(o, configurable))
}

func TestClearingIsIndistinguishableFromUntouched(t *testing.T) {
	touched := order.New()
	touched.SetSimpleQuantity("patera-serow", 3)
	touched.SetSimpleQuantity("patera-serow", 0)

	untouched := order.New()

	p, _ := catalog.FindProduct("patera-serow")
	assert.Equal(t, pricing.IsProductSelected(untouched, p), pricing.IsProductSelected(touched, p))
	assert.True(t, pricing.TotalPrice(untouched).Equal(pricing.TotalPrice(touched)))
	assert.Equal(t, pricing.ItemsInCategory(untouched, "patery"), pricing.ItemsInCategory(touched, "patery"))
}

func TestItemsInCategory(t *testing.T) {
	o := order.New()
	assert.Equal(t, 0, pricing.ItemsInCategory(o, "patery"))

	o.SetSimpleQuantity("patera-serow", 1)
	o.SetSimpleQuantity("patera-wedlin", 2)
	o.SetExpandableVariantQuantity("tacos", "tacos-kurczak", 8)

	assert.Equal(t, 2, pricing.ItemsInCategory(o, "patery"))
	assert.Equal(t, 1, pricing.ItemsInCategory(o, "mini"))
	assert.Equal(t, 0, pricing.ItemsInCategory(o, "zestawy"))
}

func TestSuggestedQuantity(t *testing.T) {
	simple, _ := catalog.FindProduct("patera-serow")
	expandable, _ := catalog.FindProduct("tacos")
	configurable, _ := catalog.FindProduct("zestaw-1") // min 12 persons

	tests := []struct {
		name       string
		guestCount int
		product    catalog.Product
		want       int
	}{
		{name: "simple_exact_multiple", guestCount: 48, product: simple, want: 6},
		{name: "simple_rounds_up", guestCount: 50, product: simple, want: 7},
		{name: "simple_single_guest", guestCount: 1, product: simple, want: 1},
		{name: "expandable_uses_min_quantity", guestCount: 50, product: expandable, want: 8},
		{name: "configurable_takes_guest_count", guestCount: 50, product: configurable, want: 50},
		{name: "configurable_floors_at_min_persons", guestCount: 5, product: configurable, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := order.New()
			o.SetGuestCount(tt.guestCount)
			assert.Equal(t, tt.want, pricing.SuggestedQuantity(o, tt.product))
		})
	}
}

func TestNextGroupSelection(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		toggle  string
		max     int
		want    []string
	}{
		{name: "add_to_empty", current: nil, toggle: "a", max: 3, want: []string{"a"}},
		{name: "remove_selected", current: []string{"a", "b"}, toggle: "a", max: 3, want: []string{"b"}},
		{name: "add_below_max", current: []string{"a"}, toggle: "b", max: 3, want: []string{"a", "b"}},
		{name: "fifo_eviction_at_max", current: []string{"a", "b", "c"}, toggle: "d", max: 3, want: []string{"b", "c", "d"}},
		{name: "max_one_replaces", current: []string{"a"}, toggle: "b", max: 1, want: []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.NextGroupSelection(tt.current, tt.toggle, tt.max))
		})
	}
}

func TestProductLinesByCategory(t *testing.T) {
	o := order.New()
	o.SetSimpleQuantity("patera-serow", 2)
	o.SetExpandableVariantQuantity("tacos", "tacos-krewetki", 3)

	groups := pricing.ProductLinesByCategory(o)
	require.Len(t, groups, 2)

	assert.Equal(t, "patery", groups[0].Category.ID)
	require.Len(t, groups[0].Lines, 1)
	assert.Equal(t, "Patera Serów Europejskich", groups[0].Lines[0].Name)
	assertPrice(t, 900, groups[0].Lines[0].Price)

	assert.Equal(t, "mini", groups[1].Category.ID)
	require.Len(t, groups[1].Lines, 1)
	assert.Equal(t, "Tacos z krewetkami w tempurze", groups[1].Lines[0].Name)
	assertPrice(t, 66, groups[1].Lines[0].Price)
}

func TestExtrasLines(t *testing.T) {
	o := order.New()
	o.SetExtraQuantity("wniesienie", 1)
	o.SetPackaging("jednorazowa", 50)
	o.SetWaiterService("standard", 2)

	lines := pricing.ExtrasLines(o)
	require.Len(t, lines, 2, "free packaging produces no line")
	assert.Equal(t, "Wniesienie na salę", lines[0].Name)
	assert.Equal(t, "Obsługa Standard", lines[1].Name)
	assertPrice(t, 1200, lines[1].Price)

	o.SetPackaging("porcelana", 50)
	lines = pricing.ExtrasLines(o)
	require.Len(t, lines, 3)
	assert.Equal(t, "Zastawa porcelanowa", lines[1].Name)
	assertPrice(t, 1250, lines[1].Price)
}

func TestStepCompletionPredicates(t *testing.T) {
	o := order.New()
	assert.False(t, pricing.EventComplete(o))

	o.SetEventType("wedding")
	assert.False(t, pricing.EventComplete(o))
	o.SetEventDate("2026-09-12")
	assert.True(t, pricing.EventComplete(o), "time of day is not required")

	assert.False(t, pricing.ExtrasComplete(o))
	o.SetPackaging("jednorazowa", 0)
	assert.True(t, pricing.ExtrasComplete(o))

	assert.False(t, pricing.ContactComplete(o))
	o.SetContactField(order.FieldName, "Jan Kowalski")
	o.SetContactField(order.FieldEmail, "jan@example.com")
	o.SetContactField(order.FieldPhone, "600700800")
	assert.False(t, pricing.ContactComplete(o), "delivery address is required too")
	o.SetContactField(order.FieldCity, "Warszawa")
	o.SetContactField(order.FieldStreet, "Marszałkowska")
	o.SetContactField(order.FieldBuildingNumber, "1")
	assert.True(t, pricing.ContactComplete(o))
}
