// Package pricing derives everything a view needs from the current order and
// the catalog: totals, per-category subtotals, line items, selection state,
// suggested quantities and step-completion predicates. Every function is
// pure and recomputes from source state on each call, so there is no cache
// to invalidate. Selection entries whose id no longer resolves in the
// catalog contribute nothing and are skipped, never reported as a fault.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/pkarczmarek/catering-wizard/internal/catalog"
	"github.com/pkarczmarek/catering-wizard/internal/order"
)

// GuestsPerPortion is the observed ratio behind quantity suggestions for
// simple products: one portion unit per 8 guests.
const GuestsPerPortion = 8

// SimpleSubtotal sums price-per-unit times quantity over the selected
// simple products.
func SimpleSubtotal(o *order.Order) decimal.Decimal {
	total := decimal.Zero
	for productID, qty := range o.SimpleQuantities {
		if qty <= 0 {
			continue
		}
		p, ok := catalog.FindProduct(productID)
		if !ok {
			continue
		}
		sp, ok := p.(*catalog.SimpleProduct)
		if !ok {
			continue
		}
		total = total.Add(sp.PricePerUnit.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// ExpandableSubtotal sums variant price times quantity over the selected
// expandable-product variants.
func ExpandableSubtotal(o *order.Order) decimal.Decimal {
	total := decimal.Zero
	for productID, variants := range o.ExpandableQuantities {
		p, ok := catalog.FindProduct(productID)
		if !ok {
			continue
		}
		ep, ok := p.(*catalog.ExpandableProduct)
		if !ok {
			continue
		}
		for variantID, qty := range variants {
			if qty <= 0 {
				continue
			}
			v, ok := ep.Variant(variantID)
			if !ok {
				continue
			}
			total = total.Add(v.Price.Mul(decimal.NewFromInt(int64(qty))))
		}
	}
	return total
}

// ConfigurableSubtotal sums price-per-person times person count over the
// selected configurable products. Option choices never affect the price.
func ConfigurableSubtotal(o *order.Order) decimal.Decimal {
	total := decimal.Zero
	for productID, sel := range o.ConfigurableData {
		if sel.Quantity <= 0 {
			continue
		}
		p, ok := catalog.FindProduct(productID)
		if !ok {
			continue
		}
		cp, ok := p.(*catalog.ConfigurableProduct)
		if !ok {
			continue
		}
		total = total.Add(cp.PricePerPerson.Mul(decimal.NewFromInt(int64(sel.Quantity))))
	}
	return total
}

// ExtrasSubtotal sums extra price times quantity over the selected extras.
func ExtrasSubtotal(o *order.Order) decimal.Decimal {
	total := decimal.Zero
	for extraID, qty := range o.SelectedExtras {
		if qty <= 0 {
			continue
		}
		extra, ok := catalog.FindExtra(extraID)
		if !ok {
			continue
		}
		total = total.Add(extra.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// PackagingSubtotal prices the chosen packaging by its person count.
// "Included" tiers have price zero and contribute nothing regardless of the
// person count.
func PackagingSubtotal(o *order.Order) decimal.Decimal {
	if o.SelectedPackaging == "" {
		return decimal.Zero
	}
	pack, ok := catalog.FindPackaging(o.SelectedPackaging)
	if !ok {
		return decimal.Zero
	}
	return pack.Price.Mul(decimal.NewFromInt(int64(o.PackagingPersonCount)))
}

// WaiterSubtotal prices the chosen waiter-service tier by waiter count.
func WaiterSubtotal(o *order.Order) decimal.Decimal {
	if o.SelectedWaiterService == "" {
		return decimal.Zero
	}
	svc, ok := catalog.FindWaiterService(o.SelectedWaiterService)
	if !ok {
		return decimal.Zero
	}
	return svc.Price.Mul(decimal.NewFromInt(int64(o.WaiterCount)))
}

// TotalPrice is the sum of all subtotals.
func TotalPrice(o *order.Order) decimal.Decimal {
	return SimpleSubtotal(o).
		Add(ExpandableSubtotal(o)).
		Add(ConfigurableSubtotal(o)).
		Add(ExtrasSubtotal(o)).
		Add(PackagingSubtotal(o)).
		Add(WaiterSubtotal(o))
}

// IsProductSelected reports whether the product counts as selected: any
// positive quantity for its shape.
func IsProductSelected(o *order.Order, p catalog.Product) bool {
	switch p := p.(type) {
	case *catalog.SimpleProduct:
		return o.SimpleQuantities[p.ID] > 0
	case *catalog.ExpandableProduct:
		for _, qty := range o.ExpandableQuantities[p.ID] {
			if qty > 0 {
				return true
			}
		}
		return false
	case *catalog.ConfigurableProduct:
		return o.ConfigurableData[p.ID].Quantity > 0
	default:
		return false
	}
}

// SelectedCount returns the selected quantity of a product: its own quantity
// for simple and configurable products, the sum over variants for expandable
// ones.
func SelectedCount(o *order.Order, p catalog.Product) int {
	switch p := p.(type) {
	case *catalog.SimpleProduct:
		return o.SimpleQuantities[p.ID]
	case *catalog.ExpandableProduct:
		sum := 0
		for _, qty := range o.ExpandableQuantities[p.ID] {
			sum += qty
		}
		return sum
	case *catalog.ConfigurableProduct:
		return o.ConfigurableData[p.ID].Quantity
	default:
		return 0
	}
}

// ItemsInCategory counts the selected products within a category, for the
// category tab badges.
func ItemsInCategory(o *order.Order, categoryID string) int {
	count := 0
	for _, p := range catalog.ProductsByCategory(categoryID) {
		if IsProductSelected(o, p) {
			count++
		}
	}
	return count
}

// SuggestedQuantity proposes an initial quantity for a product. It is
// advisory only; the caller decides whether to apply it.
func SuggestedQuantity(o *order.Order, p catalog.Product) int {
	switch p := p.(type) {
	case *catalog.SimpleProduct:
		return (o.GuestCount + GuestsPerPortion - 1) / GuestsPerPortion
	case *catalog.ExpandableProduct:
		return p.MinQuantity
	case *catalog.ConfigurableProduct:
		if o.GuestCount > p.MinPersons {
			return o.GuestCount
		}
		return p.MinPersons
	default:
		return 0
	}
}

// NextGroupSelection computes the option list after toggling optionID within
// a group limited to maxSelections choices. Toggling a selected option
// removes it; adding to a full group evicts the oldest selection first.
func NextGroupSelection(current []string, optionID string, maxSelections int) []string {
	for i, id := range current {
		if id == optionID {
			next := make([]string, 0, len(current)-1)
			next = append(next, current[:i]...)
			return append(next, current[i+1:]...)
		}
	}
	next := append([]string(nil), current...)
	if maxSelections > 0 && len(next) >= maxSelections {
		next = next[len(next)-maxSelections+1:]
	}
	return append(next, optionID)
}

// EventComplete reports whether the event-details step is complete.
func EventComplete(o *order.Order) bool {
	return o.GuestCount > 0 && o.EventType != "" && o.EventDate != ""
}

// ExtrasComplete reports whether the extras step is complete: packaging is
// the one required choice there.
func ExtrasComplete(o *order.Order) bool {
	return o.SelectedPackaging != ""
}

// ContactComplete reports whether the contact step is complete, including
// the delivery address.
func ContactComplete(o *order.Order) bool {
	return o.ContactName != "" &&
		o.ContactEmail != "" &&
		o.ContactPhone != "" &&
		o.ContactCity != "" &&
		o.ContactStreet != "" &&
		o.ContactBuildingNumber != ""
}
