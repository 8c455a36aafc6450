// Package order holds the mutable order aggregate for one wizard session and
// every command that may change it. All derivation (prices, counts, gating)
// lives in the pricing package and reads this state without mutating it.
package order

import "maps"

// DefaultGuestCount is the guest count a fresh order starts with.
const DefaultGuestCount = 50

// ConfigurableSelection is the chosen state of one configurable product:
// a person count and the picked option ids per option group.
type ConfigurableSelection struct {
	Quantity int                 `json:"quantity"`
	Options  map[string][]string `json:"options"`
}

// Order is the single in-progress order aggregate. Selection maps never hold
// zero quantities: clearing a selection removes the entry, so "present with
// zero" and "absent" are the same state by construction.
type Order struct {
	GuestCount int    `json:"guest_count"`
	EventType  string `json:"event_type"`
	EventDate  string `json:"event_date"` // ISO date, empty until chosen
	EventTime  string `json:"event_time"` // HH:MM

	SimpleQuantities     map[string]int                   `json:"simple_quantities"`
	ExpandableQuantities map[string]map[string]int        `json:"expandable_quantities"`
	ConfigurableData     map[string]ConfigurableSelection `json:"configurable_data"`

	SelectedExtras        map[string]int `json:"selected_extras"`
	SelectedPackaging     string         `json:"selected_packaging"` // "" = none
	PackagingPersonCount  int            `json:"packaging_person_count"`
	SelectedWaiterService string         `json:"selected_waiter_service"` // "" = none
	WaiterCount           int            `json:"waiter_count"`

	ContactName            string `json:"contact_name"`
	ContactEmail           string `json:"contact_email"`
	ContactPhone           string `json:"contact_phone"`
	ContactCity            string `json:"contact_city"`
	ContactStreet          string `json:"contact_street"`
	ContactBuildingNumber  string `json:"contact_building_number"`
	ContactApartmentNumber string `json:"contact_apartment_number"`
	Notes                  string `json:"notes"`

	PaymentMethod string `json:"payment_method"`
}

// New returns an order with the wizard-start defaults.
func New() *Order {
	return &Order{
		GuestCount:           DefaultGuestCount,
		SimpleQuantities:     map[string]int{},
		ExpandableQuantities: map[string]map[string]int{},
		ConfigurableData:     map[string]ConfigurableSelection{},
		SelectedExtras:       map[string]int{},
		WaiterCount:          1,
	}
}

// Reset restores the aggregate to its defaults in place.
func (o *Order) Reset() {
	*o = *New()
}

// Clone returns a deep copy, safe to hand out as a snapshot while the
// original keeps changing.
func (o *Order) Clone() *Order {
	c := *o
	c.SimpleQuantities = maps.Clone(o.SimpleQuantities)
	c.SelectedExtras = maps.Clone(o.SelectedExtras)
	c.ExpandableQuantities = make(map[string]map[string]int, len(o.ExpandableQuantities))
	for productID, variants := range o.ExpandableQuantities {
		c.ExpandableQuantities[productID] = maps.Clone(variants)
	}
	c.ConfigurableData = make(map[string]ConfigurableSelection, len(o.ConfigurableData))
	for productID, sel := range o.ConfigurableData {
		options := make(map[string][]string, len(sel.Options))
		for groupID, ids := range sel.Options {
			options[groupID] = append([]string(nil), ids...)
		}
		c.ConfigurableData[productID] = ConfigurableSelection{Quantity: sel.Quantity, Options: options}
	}
	return &c
}
