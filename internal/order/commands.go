package order

// Contact field names accepted by SetContactField.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldCity            = "city"
	FieldStreet          = "street"
	FieldBuildingNumber  = "building_number"
	FieldApartmentNumber = "apartment_number"
)

// All commands are total over their input domain: out-of-range numbers are
// clamped, ids the catalog no longer knows are stored as-is (derivation skips
// them), and nothing here ever returns an error.

// SetGuestCount updates the headcount, clamped to at least one guest.
// Existing selections are deliberately left untouched; re-suggestion on a
// headcount change is a display concern of the pricing engine.
func (o *Order) SetGuestCount(n int) {
	if n < 1 {
		n = 1
	}
	o.GuestCount = n
}

func (o *Order) SetEventType(id string) { o.EventType = id }

func (o *Order) SetEventDate(date string) { o.EventDate = date }

func (o *Order) SetEventTime(hhmm string) { o.EventTime = hhmm }

func (o *Order) SetPaymentMethod(id string) { o.PaymentMethod = id }

func (o *Order) SetNotes(notes string) { o.Notes = notes }

// SetSimpleQuantity sets the quantity for a simple product. A quantity of
// zero or less removes the entry.
func (o *Order) SetSimpleQuantity(productID string, qty int) {
	if qty <= 0 {
		delete(o.SimpleQuantities, productID)
		return
	}
	o.SimpleQuantities[productID] = qty
}

// SetExpandableVariantQuantity sets the quantity of one variant of an
// expandable product. Cleared variants are removed, and the product entry
// disappears with its last variant.
func (o *Order) SetExpandableVariantQuantity(productID, variantID string, qty int) {
	variants := o.ExpandableQuantities[productID]
	if qty <= 0 {
		delete(variants, variantID)
		if len(variants) == 0 {
			delete(o.ExpandableQuantities, productID)
		}
		return
	}
	if variants == nil {
		variants = map[string]int{}
		o.ExpandableQuantities[productID] = variants
	}
	variants[variantID] = qty
}

// SetConfigurableSelection updates the person count of a configurable
// product and, when groupID is non-empty, replaces that group's option list
// wholesale. The entry is removed once the quantity is zero and no options
// remain selected.
func (o *Order) SetConfigurableSelection(productID string, qty int, groupID string, optionIDs []string) {
	if qty < 0 {
		qty = 0
	}

	sel, ok := o.ConfigurableData[productID]
	if !ok {
		sel = ConfigurableSelection{Options: map[string][]string{}}
	}
	sel.Quantity = qty

	if groupID != "" {
		if len(optionIDs) == 0 {
			delete(sel.Options, groupID)
		} else {
			sel.Options[groupID] = append([]string(nil), optionIDs...)
		}
	}

	if sel.Quantity == 0 && len(sel.Options) == 0 {
		delete(o.ConfigurableData, productID)
		return
	}
	o.ConfigurableData[productID] = sel
}

// SetExtraQuantity sets the quantity of an add-on extra; zero clears it.
func (o *Order) SetExtraQuantity(extraID string, qty int) {
	if qty <= 0 {
		delete(o.SelectedExtras, extraID)
		return
	}
	o.SelectedExtras[extraID] = qty
}

// SetPackaging replaces the packaging choice and its person count as a unit.
// An empty id clears the choice.
func (o *Order) SetPackaging(packagingID string, personCount int) {
	if packagingID == "" {
		o.SelectedPackaging = ""
		o.PackagingPersonCount = 0
		return
	}
	if personCount < 0 {
		personCount = 0
	}
	o.SelectedPackaging = packagingID
	o.PackagingPersonCount = personCount
}

// SetWaiterService replaces the waiter-service choice. An empty id clears
// the selection; otherwise the waiter count is clamped to at least one.
func (o *Order) SetWaiterService(serviceID string, count int) {
	if serviceID == "" {
		o.SelectedWaiterService = ""
		o.WaiterCount = 1
		return
	}
	if count < 1 {
		count = 1
	}
	o.SelectedWaiterService = serviceID
	o.WaiterCount = count
}

// SetContactField sets one contact/delivery field by name. Unknown field
// names are ignored.
func (o *Order) SetContactField(field, value string) {
	switch field {
	case FieldName:
		o.ContactName = value
	case FieldEmail:
		o.ContactEmail = value
	case FieldPhone:
		o.ContactPhone = value
	case FieldCity:
		o.ContactCity = value
	case FieldStreet:
		o.ContactStreet = value
	case FieldBuildingNumber:
		o.ContactBuildingNumber = value
	case FieldApartmentNumber:
		o.ContactApartmentNumber = value
	}
}
