package catalog

import "github.com/shopspring/decimal"

// Product is the closed set of sellable product shapes. Every consumer
// switches exhaustively over the three concrete types; adding a fourth shape
// means implementing the interface here and updating each switch.
type Product interface {
	ProductID() string
	ProductName() string
	ProductCategory() string
	isProduct()
}

// SimpleProduct is sold by unit at a fixed price.
type SimpleProduct struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Contents        []string        `json:"contents"`
	Allergens       []string        `json:"allergens"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	UnitLabel       string          `json:"unit_label"`
	MinQuantity     int             `json:"min_quantity"`
	Icon            string          `json:"icon"`
	Category        string          `json:"category"`
}

// ExpandableProduct exposes independently quantifiable priced variants.
// BasePrice is display-only; pricing always goes through the variants.
type ExpandableProduct struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	MinQuantity     int             `json:"min_quantity"`
	Icon            string          `json:"icon"`
	Category        string          `json:"category"`
	Variants        []Variant       `json:"variants"`
}

type Variant struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Allergens   []string        `json:"allergens"`
	DietaryTags []string        `json:"dietary_tags"`
}

// ConfigurableProduct is priced per person; buyers compose it from option
// groups without affecting the price.
type ConfigurableProduct struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	PricePerPerson  decimal.Decimal `json:"price_per_person"`
	MinPersons      int             `json:"min_persons"`
	Icon            string          `json:"icon"`
	Category        string          `json:"category"`
	OptionGroups    []OptionGroup   `json:"option_groups"`
}

type OptionGroup struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	MinSelections int           `json:"min_selections"`
	MaxSelections int           `json:"max_selections"`
	Options       []GroupOption `json:"options"`
}

type GroupOption struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Allergens []string `json:"allergens"`
}

func (p *SimpleProduct) ProductID() string       { return p.ID }
func (p *SimpleProduct) ProductName() string     { return p.Name }
func (p *SimpleProduct) ProductCategory() string { return p.Category }
func (p *SimpleProduct) isProduct()              {}

func (p *ExpandableProduct) ProductID() string       { return p.ID }
func (p *ExpandableProduct) ProductName() string     { return p.Name }
func (p *ExpandableProduct) ProductCategory() string { return p.Category }
func (p *ExpandableProduct) isProduct()              {}

func (p *ConfigurableProduct) ProductID() string       { return p.ID }
func (p *ConfigurableProduct) ProductName() string     { return p.Name }
func (p *ConfigurableProduct) ProductCategory() string { return p.Category }
func (p *ConfigurableProduct) isProduct()              {}

// Variant returns the variant with the given id, if any.
func (p *ExpandableProduct) Variant(id string) (*Variant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// Group returns the option group with the given id, if any.
func (p *ConfigurableProduct) Group(id string) (*OptionGroup, bool) {
	for i := range p.OptionGroups {
		if p.OptionGroups[i].ID == id {
			return &p.OptionGroups[i], true
		}
	}
	return nil, false
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type EventType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ExtraItem is a flat add-on priced per unit.
type ExtraItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	UnitLabel       string          `json:"unit_label"`
	Icon            string          `json:"icon"`
	Contents        []string        `json:"contents,omitempty"`
}

// PackagingOption is a mutually exclusive choice. Price 0 means "included".
type PackagingOption struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	LongDescription     string          `json:"long_description,omitempty"`
	Price               decimal.Decimal `json:"price"`
	PriceLabel          string          `json:"price_label"`
	RequiresPersonCount bool            `json:"requires_person_count"`
	Icon                string          `json:"icon"`
	Contents            []string        `json:"contents,omitempty"`
}

// WaiterServiceOption is a mutually exclusive tier priced per waiter.
type WaiterServiceOption struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Duration        string          `json:"duration"`
	Price           decimal.Decimal `json:"price"`
	Icon            string          `json:"icon"`
	Contents        []string        `json:"contents,omitempty"`
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FindProduct looks a product up by id. The second return is false when the
// id does not resolve; callers treat that entry as absent.
func FindProduct(id string) (Product, bool) {
	for _, p := range Products {
		if p.ProductID() == id {
			return p, true
		}
	}
	return nil, false
}

// ProductsByCategory returns the catalog products in the given category, in
// catalog order.
func ProductsByCategory(categoryID string) []Product {
	var out []Product
	for _, p := range Products {
		if p.ProductCategory() == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func FindCategory(id string) (*Category, bool) {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i], true
		}
	}
	return nil, false
}

func FindEventType(id string) (*EventType, bool) {
	for i := range EventTypes {
		if EventTypes[i].ID == id {
			return &EventTypes[i], true
		}
	}
	return nil, false
}

func FindExtra(id string) (*ExtraItem, bool) {
	for i := range ExtraItems {
		if ExtraItems[i].ID == id {
			return &ExtraItems[i], true
		}
	}
	return nil, false
}

func FindPackaging(id string) (*PackagingOption, bool) {
	for i := range PackagingOptions {
		if PackagingOptions[i].ID == id {
			return &PackagingOptions[i], true
		}
	}
	return nil, false
}

func FindWaiterService(id string) (*WaiterServiceOption, bool) {
	for i := range WaiterServiceOptions {
		if WaiterServiceOptions[i].ID == id {
			return &WaiterServiceOptions[i], true
		}
	}
	return nil, false
}

func FindPaymentMethod(id string) (*PaymentMethod, bool) {
	for i := range PaymentMethods {
		if PaymentMethods[i].ID == id {
			return &PaymentMethods[i], true
		}
	}
	return nil, false
}
