package handler

import (
	"net/http"

	"github.com/pkarczmarek/catering-wizard/internal/catalog"
	"github.com/pkarczmarek/catering-wizard/internal/wizard"
)

// CatalogHandler serves the read-only catalog so a client can render the
// whole wizard from one payload.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// taggedProduct wraps a catalog product with its shape discriminator for
// serialization of the sum type.
type taggedProduct struct {
	Type    string          `json:"type"`
	Product catalog.Product `json:"product"`
}

func productType(p catalog.Product) string {
	switch p.(type) {
	case *catalog.SimpleProduct:
		return "simple"
	case *catalog.ExpandableProduct:
		return "expandable"
	case *catalog.ConfigurableProduct:
		return "configurable"
	default:
		return "unknown"
	}
}

type catalogResponse struct {
	Categories           []catalog.Category            `json:"categories"`
	EventTypes           []catalog.EventType           `json:"event_types"`
	Products             []taggedProduct               `json:"products"`
	ExtraItems           []catalog.ExtraItem           `json:"extra_items"`
	PackagingOptions     []catalog.PackagingOption     `json:"packaging_options"`
	WaiterServiceOptions []catalog.WaiterServiceOption `json:"waiter_service_options"`
	PaymentMethods       []catalog.PaymentMethod       `json:"payment_methods"`
}

// GetCatalog returns every catalog collection.
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	products := make([]taggedProduct, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		products = append(products, taggedProduct{Type: productType(p), Product: p})
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		Categories:           catalog.Categories,
		EventTypes:           catalog.EventTypes,
		Products:             products,
		ExtraItems:           catalog.ExtraItems,
		PackagingOptions:     catalog.PackagingOptions,
		WaiterServiceOptions: catalog.WaiterServiceOptions,
		PaymentMethods:       catalog.PaymentMethods,
	})
}

// GetSteps returns the wizard step sequence.
func (h *CatalogHandler) GetSteps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wizard.Steps())
}
