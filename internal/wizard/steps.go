package wizard

import (
	"github.com/pkarczmarek/catering-wizard/internal/order"
	"github.com/pkarczmarek/catering-wizard/internal/pricing"
)

// Step is one screen of the linear wizard flow.
type Step struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

const (
	StepEvent    = "event"
	StepProducts = "products"
	StepExtras   = "extras"
	StepContact  = "contact"
	StepSummary  = "summary"
)

var steps = []Step{
	{ID: StepEvent, Name: "Wydarzenie", Icon: "📋"},
	{ID: StepProducts, Name: "Produkty", Icon: "🍽️"},
	{ID: StepExtras, Name: "Dodatki", Icon: "✨"},
	{ID: StepContact, Name: "Kontakt", Icon: "📧"},
	{ID: StepSummary, Name: "Podsumowanie", Icon: "✅"},
}

// Steps returns the fixed step sequence.
func Steps() []Step {
	return steps
}

// CanAdvanceFromStep reports whether the step at the given index is complete
// enough to leave. The result is advisory: navigation itself never blocks on
// it, the caller decides whether to disable its "next" affordance.
func CanAdvanceFromStep(o *order.Order, stepIndex int) bool {
	if stepIndex < 0 || stepIndex >= len(steps) {
		return true
	}
	switch steps[stepIndex].ID {
	case StepEvent:
		return pricing.EventComplete(o)
	case StepExtras:
		return pricing.ExtrasComplete(o)
	case StepContact:
		return pricing.ContactComplete(o)
	default:
		return true
	}
}
