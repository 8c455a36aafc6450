package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/pkarczmarek/catering-wizard/internal/catalog"
	"github.com/pkarczmarek/catering-wizard/internal/order"
)

// Line is one priced row of the order summary.
type Line struct {
	CategoryID string          `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// CategoryLines groups product lines under their catalog category.
type CategoryLines struct {
	Category catalog.Category `json:"category"`
	Lines    []Line           `json:"lines"`
}

// ProductLines builds the per-item summary rows for every selected product,
// in catalog order so the output is stable.
func ProductLines(o *order.Order) []Line {
	var lines []Line
	for _, p := range catalog.Products {
		switch p := p.(type) {
		case *catalog.SimpleProduct:
			qty := o.SimpleQuantities[p.ID]
			if qty <= 0 {
				continue
			}
			lines = append(lines, Line{
				CategoryID: p.Category,
				Name:       p.Name,
				Quantity:   qty,
				Price:      p.PricePerUnit.Mul(decimal.NewFromInt(int64(qty))),
			})
		case *catalog.ExpandableProduct:
			selected := o.ExpandableQuantities[p.ID]
			for i := range p.Variants {
				v := &p.Variants[i]
				qty := selected[v.ID]
				if qty <= 0 {
					continue
				}
				lines = append(lines, Line{
					CategoryID: p.Category,
					Name:       v.Name,
					Quantity:   qty,
					Price:      v.Price.Mul(decimal.NewFromInt(int64(qty))),
				})
			}
		case *catalog.ConfigurableProduct:
			sel := o.ConfigurableData[p.ID]
			if sel.Quantity <= 0 {
				continue
			}
			lines = append(lines, Line{
				CategoryID: p.Category,
				Name:       p.Name,
				Quantity:   sel.Quantity,
				Price:      p.PricePerPerson.Mul(decimal.NewFromInt(int64(sel.Quantity))),
			})
		}
	}
	return lines
}

// ProductLinesByCategory arranges the product lines under their categories,
// omitting categories with nothing selected.
func ProductLinesByCategory(o *order.Order) []CategoryLines {
	lines := ProductLines(o)
	var groups []CategoryLines
	for _, cat := range catalog.Categories {
		var group []Line
		for _, line := range lines {
			if line.CategoryID == cat.ID {
				group = append(group, line)
			}
		}
		if len(group) > 0 {
			groups = append(groups, CategoryLines{Category: cat, Lines: group})
		}
	}
	return groups
}

// ExtrasLines builds the summary rows for extras, packaging and waiter
// service. A free packaging tier produces no row.
func ExtrasLines(o *order.Order) []Line {
	var lines []Line
	for i := range catalog.ExtraItems {
		extra := &catalog.ExtraItems[i]
		qty := o.SelectedExtras[extra.ID]
		if qty <= 0 {
			continue
		}
		lines = append(lines, Line{
			Name:     extra.Name,
			Quantity: qty,
			Price:    extra.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	if pack, ok := catalog.FindPackaging(o.SelectedPackaging); ok && pack.Price.IsPositive() {
		lines = append(lines, Line{
			Name:     pack.Name,
			Quantity: o.PackagingPersonCount,
			Price:    pack.Price.Mul(decimal.NewFromInt(int64(o.PackagingPersonCount))),
		})
	}
	if svc, ok := catalog.FindWaiterService(o.SelectedWaiterService); ok {
		lines = append(lines, Line{
			Name:     svc.Name,
			Quantity: o.WaiterCount,
			Price:    svc.Price.Mul(decimal.NewFromInt(int64(o.WaiterCount))),
		})
	}
	return lines
}
