package billing

import (
	"strconv"

	"github.com/google/uuid"
)

// CatalogEntry is the product snapshot the editor works against. It is
// fetched once before editing begins; the draft does not observe later
// catalog changes.
type CatalogEntry struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	UnitPrice      float64   `json:"unit_price"`
	LotSize        int       `json:"lot_size"`
	LotPrice       float64   `json:"lot_price"`
	AvailableStock int       `json:"available_stock"`
}

// Item is one editable bill line. Name, lot size and prices are copied
// from the catalog at add time, not live-linked. Quantity is the
// authoritative unit count; Lots is the user-facing lot count and is
// blank once quantity has been edited directly.
type Item struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	LotSize     int       `json:"lot_size"`
	Lots        string    `json:"lots"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LotPrice    float64   `json:"lot_price"`
}

// Edit is a tagged edit event, one variant per editable field. Apply
// dispatches on the variant so each transition rule stays independently
// testable.
type Edit interface {
	isEdit()
}

// EditLots sets the lot count from its text representation.
type EditLots struct{ Value string }

// EditQuantity sets the raw unit count.
type EditQuantity struct{ Value int }

// EditUnitPrice overrides the per-unit price.
type EditUnitPrice struct{ Value float64 }

// EditLotPrice overrides the per-lot price.
type EditLotPrice struct{ Value float64 }

func (EditLots) isEdit()      {}
func (EditQuantity) isEdit()  {}
func (EditUnitPrice) isEdit() {}
func (EditLotPrice) isEdit()  {}

// Apply returns the item after one field edit, re-deriving the dependent
// fields so the line stays consistent with whichever field was touched
// last:
//
//   - lots: quantity = lots × lotSize (non-numeric lots count as 0) and
//     both prices snap back to the catalog values, discarding any manual
//     price override;
//   - quantity: lots is cleared, prices are left alone;
//   - unit price: lot price = unit price × lotSize;
//   - lot price: unit price = lot price / lotSize, skipped when lotSize
//     is zero.
func (it Item) Apply(e Edit, catalog CatalogEntry) Item {
	switch ed := e.(type) {
	case EditLots:
		it.Lots = ed.Value
		it.Quantity = parseLots(ed.Value) * it.LotSize
		it.UnitPrice = catalog.UnitPrice
		it.LotPrice = catalog.LotPrice
	case EditQuantity:
		it.Quantity = ed.Value
		it.Lots = ""
	case EditUnitPrice:
		it.UnitPrice = ed.Value
		it.LotPrice = ed.Value * float64(it.LotSize)
	case EditLotPrice:
		it.LotPrice = ed.Value
		if it.LotSize > 0 {
			it.UnitPrice = ed.Value / float64(it.LotSize)
		}
	}
	return it
}

func parseLots(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
