package billing

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownProduct is returned when an item references a product
	// that is not in the catalog snapshot.
	ErrUnknownProduct = errors.New("product not found in catalog")

	// ErrInsufficientStock is returned when a product cannot cover even
	// a single lot.
	ErrInsufficientStock = errors.New("insufficient stock for one lot")

	// ErrItemIndex is returned for out-of-range line positions.
	ErrItemIndex = errors.New("line item index out of range")
)

// Draft is the in-progress bill: an ordered line-item list plus the
// catalog snapshot it edits against. All methods are synchronous; totals
// are recomputed from scratch on demand rather than maintained
// incrementally.
type Draft struct {
	items   []Item
	catalog map[uuid.UUID]CatalogEntry
}

// NewDraft builds a draft over a catalog snapshot.
func NewDraft(entries []CatalogEntry) *Draft {
	catalog := make(map[uuid.UUID]CatalogEntry, len(entries))
	for _, e := range entries {
		catalog[e.ID] = e
	}
	return &Draft{catalog: catalog}
}

// NewDraftWith rebuilds a draft from an existing line list, for callers
// that keep the lines between requests and replay edits against a fresh
// catalog snapshot.
func NewDraftWith(entries []CatalogEntry, items []Item) *Draft {
	d := NewDraft(entries)
	d.items = make([]Item, len(items))
	copy(d.items, items)
	return d
}

// Add appends a new line for the product, seeded with exactly one lot at
// the catalog prices. The add is rejected, with the draft unchanged, when
// available stock cannot cover one lot.
func (d *Draft) Add(productID uuid.UUID) error {
	entry, ok := d.catalog[productID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	if entry.AvailableStock < entry.LotSize {
		return fmt.Errorf("%w: %s", ErrInsufficientStock, entry.Name)
	}

	d.items = append(d.items, Item{
		ProductID:   entry.ID,
		ProductName: entry.Name,
		LotSize:     entry.LotSize,
		Lots:        "1",
		Quantity:    entry.LotSize,
		UnitPrice:   entry.UnitPrice,
		LotPrice:    entry.LotPrice,
	})
	return nil
}

// Remove deletes the line at position i, compacting the list.
func (d *Draft) Remove(i int) error {
	if i < 0 || i >= len(d.items) {
		return ErrItemIndex
	}
	d.items = append(d.items[:i], d.items[i+1:]...)
	return nil
}

// Update applies one field edit to the line at position i. A lots edit
// snaps prices back to the catalog, so it is rejected when the product
// has vanished from the snapshot rather than resetting them to zero.
func (d *Draft) Update(i int, e Edit) error {
	if i < 0 || i >= len(d.items) {
		return ErrItemIndex
	}
	it := d.items[i]
	entry, ok := d.catalog[it.ProductID]
	if _, isLots := e.(EditLots); isLots && !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, it.ProductID)
	}
	d.items[i] = it.Apply(e, entry)
	return nil
}

// Items returns a copy of the current line list.
func (d *Draft) Items() []Item {
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

// Len reports the number of lines.
func (d *Draft) Len() int { return len(d.items) }

// Totals recomputes the bill totals for the current lines.
func (d *Draft) Totals(discount float64, tax TaxConfig) BillTotals {
	return ComputeTotals(d.items, discount, tax)
}
