package cart

import (
	"fmt"

	"smartboutique/internal/catalog"
)

// Line is one cart entry: a product reference plus a positive quantity. The
// name and unit price are captured at add time so the cart renders without a
// catalog round trip.
type Line struct {
	ProductID int64
	Nombre    string
	Precio    float64
	Cantidad  int
}

// Subtotal returns price times quantity for the line.
func (l Line) Subtotal() float64 {
	return l.Precio * float64(l.Cantidad)
}

// Cart is an ordered sequence of lines with at most one line per product.
// Insertion order is preserved for new items; existing items are updated in
// place. The version counter increments on every mutation so derived state
// (the style advisory) can detect staleness.
type Cart struct {
	lines   []Line
	version uint64
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. No stock limit is enforced here; the
// server rejects overdrawn orders at checkout.
func (c *Cart) Add(p catalog.Product) {
	c.version++
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Cantidad++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Nombre:    p.Nombre,
		Precio:    float64(p.Precio),
		Cantidad:  1,
	})
}

// Remove deletes the line for the product id. No-op if absent.
func (c *Cart) Remove(productID int64) {
	c.version++
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity. A quantity below 1 removes the
// line entirely. No-op if the product id is absent.
func (c *Cart) SetQuantity(productID int64, qty int) {
	if qty < 1 {
		c.Remove(productID)
		return
	}
	c.version++
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Cantidad = qty
			return
		}
	}
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.version++
	c.lines = nil
}

// Restore replaces the cart contents, used when loading persisted state.
func (c *Cart) Restore(lines []Line) {
	c.version++
	c.lines = append([]Line(nil), lines...)
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Total returns the sum of price*quantity over all lines with fixed
// two-decimal precision, "0.00" for an empty cart.
func (c *Cart) Total() string {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return fmt.Sprintf("%.2f", total)
}

// ItemCount returns the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	var count int
	for _, l := range c.lines {
		count += l.Cantidad
	}
	return count
}

// Version returns the mutation counter.
func (c *Cart) Version() uint64 {
	return c.version
}
