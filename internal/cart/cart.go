package cart

// Package cart implements the cart aggregator: a mapping of line ids to
// display names and quantities. Pricing lives in the checkout package;
// the aggregator only tracks what the customer picked.

import (
	"regexp"
	"strings"
)

// Line is one cart entry. A quantity of zero is legal: decrementing to
// zero keeps the line visible so the storefront can show it greyed out
// rather than dropping it.
type Line struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Aggregator holds cart lines in insertion order.
type Aggregator struct {
	lines []Line
}

func NewAggregator(lines []Line) *Aggregator {
	kept := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ID == "" || line.Qty < 0 {
			continue
		}
		kept = append(kept, line)
	}
	return &Aggregator{lines: kept}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a line id from a display name.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Add increments the quantity of an existing line, or inserts a new line
// at quantity 1. When id is empty it defaults to a slug of the name.
func (a *Aggregator) Add(name, id string) {
	key := id
	if key == "" {
		key = Slugify(name)
	}
	for i := range a.lines {
		if a.lines[i].ID == key {
			a.lines[i].Qty++
			return
		}
	}
	a.lines = append(a.lines, Line{ID: key, Name: name, Qty: 1})
}

// SetQuantity sets a line's quantity, clamped at zero. Unknown ids are
// ignored.
func (a *Aggregator) SetQuantity(id string, qty int) {
	if qty < 0 {
		qty = 0
	}
	for i := range a.lines {
		if a.lines[i].ID == id {
			a.lines[i].Qty = qty
			return
		}
	}
}

// Increment adds one to a line's quantity.
func (a *Aggregator) Increment(id string) {
	for i := range a.lines {
		if a.lines[i].ID == id {
			a.lines[i].Qty++
			return
		}
	}
}

// Decrement subtracts one from a line's quantity, flooring at zero. The
// line is kept even at zero.
func (a *Aggregator) Decrement(id string) {
	for i := range a.lines {
		if a.lines[i].ID == id {
			if a.lines[i].Qty > 0 {
				a.lines[i].Qty--
			}
			return
		}
	}
}

// Clear removes all lines.
func (a *Aggregator) Clear() {
	a.lines = nil
}

// Count returns the sum of all line quantities.
func (a *Aggregator) Count() int {
	total := 0
	for _, line := range a.lines {
		total += line.Qty
	}
	return total
}

// Lines returns a copy of the cart lines in insertion order.
func (a *Aggregator) Lines() []Line {
	out := make([]Line, len(a.lines))
	copy(out, a.lines)
	return out
}
