package models

import "math"

// OrderLine is one ordered product with the price captured at order time.
// Later catalog price changes never alter lines already on a table.
type OrderLine struct {
	Product string  `json:"product"`
	Price   float64 `json:"price"`
}

// Table accumulates order lines until it is closed. A VIP table carries a
// flat service fee that Total adds exactly once on top of the line sum.
type Table struct {
	Name       string      `json:"name"`
	IsVIP      bool        `json:"is_vip"`
	ServiceFee float64     `json:"service_fee"`
	Orders     []OrderLine `json:"orders"`
}

// AddOrder appends a line to the end of the sequence. Ordering the same
// product twice yields two lines; aggregation happens at display time.
func (t *Table) AddOrder(product string, price float64) {
	t.Orders = append(t.Orders, OrderLine{Product: product, Price: price})
}

// RemoveOrder removes the first line matching product, scanning from the
// start. It reports whether a line was removed; removing from an empty or
// non-matching table is a no-op.
func (t *Table) RemoveOrder(product string) bool {
	for i, line := range t.Orders {
		if line.Product == product {
			t.Orders = append(t.Orders[:i], t.Orders[i+1:]...)
			return true
		}
	}
	return false
}

// Total sums the stored line prices and adds the service fee once.
func (t *Table) Total() float64 {
	var total float64
	for _, line := range t.Orders {
		total += line.Price
	}
	return total + t.ServiceFee
}

// ApplyDiscount rewrites every stored line price as price*factor rounded
// to two decimals. Applying it twice compounds. The service fee is not
// discounted.
func (t *Table) ApplyDiscount(factor float64) {
	for i := range t.Orders {
		t.Orders[i].Price = roundCurrency(t.Orders[i].Price * factor)
	}
}

// Clear empties the order sequence. Used on table close.
func (t *Table) Clear() {
	t.Orders = nil
}

// Occupied reports whether the table has at least one order line.
func (t *Table) Occupied() bool {
	return len(t.Orders) > 0
}

// GroupedOrderLine is the display-time aggregation of identical products.
type GroupedOrderLine struct {
	Product   string  `json:"product"`
	UnitPrice float64 `json:"unit_price"`
	Count     int     `json:"count"`
	LineTotal float64 `json:"line_total"`
}

// GroupedLines aggregates order lines by product name in first-seen
// order. Storage stays ungrouped; grouping is presentation only.
func (t *Table) GroupedLines() []GroupedOrderLine {
	grouped := make([]GroupedOrderLine, 0, len(t.Orders))
	index := make(map[string]int, len(t.Orders))
	for _, line := range t.Orders {
		if i, ok := index[line.Product]; ok {
			grouped[i].Count++
			grouped[i].LineTotal = roundCurrency(grouped[i].LineTotal + line.Price)
			continue
		}
		index[line.Product] = len(grouped)
		grouped = append(grouped, GroupedOrderLine{
			Product:   line.Product,
			UnitPrice: line.Price,
			Count:     1,
			LineTotal: line.Price,
		})
	}
	return grouped
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
