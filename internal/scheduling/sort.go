package scheduling

import "sort"

// SortOrders returns a copy of orders ranked High before Normal before Low,
// then by earlier due date. Ties keep their input order, so repeated runs
// over the same input place orders identically.
func SortOrders(orders []Order) []Order {
	sorted := make([]Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if ra, rb := a.Priority.rank(), b.Priority.rank(); ra != rb {
			return ra < rb
		}
		switch {
		case a.DueDate.IsZero() && b.DueDate.IsZero():
			return false
		case a.DueDate.IsZero():
			return false
		case b.DueDate.IsZero():
			return true
		}
		return a.DueDate.Before(b.DueDate)
	})
	return sorted
}
