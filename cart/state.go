package cart

// State is a snapshot of the cart. Total and ItemCount are always derived
// from Items.
type State struct {
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// Empty reports whether the cart has no line items.
func (s State) Empty() bool {
	return len(s.Items) == 0
}

// recompute derives total and item count with a full pass over items.
// Carts hold tens of lines, so nothing is maintained incrementally.
func recompute(items []LineItem) (total float64, count int) {
	for _, it := range items {
		total += it.Product.Price * float64(it.Quantity)
		count += it.Quantity
	}
	return total, count
}

func newState(items []LineItem) State {
	if items == nil {
		items = []LineItem{}
	}
	total, count := recompute(items)
	return State{Items: items, Total: total, ItemCount: count}
}
