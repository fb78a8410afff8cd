package cart

import (
	"encoding/json"
	"strings"
)

// Encode serializes line items into the slot format: a JSON array of
// {id, product:{_id,name,price,image}, quantity, size, color, fabric}.
func Encode(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}

// Decode parses a slot. Missing, blank or malformed data is an empty cart,
// never an error. Decoded entries are re-keyed from their tuple, invalid
// entries are dropped, quantities are capped at MaxLineQuantity and
// duplicate tuples are merged in first-seen order.
func Decode(data []byte) []LineItem {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []LineItem{}
	}

	var raw []LineItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return []LineItem{}
	}
	return normalize(raw)
}

func normalize(src []LineItem) []LineItem {
	out := make([]LineItem, 0, len(src))
	index := make(map[string]int, len(src))

	for _, it := range src {
		if strings.TrimSpace(it.Product.ID) == "" || it.Quantity < 1 || it.Product.Price < 0 || !it.Variant().Valid() {
			continue
		}
		it.ID = Key(it.Product.ID, it.Variant())
		it.Quantity = clampQuantity(it.Quantity)

		if i, ok := index[it.ID]; ok {
			out[i].Quantity = addQuantity(out[i].Quantity, it.Quantity)
			continue
		}
		index[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}
