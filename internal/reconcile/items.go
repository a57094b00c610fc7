package reconcile

import (
	"math"

	"github.com/dmarkovic/racun-sync/internal/domain"
)

// parseReceiptItems parses the embedded line-item list of a receipt row.
// The list policy is keep-what's-valid: an element that is not an object
// with a string name is dropped, not the whole list. A non-array value and
// a list with no surviving elements both yield nil, which the caller treats
// as "omit the items attribute".
func parseReceiptItems(v any) []domain.ReceiptItem {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	items := make([]domain.ReceiptItem, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		name, ok := obj["name"].(string)
		if !ok {
			continue
		}

		qty := floatOr(obj["quantity"], 1)
		price := floatOr(obj["price"], 0)

		total, ok := coerceFloat(obj["total"])
		if !ok {
			total = qty * price
			if math.IsNaN(total) || math.IsInf(total, 0) {
				total = 0
			}
		}

		items = append(items, domain.ReceiptItem{
			Name:     name,
			Quantity: qty,
			Price:    price,
			Total:    total,
		})
	}

	if len(items) == 0 {
		return nil
	}
	return items
}

// parseConsumption parses the embedded consumption reading of a bill row.
// Unlike line items this is all-or-nothing: a reading without a numeric
// value and a string unit is not usable for aggregation, so any shape
// problem discards the whole reading rather than populating it partially.
func parseConsumption(v any) *domain.HouseholdConsumption {
	obj, ok := v.(map[string]any)
	if !ok {
		// Arrays and scalars decode to other Go types and fail this
		// assertion, which is exactly the non-object rejection rule.
		return nil
	}
	value, ok := coerceFloat(obj["value"])
	if !ok {
		return nil
	}
	unit, ok := obj["unit"].(string)
	if !ok {
		return nil
	}
	return &domain.HouseholdConsumption{
		Value: value,
		Unit:  domain.NormalizeConsumptionUnit(unit),
	}
}
