package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/shopkeeper"
	"github.com/etnz/shopkeeper/date"
)

// orderDocument is the JSON view of an order queried by JSONPath filters.
func orderDocument(o shopkeeper.Order) map[string]interface{} {
	return map[string]interface{}{
		"invoice":  o.Invoice,
		"date":     o.Date.String(),
		"customer": o.CustomerName,
		"email":    o.CustomerEmail,
		"item":     o.Item,
		"quantity": float64(o.Quantity),
		"price":    o.UnitPrice.Decimal().InexactFloat64(),
		"gst":      o.Tax.Decimal().InexactFloat64(),
		"total":    o.Total.Decimal().InexactFloat64(),
	}
}

// queryLanguage is JSONPath with the arithmetic, comparison and logic operators
// needed in filters.
var queryLanguage = gval.NewLanguage(gval.Full(), jsonpath.Language())

// filterOrders keeps the orders matched by the JSONPath query q.
//
// q is either a full JSONPath applied to a one element array, like
// `$[?(@.quantity > 2)]`, or a bare filter expression like `@.item == "Shoes"`.
// An order is kept when the query returns a non empty result.
func filterOrders(orders []shopkeeper.Order, q string) ([]shopkeeper.Order, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return orders, nil
	}
	if !strings.HasPrefix(q, "$") {
		q = "$[?(" + q + ")]"
	}
	eval, err := queryLanguage.NewEvaluable(q)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", q, err)
	}

	var kept []shopkeeper.Order
	for _, o := range orders {
		v, err := eval(context.Background(), []interface{}{orderDocument(o)})
		if err != nil {
			// jsonpath reports unknown keys as errors, they simply do not match.
			continue
		}
		if matches(v) {
			kept = append(kept, o)
		}
	}
	return kept, nil
}

// because jsonpath is never clear about whether it returns a list of answers, or a single answer.
func matches(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case []interface{}:
		return len(v) > 0
	case bool:
		return v
	default:
		return true
	}
}

// dateRange returns the range selected by the period, start and end flags,
// or nil when none is set.
func dateRange(period, start, end string) (*date.Range, error) {
	if period == "" && start == "" && end == "" {
		return nil, nil
	}
	endDate := date.Today()
	if end != "" {
		d, err := date.Parse(end)
		if err != nil {
			return nil, fmt.Errorf("error parsing end date: %w", err)
		}
		endDate = d
	}

	if start != "" {
		startDate, err := date.Parse(start)
		if err != nil {
			return nil, fmt.Errorf("error parsing start date: %w", err)
		}
		r := date.Between(startDate, endDate)
		return &r, nil
	}
	if period == "" {
		period = "day"
	}
	p, err := date.ParsePeriod(period)
	if err != nil {
		return nil, fmt.Errorf("error parsing period: %w", err)
	}
	r := p.Range(endDate)
	return &r, nil
}
