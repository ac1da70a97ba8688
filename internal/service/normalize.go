package service

import (
	"html"
	"strconv"
	"strings"

	"floorquote/internal/model"
)

// OrderItemInput is one loosely-shaped cart line as submitted by the store
// frontend. Numeric-ish fields are decoded as interface{} because callers
// send numbers, numeric strings, or nothing at all.
type OrderItemInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Qty         interface{} `json:"qty"`
	Quantity    interface{} `json:"quantity"`
	UnitPrice   interface{} `json:"unitPrice"`
	LineTotal   interface{} `json:"lineTotal"`
}

// OrderCustomerInput is the loosely-shaped customer block of a cart submission.
type OrderCustomerInput struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// OrderRequest is the store cart entry payload.
type OrderRequest struct {
	Items    []OrderItemInput   `json:"items"`
	Customer OrderCustomerInput `json:"customer"`
	Total    interface{}        `json:"total"`
}

// NormalizeOrder turns a loose cart submission into a strongly-typed order.
// Coercion rules:
//   - qty comes from qty, falling back to quantity, defaulting to 0;
//     numeric strings are accepted
//   - unitPrice is trusted only if already numeric, otherwise unknown
//   - lineTotal is taken as supplied if numeric, else derived as
//     unitPrice*qty when unitPrice is known, else unknown
//   - total is the caller-supplied value if numeric, else the sum of known
//     line totals, else unknown
//   - the display name falls back name -> firstName lastName -> "Unknown"
func NormalizeOrder(req OrderRequest) model.Order {
	items := make([]model.OrderItem, 0, len(req.Items))
	var sum float64
	haveSum := false

	for _, in := range req.Items {
		qtyRaw := in.Qty
		if qtyRaw == nil {
			qtyRaw = in.Quantity
		}
		qty := coerceNumber(qtyRaw)

		item := model.OrderItem{
			Name:        in.Name,
			Description: in.Description,
			Qty:         qty,
			UnitPrice:   strictNumber(in.UnitPrice),
		}

		if lt := strictNumber(in.LineTotal); lt != nil {
			item.LineTotal = lt
		} else if item.UnitPrice != nil {
			total := *item.UnitPrice * qty
			item.LineTotal = &total
		}

		if item.LineTotal != nil {
			sum += *item.LineTotal
			haveSum = true
		}

		items = append(items, item)
	}

	order := model.Order{
		Customer: model.OrderCustomer{
			Name:  customerDisplayName(req.Customer),
			Email: strings.ToLower(strings.TrimSpace(req.Customer.Email)),
			Phone: strings.TrimSpace(req.Customer.Phone),
			Notes: req.Customer.Notes,
		},
		Items:  items,
		Source: model.OrderSourceStore,
	}

	if t := strictNumber(req.Total); t != nil {
		order.Total = t
	} else if haveSum {
		order.Total = &sum
	}

	return order
}

// customerDisplayName applies the name fallback chain.
func customerDisplayName(c OrderCustomerInput) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	full := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if full != "" {
		return full
	}
	return "Unknown"
}

// strictNumber returns the value only if it is already a JSON number.
func strictNumber(v interface{}) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

// coerceNumber converts numbers and numeric strings, defaulting to 0.
func coerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

// escapeText HTML-escapes user-supplied text and converts newlines to line
// breaks, so free text can be interpolated into mail bodies safely.
func escapeText(s string) string {
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
