// Package models holds the domain types shared between the store, the
// CLI commands and the render pipeline.
//
// Monetary amounts are fixed-point money.Money values (integer cents);
// quantities and tax rates are shopspring decimals. Invoice totals are
// always derived from the current line items, never stored: the line
// total is recomputed from quantity and unit price on every read, so a
// stored amount can never drift from its inputs.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"invoicer/internal/money"
)

// LineItem is one billable row of an invoice.
type LineItem struct {
	Description string          // Free text, may wrap over several rows when printed
	Quantity    decimal.Decimal // Non-negative, two decimal places
	UnitPrice   money.Money     // Price per unit in the invoice currency
}

// Total returns round(quantity × unit price) in minor units, using
// round-half-to-even applied once.
func (li LineItem) Total() money.Money {
	return li.UnitPrice.MulDecimal(li.Quantity)
}

// Totals is the derived money block printed at the bottom of an invoice.
type Totals struct {
	Subtotal money.Money // Sum of line totals
	Tax      money.Money // round(subtotal × tax rate)
	Total    money.Money // Subtotal + Tax
}

// Invoice is a complete invoice: header fields plus the ordered line
// items. Item order is significant — it is the print order.
type Invoice struct {
	Number    string          // e.g. "JM076": customer code + sequence
	Company   Company         // Issuing business
	Customer  Customer        // Billed party
	IssueDate time.Time       // Date the invoice was issued
	DueDate   time.Time       // Payment due date
	Currency  string          // Currency code all line items must share
	TaxRate   decimal.Decimal // Tax rate as a percentage, e.g. 10 for 10%
	Notes     string          // Free-text notes printed after the totals
	Paid      bool            // Payment status flag

	items []LineItem
}

// Items returns a copy of the line items in print order.
func (inv *Invoice) Items() []LineItem {
	out := make([]LineItem, len(inv.items))
	copy(out, inv.items)
	return out
}

// ItemCount returns the number of line items.
func (inv *Invoice) ItemCount() int { return len(inv.items) }

// AddItem appends a line item. It fails with ErrInvalidLineItem if the
// quantity is negative or the unit price currency does not match the
// invoice currency.
func (inv *Invoice) AddItem(li LineItem) error {
	if li.Quantity.IsNegative() {
		return fmt.Errorf("%w: negative quantity %s", ErrInvalidLineItem, li.Quantity)
	}
	if li.UnitPrice.Currency() != inv.Currency {
		return fmt.Errorf("%w: item currency %q, invoice currency %q",
			ErrInvalidLineItem, li.UnitPrice.Currency(), inv.Currency)
	}
	inv.items = append(inv.items, li)
	return nil
}

// RemoveItem deletes the line item at index i, preserving the order of
// the remaining items.
func (inv *Invoice) RemoveItem(i int) error {
	if i < 0 || i >= len(inv.items) {
		return fmt.Errorf("%w: index %d of %d items", ErrInvalidLineItem, i, len(inv.items))
	}
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return nil
}

// Validate checks every line item against the invoice currency. Items
// added through AddItem always pass; this guards invoices whose Currency
// field was changed after items were added.
func (inv *Invoice) Validate() error {
	for i, li := range inv.items {
		if li.Quantity.IsNegative() {
			return fmt.Errorf("%w: item %d has negative quantity %s", ErrInvalidLineItem, i, li.Quantity)
		}
		if li.UnitPrice.Currency() != inv.Currency {
			return fmt.Errorf("%w: item %d currency %q, invoice currency %q",
				ErrInvalidLineItem, i, li.UnitPrice.Currency(), inv.Currency)
		}
	}
	return nil
}

// Totals derives subtotal, tax amount and grand total from the current
// line items and tax rate. The computation is idempotent: calling it
// twice without mutation yields identical values. An invoice with zero
// line items yields all-zero totals.
func (inv *Invoice) Totals() Totals {
	subtotal := money.Zero(inv.Currency)
	for _, li := range inv.items {
		// Items are currency-checked on insert, so Add cannot fail here.
		subtotal, _ = subtotal.Add(li.Total())
	}
	tax := subtotal.MulDecimal(inv.TaxRate.Div(decimal.NewFromInt(100)))
	total, _ := subtotal.Add(tax)
	return Totals{Subtotal: subtotal, Tax: tax, Total: total}
}
