package invoice

import (
	"fmt"
	"strings"

	"invoicer/pkg/models"
)

const textDateFormat = "Jan 2, 2006"

// FormatText renders an invoice as plain text for the `invoice view`
// command. Monetary columns are right-justified with the same
// fixed-width formatting the PDF totals use.
func FormatText(inv *models.Invoice) string {
	var b strings.Builder

	if inv.Company.Name != "" {
		fmt.Fprintln(&b, inv.Company.Name)
	}
	if inv.Company.ABN != "" {
		fmt.Fprintf(&b, "A.B.N. %s\n", inv.Company.ABN)
	}
	if inv.Company.Address != "" {
		fmt.Fprintln(&b, inv.Company.Address)
	}
	if inv.Company.Phone != "" {
		fmt.Fprintf(&b, "Ph: %s\n", inv.Company.Phone)
	}
	fmt.Fprintf(&b, "Invoice #%s\n", inv.Number)
	fmt.Fprintf(&b, "Date: %s\n", inv.IssueDate.Format(textDateFormat))
	fmt.Fprintf(&b, "Due Date: %s\n\n", inv.DueDate.Format(textDateFormat))

	fmt.Fprintln(&b, "Bill To:")
	fmt.Fprintln(&b, inv.Customer.Name)
	if inv.Customer.Address != "" {
		fmt.Fprintln(&b, inv.Customer.Address)
	}
	if inv.Customer.ContactPerson != "" {
		fmt.Fprintf(&b, "Attn - %s\n", inv.Customer.ContactPerson)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "%-3s %-40s %10s %14s %14s\n", "#", "Description", "Qty", "Unit Price", "Amount")
	for i, li := range inv.Items() {
		fmt.Fprintf(&b, "%-3d %-40s %10s %s %s\n",
			i+1,
			li.Description,
			li.Quantity.StringFixed(2),
			li.UnitPrice.PadLeft(14),
			li.Total().PadLeft(14))
	}

	tot := inv.Totals()
	fmt.Fprintf(&b, "\n%59s %s\n", "Subtotal:", tot.Subtotal.PadLeft(14))
	fmt.Fprintf(&b, "%59s %s\n", fmt.Sprintf("Tax (%s%%):", inv.TaxRate.StringFixed(2)), tot.Tax.PadLeft(14))
	fmt.Fprintf(&b, "%59s %s\n", "Total:", tot.Total.PadLeft(14))

	if inv.Notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", inv.Notes)
	}
	status := "UNPAID"
	if inv.Paid {
		status = "PAID"
	}
	fmt.Fprintf(&b, "\nStatus: %s\n", status)
	return b.String()
}
