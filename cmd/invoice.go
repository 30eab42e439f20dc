package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"invoicer/internal/invoice"
	"invoicer/internal/logger"
	"invoicer/internal/money"
	"invoicer/pkg/models"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Manage invoices",
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice for a customer",
	Long: `Create an invoice for a customer. Line items are given with repeated
--item flags as "description|quantity|unit price", with the unit price in
whole currency units (e.g. "Weekly clean|4|150.00"). The invoice number
is assigned from the customer's sequence.`,
	Example: `  invoicer invoice create --customer AC --due 2026-09-30 \
    --item "Weekly office clean|4|150.00" \
    --item "Window detail|1.5|80.00" \
    --tax-rate 10 --notes "Thanks for your business."`,
	RunE: runInvoiceCreate,
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all invoices",
	RunE:  runInvoiceList,
}

var invoiceViewCmd = &cobra.Command{
	Use:   "view [number]",
	Short: "Print an invoice as text",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceView,
}

var invoicePaidCmd = &cobra.Command{
	Use:   "paid [number]",
	Short: "Mark an invoice as paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoicePaid,
}

var invoiceDeleteCmd = &cobra.Command{
	Use:   "delete [number]",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceDelete,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoiceCreateCmd, invoiceListCmd, invoiceViewCmd, invoicePaidCmd, invoiceDeleteCmd)

	invoiceCreateCmd.Flags().String("customer", "", "Customer code")
	invoiceCreateCmd.Flags().StringArray("item", nil, `Line item as "description|quantity|unit price" (repeatable)`)
	invoiceCreateCmd.Flags().String("due", "", "Due date (YYYY-MM-DD, default 30 days from today)")
	invoiceCreateCmd.Flags().String("tax-rate", "", "Tax rate percentage (default from DEFAULT_TAX_RATE)")
	invoiceCreateCmd.Flags().String("currency", "", "Currency code (default from DEFAULT_CURRENCY)")
	invoiceCreateCmd.Flags().String("notes", "", "Free-text notes printed on the invoice")
	invoiceCreateCmd.MarkFlagRequired("customer")
}

// parseItem parses one --item value: "description|quantity|unit price".
// The unit price is whole currency units and must not carry more than
// two decimal places, so the conversion to minor units is exact.
func parseItem(raw, currency string) (models.LineItem, error) {
	parts := strings.SplitN(raw, "|", 3)
	if len(parts) != 3 {
		return models.LineItem{}, fmt.Errorf("item %q: want \"description|quantity|unit price\"", raw)
	}
	qty, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return models.LineItem{}, fmt.Errorf("item %q: bad quantity: %w", raw, err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return models.LineItem{}, fmt.Errorf("item %q: bad unit price: %w", raw, err)
	}
	cents := price.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return models.LineItem{}, fmt.Errorf("item %q: unit price has sub-cent precision", raw)
	}
	return models.LineItem{
		Description: strings.TrimSpace(parts[0]),
		Quantity:    qty,
		UnitPrice:   money.New(cents.IntPart(), currency),
	}, nil
}

func runInvoiceCreate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice")

	s, cfg, err := openStore()
	if err != nil {
		return err
	}

	code, _ := cmd.Flags().GetString("customer")
	code, err = validateCode(code)
	if err != nil {
		return err
	}
	customer, err := s.CustomerByCode(code)
	if err != nil {
		return err
	}

	currency, _ := cmd.Flags().GetString("currency")
	if currency == "" {
		currency = cfg.DefaultCurrency
	}
	rateText, _ := cmd.Flags().GetString("tax-rate")
	if rateText == "" {
		rateText = cfg.DefaultTaxRate
	}
	taxRate, err := decimal.NewFromString(rateText)
	if err != nil {
		return fmt.Errorf("bad tax rate %q: %w", rateText, err)
	}

	now := time.Now()
	due := now.AddDate(0, 0, 30)
	if dueText, _ := cmd.Flags().GetString("due"); dueText != "" {
		due, err = time.Parse("2006-01-02", dueText)
		if err != nil {
			return fmt.Errorf("bad due date %q: %w", dueText, err)
		}
		if !due.After(now) {
			return fmt.Errorf("due date %s is not in the future", dueText)
		}
	}

	number, err := s.NextInvoiceNumber(code)
	if err != nil {
		return err
	}
	notes, _ := cmd.Flags().GetString("notes")

	inv := &models.Invoice{
		Number:    number,
		Customer:  *customer,
		IssueDate: now,
		DueDate:   due,
		Currency:  currency,
		TaxRate:   taxRate,
		Notes:     notes,
	}

	items, _ := cmd.Flags().GetStringArray("item")
	for _, raw := range items {
		li, err := parseItem(raw, currency)
		if err != nil {
			return err
		}
		if err := inv.AddItem(li); err != nil {
			return err
		}
	}

	if err := s.SaveInvoice(inv); err != nil {
		return err
	}
	log.Info().
		Str("invoice", number).
		Str("customer", code).
		Int("items", inv.ItemCount()).
		Msg("Invoice created")
	fmt.Printf("Invoice %s created (%s)\n", number, inv.Totals().Total.Format())
	return nil
}

func runInvoiceList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	list, err := s.ListInvoices()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No invoices found.")
		return nil
	}
	for _, inv := range list {
		status := "UNPAID"
		if inv.Paid {
			status = "PAID"
		}
		fmt.Printf("%s - %s - %s - %s\n", inv.Number, inv.CustomerCode, inv.Total.Format(), status)
	}
	return nil
}

func runInvoiceView(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	inv, err := s.Invoice(args[0])
	if err != nil {
		return err
	}
	inv.Company = cfg.Company()
	fmt.Print(invoice.FormatText(inv))
	return nil
}

func runInvoicePaid(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	if err := s.MarkPaid(args[0]); err != nil {
		return err
	}
	fmt.Printf("Invoice %s marked as paid\n", args[0])
	return nil
}

func runInvoiceDelete(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	if err := s.DeleteInvoice(args[0]); err != nil {
		return err
	}
	fmt.Printf("Invoice %s deleted\n", args[0])
	return nil
}
