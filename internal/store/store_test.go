package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/money"
	"invoicer/internal/store"
	"invoicer/pkg/models"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return s
}

func acme() *models.Customer {
	return &models.Customer{
		Name:          "Acme Pty Ltd",
		Address:       "2 Sample Ave, Sydney NSW 2000",
		Phone:         "02-0000-0000",
		ContactPerson: "Jordan Lee",
		ContactPhone:  "0400-111222",
		Email:         "accounts@acme.example",
		Code:          "AC",
	}
}

func TestCustomerRoundTrip(t *testing.T) {
	s := openStore(t)

	c := acme()
	require.NoError(t, s.AddCustomer(c))
	require.NotEmpty(t, c.ID)

	got, err := s.CustomerByCode("AC")
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Email, got.Email)

	list, err := s.ListCustomers()
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestAddCustomerDuplicate(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.AddCustomer(acme()))

	dup := acme()
	dup.ID = ""
	require.ErrorIs(t, s.AddCustomer(dup), store.ErrDuplicate)
}

func TestAddCustomerClosedStoreSurfacesQueryError(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.AddCustomer(acme()))
	require.NoError(t, s.Close())

	// A failed duplicate-check query must surface, not read as "no
	// duplicates" and fall through to the insert.
	err := s.AddCustomer(&models.Customer{Name: "Other Co", Code: "OC"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrDuplicate)
	assert.ErrorContains(t, err, "store: add customer")
}

func TestUpdateCustomer(t *testing.T) {
	s := openStore(t)
	c := acme()
	require.NoError(t, s.AddCustomer(c))

	c.Phone = "02-9999-9999"
	require.NoError(t, s.UpdateCustomer(c))

	got, err := s.CustomerByCode("AC")
	require.NoError(t, err)
	assert.Equal(t, "02-9999-9999", got.Phone)

	missing := acme()
	missing.ID = "no-such-id"
	missing.Code = "ZZ"
	missing.Name = "Nobody"
	require.ErrorIs(t, s.UpdateCustomer(missing), store.ErrNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.AddCustomer(acme()))
	require.NoError(t, s.DeleteCustomer("AC"))

	_, err := s.CustomerByCode("AC")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.DeleteCustomer("AC"), store.ErrNotFound)
}

func TestNextInvoiceNumberSequence(t *testing.T) {
	s := openStore(t)

	first, err := s.NextInvoiceNumber("AC")
	require.NoError(t, err)
	assert.Equal(t, "AC075", first)

	second, err := s.NextInvoiceNumber("AC")
	require.NoError(t, err)
	assert.Equal(t, "AC076", second)

	// Sequences are independent per customer code.
	other, err := s.NextInvoiceNumber("ZZ")
	require.NoError(t, err)
	assert.Equal(t, "ZZ075", other)
}

func storedInvoice(t *testing.T, s *store.Store) *models.Invoice {
	t.Helper()
	c := acme()
	require.NoError(t, s.AddCustomer(c))

	number, err := s.NextInvoiceNumber(c.Code)
	require.NoError(t, err)

	inv := &models.Invoice{
		Number:    number,
		Customer:  *c,
		IssueDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Currency:  "AUD",
		TaxRate:   decimal.RequireFromString("10"),
		Notes:     "net 30",
	}
	require.NoError(t, inv.AddItem(models.LineItem{
		Description: "Weekly clean",
		Quantity:    decimal.RequireFromString("4.00"),
		UnitPrice:   money.New(15000, "AUD"),
	}))
	require.NoError(t, inv.AddItem(models.LineItem{
		Description: "Windows",
		Quantity:    decimal.RequireFromString("1.50"),
		UnitPrice:   money.New(8000, "AUD"),
	}))
	require.NoError(t, s.SaveInvoice(inv))
	return inv
}

func TestInvoiceRoundTripRecomputesTotals(t *testing.T) {
	s := openStore(t)
	saved := storedInvoice(t, s)

	got, err := s.Invoice(saved.Number)
	require.NoError(t, err)

	items := got.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Weekly clean", items[0].Description)
	assert.Equal(t, "Windows", items[1].Description)

	// Totals derive from the stored quantity and unit price, matching
	// the original model exactly.
	assert.Equal(t, saved.Totals(), got.Totals())
	assert.Equal(t, int64(72000), got.Totals().Subtotal.Amount())
}

func TestListInvoices(t *testing.T) {
	s := openStore(t)
	saved := storedInvoice(t, s)

	list, err := s.ListInvoices()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, saved.Number, list[0].Number)
	assert.Equal(t, "AC", list[0].CustomerCode)
	assert.Equal(t, int64(79200), list[0].Total.Amount()) // 72000 + 10% tax
	assert.False(t, list[0].Paid)
}

func TestMarkPaid(t *testing.T) {
	s := openStore(t)
	saved := storedInvoice(t, s)

	require.NoError(t, s.MarkPaid(saved.Number))
	got, err := s.Invoice(saved.Number)
	require.NoError(t, err)
	assert.True(t, got.Paid)

	require.ErrorIs(t, s.MarkPaid("XX999"), store.ErrNotFound)
}

func TestDeleteInvoice(t *testing.T) {
	s := openStore(t)
	saved := storedInvoice(t, s)

	require.NoError(t, s.DeleteInvoice(saved.Number))
	_, err := s.Invoice(saved.Number)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.DeleteInvoice(saved.Number), store.ErrNotFound)
}
