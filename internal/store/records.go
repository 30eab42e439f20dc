package store

import (
	"time"

	"invoicer/internal/money"
	"invoicer/pkg/models"
)

// customerRecord is the persisted shape of a customer.
type customerRecord struct {
	ID            string `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex;not null"`
	Address       string
	Phone         string
	ContactPerson string
	ContactPhone  string
	Email         string
	Code          string `gorm:"uniqueIndex;size:3;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (customerRecord) TableName() string { return "customers" }

func customerFromModel(c *models.Customer) *customerRecord {
	return &customerRecord{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		ContactPerson: c.ContactPerson,
		ContactPhone:  c.ContactPhone,
		Email:         c.Email,
		Code:          c.Code,
	}
}

func (r customerRecord) toModel() *models.Customer {
	return &models.Customer{
		ID:            r.ID,
		Name:          r.Name,
		Address:       r.Address,
		Phone:         r.Phone,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
		Email:         r.Email,
		Code:          r.Code,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// invoiceRecord is the persisted shape of an invoice header. Subtotal,
// tax and total are not stored: they are derived from the items.
type invoiceRecord struct {
	Number       string `gorm:"primaryKey"`
	CustomerCode string `gorm:"index;not null"`
	IssueDate    time.Time
	DueDate      time.Time
	Currency     string
	TaxRate      string // decimal as text, e.g. "10.00"
	Notes        string
	Paid         bool
	Items        []lineItemRecord `gorm:"foreignKey:InvoiceNumber;references:Number"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (invoiceRecord) TableName() string { return "invoices" }

// lineItemRecord is one persisted line item. Quantity is decimal text
// and the unit price is integer minor units; amounts never pass through
// floating point.
type lineItemRecord struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	InvoiceNumber  string `gorm:"index;not null"`
	Position       int    `gorm:"not null"` // print order
	Description    string
	Quantity       string // decimal as text, e.g. "2.50"
	UnitPriceCents int64
	Currency       string
}

func (lineItemRecord) TableName() string { return "invoice_items" }

// sequenceRecord tracks the last issued invoice number per customer code.
type sequenceRecord struct {
	Code       string `gorm:"primaryKey"`
	LastNumber int
}

func (sequenceRecord) TableName() string { return "invoice_sequences" }

func invoiceFromModel(inv *models.Invoice) (*invoiceRecord, error) {
	rec := &invoiceRecord{
		Number:       inv.Number,
		CustomerCode: inv.Customer.Code,
		IssueDate:    inv.IssueDate,
		DueDate:      inv.DueDate,
		Currency:     inv.Currency,
		TaxRate:      inv.TaxRate.StringFixed(2),
		Notes:        inv.Notes,
		Paid:         inv.Paid,
	}
	for i, li := range inv.Items() {
		rec.Items = append(rec.Items, lineItemRecord{
			InvoiceNumber:  inv.Number,
			Position:       i,
			Description:    li.Description,
			Quantity:       li.Quantity.StringFixed(2),
			UnitPriceCents: li.UnitPrice.Amount(),
			Currency:       li.UnitPrice.Currency(),
		})
	}
	return rec, nil
}

func (r invoiceRecord) toModel(customer *models.Customer) (*models.Invoice, error) {
	rate, err := parseQuantity(r.TaxRate)
	if err != nil {
		return nil, err
	}
	inv := &models.Invoice{
		Number:    r.Number,
		Customer:  *customer,
		IssueDate: r.IssueDate,
		DueDate:   r.DueDate,
		Currency:  r.Currency,
		TaxRate:   rate,
		Notes:     r.Notes,
		Paid:      r.Paid,
	}
	for _, item := range r.Items {
		qty, err := parseQuantity(item.Quantity)
		if err != nil {
			return nil, err
		}
		if err := inv.AddItem(models.LineItem{
			Description: item.Description,
			Quantity:    qty,
			UnitPrice:   money.New(item.UnitPriceCents, item.Currency),
		}); err != nil {
			return nil, err
		}
	}
	return inv, nil
}
