// Package store persists customers, invoices and the per-customer
// invoice-number sequence in a local sqlite database.
//
// Stored records deliberately do not include derived amounts: line items
// are saved as quantity + unit price and the totals are recomputed by
// the model on every read.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"invoicer/internal/logger"
	"invoicer/internal/money"
	"invoicer/pkg/models"
)

var (
	// ErrNotFound is returned when a customer or invoice does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a customer name or code is already
	// taken.
	ErrDuplicate = errors.New("record already exists")
)

// firstSequenceNumber is where each customer's invoice numbering starts.
const firstSequenceNumber = 75

// Store is a sqlite-backed repository for customers and invoices.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(
		&customerRecord{},
		&invoiceRecord{},
		&lineItemRecord{},
		&sequenceRecord{},
	); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db, log: logger.WithComponent("store")}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	return sqlDB.Close()
}

// AddCustomer inserts a new customer, assigning it an ID. Name and code
// must be unique.
func (s *Store) AddCustomer(c *models.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	rec := customerFromModel(c)

	var count int64
	if err := s.db.Model(&customerRecord{}).
		Where("name = ? OR code = ?", c.Name, c.Code).
		Count(&count).Error; err != nil {
		return fmt.Errorf("store: add customer: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: customer %q / code %q", ErrDuplicate, c.Name, c.Code)
	}
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("store: add customer: %w", err)
	}
	s.log.Info().Str("customer", c.Name).Str("code", c.Code).Msg("Customer added")
	return nil
}

// UpdateCustomer overwrites the stored customer with the same ID.
func (s *Store) UpdateCustomer(c *models.Customer) error {
	rec := customerFromModel(c)
	res := s.db.Model(&customerRecord{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":           rec.Name,
		"address":        rec.Address,
		"phone":          rec.Phone,
		"contact_person": rec.ContactPerson,
		"contact_phone":  rec.ContactPhone,
		"email":          rec.Email,
		"code":           rec.Code,
	})
	if res.Error != nil {
		return fmt.Errorf("store: update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: customer %s", ErrNotFound, c.ID)
	}
	return nil
}

// DeleteCustomer removes the customer with the given code and drops its
// invoice-number sequence.
func (s *Store) DeleteCustomer(code string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("code = ?", code).Delete(&customerRecord{})
		if res.Error != nil {
			return fmt.Errorf("store: delete customer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: customer code %s", ErrNotFound, code)
		}
		return tx.Where("code = ?", code).Delete(&sequenceRecord{}).Error
	})
}

// CustomerByCode returns the customer with the given code.
func (s *Store) CustomerByCode(code string) (*models.Customer, error) {
	var rec customerRecord
	err := s.db.Where("code = ?", code).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: customer code %s", ErrNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("store: customer by code: %w", err)
	}
	return rec.toModel(), nil
}

// ListCustomers returns all customers ordered by name.
func (s *Store) ListCustomers() ([]models.Customer, error) {
	var recs []customerRecord
	if err := s.db.Order("name").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("store: list customers: %w", err)
	}
	out := make([]models.Customer, 0, len(recs))
	for _, r := range recs {
		out = append(out, *r.toModel())
	}
	return out, nil
}

// NextInvoiceNumber reserves and returns the next invoice number for the
// customer code, formatted CODE + zero-padded counter (e.g. "JM076").
// The first number issued for a code is 75.
func (s *Store) NextInvoiceNumber(code string) (string, error) {
	var number string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var seq sequenceRecord
		err := tx.Where("code = ?", code).First(&seq).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			seq = sequenceRecord{Code: code, LastNumber: firstSequenceNumber}
			if err := tx.Create(&seq).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			seq.LastNumber++
			if err := tx.Save(&seq).Error; err != nil {
				return err
			}
		}
		number = fmt.Sprintf("%s%03d", code, seq.LastNumber)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("store: next invoice number: %w", err)
	}
	return number, nil
}

// SaveInvoice inserts an invoice and its line items.
func (s *Store) SaveInvoice(inv *models.Invoice) error {
	rec, err := invoiceFromModel(inv)
	if err != nil {
		return err
	}
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("store: save invoice: %w", err)
	}
	return nil
}

// Invoice loads the invoice with the given number, items in print order.
// The Company field is left empty; it comes from configuration.
func (s *Store) Invoice(number string) (*models.Invoice, error) {
	var rec invoiceRecord
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Where("number = ?", number).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, number)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load invoice: %w", err)
	}

	customer, err := s.CustomerByCode(rec.CustomerCode)
	if err != nil {
		// The customer may have been removed after invoicing; keep the
		// invoice loadable with just the stored code.
		customer = &models.Customer{Code: rec.CustomerCode}
	}
	return rec.toModel(customer)
}

// InvoiceSummary is one row of the invoice listing.
type InvoiceSummary struct {
	Number       string
	CustomerCode string
	IssueDate    time.Time
	Total        money.Money
	Paid         bool
}

// ListInvoices returns summaries of all invoices, newest first. Totals
// are recomputed from the stored line items.
func (s *Store) ListInvoices() ([]InvoiceSummary, error) {
	var recs []invoiceRecord
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Order("created_at desc").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("store: list invoices: %w", err)
	}

	out := make([]InvoiceSummary, 0, len(recs))
	for _, r := range recs {
		inv, err := r.toModel(&models.Customer{Code: r.CustomerCode})
		if err != nil {
			return nil, err
		}
		out = append(out, InvoiceSummary{
			Number:       r.Number,
			CustomerCode: r.CustomerCode,
			IssueDate:    r.IssueDate,
			Total:        inv.Totals().Total,
			Paid:         r.Paid,
		})
	}
	return out, nil
}

// MarkPaid flags the invoice as paid.
func (s *Store) MarkPaid(number string) error {
	res := s.db.Model(&invoiceRecord{}).Where("number = ?", number).Update("paid", true)
	if res.Error != nil {
		return fmt.Errorf("store: mark paid: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: invoice %s", ErrNotFound, number)
	}
	return nil
}

// DeleteInvoice removes an invoice and its line items.
func (s *Store) DeleteInvoice(number string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_number = ?", number).Delete(&lineItemRecord{}).Error; err != nil {
			return fmt.Errorf("store: delete invoice items: %w", err)
		}
		res := tx.Where("number = ?", number).Delete(&invoiceRecord{})
		if res.Error != nil {
			return fmt.Errorf("store: delete invoice: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: invoice %s", ErrNotFound, number)
		}
		return nil
	})
}

func parseQuantity(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("store: corrupt quantity %q: %w", s, err)
	}
	return d, nil
}
