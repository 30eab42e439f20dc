package models

import "time"

// Company identifies the issuing business printed at the top of every
// invoice. It comes from configuration, not from the store.
type Company struct {
	Name    string // Registered business name
	ABN     string // Australian Business Number (or equivalent registration)
	Address string // Postal address, single line
	Phone   string // Contact phone number
}

// Customer is a billable party.
type Customer struct {
	ID            string    // Unique customer identifier (UUID)
	Name          string    // Customer/business name
	Address       string    // Billing address, single line
	Phone         string    // Main phone number
	ContactPerson string    // Accounts contact, printed as "Attn - ..."
	ContactPhone  string    // Contact's direct phone
	Email         string    // Billing email
	Code          string    // 2-3 letter code used to build invoice numbers
	CreatedAt     time.Time // Record creation timestamp
	UpdatedAt     time.Time // Last update timestamp
}
