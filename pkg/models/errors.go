package models

import "errors"

// ErrInvalidLineItem is returned when a line item has a negative quantity
// or its unit price currency does not match the invoice currency.
var ErrInvalidLineItem = errors.New("invalid line item")
