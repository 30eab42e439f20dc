package money

import "errors"

// ErrIncompatibleCurrency is returned when an arithmetic operation mixes
// values of different currencies.
var ErrIncompatibleCurrency = errors.New("incompatible currency")
