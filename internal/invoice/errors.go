package invoice

import (
	"errors"
	"fmt"
)

// RenderError wraps a render-pipeline failure with the operation and the
// invoice it concerned. The underlying error is one of the pipeline's
// error kinds: models.ErrInvalidLineItem, money.ErrIncompatibleCurrency,
// layout.ErrPageLimitExceeded or render.ErrRenderIO.
type RenderError struct {
	// Op is the operation that failed (e.g. "Render", "RenderFile").
	Op string

	// InvoiceNumber identifies the invoice being rendered.
	InvoiceNumber string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("invoice: %s failed for %s: %v", e.Op, e.InvoiceNumber, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *RenderError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func wrapRender(op, number string, err error) error {
	if err == nil {
		return nil
	}
	return &RenderError{Op: op, InvoiceNumber: number, Err: err}
}
