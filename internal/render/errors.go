package render

import "errors"

// ErrRenderIO is returned when the PDF output cannot be written to its
// destination. The write is not retried; the caller decides.
var ErrRenderIO = errors.New("render output failed")
