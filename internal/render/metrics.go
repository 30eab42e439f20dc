// Package render serializes layout instructions into PDF bytes. It owns
// the mapping from logical font tokens to concrete fonts, and exposes
// that mapping to the layout engine through Metrics so width
// calculations and final rendering always agree.
package render

import (
	"sync"

	"github.com/jung-kurt/gofpdf"

	"invoicer/internal/layout"
)

// fontSpec binds a logical font token to a concrete core font.
type fontSpec struct {
	family string
	style  string
	size   float64 // points
}

// fontSpecs is the single source of font truth, shared by Metrics and
// Renderer.
var fontSpecs = map[layout.Font]fontSpec{
	layout.FontBody:    {family: "Helvetica", style: "", size: 10},
	layout.FontHeading: {family: "Helvetica", style: "B", size: 10},
	layout.FontTotal:   {family: "Helvetica", style: "B", size: 12},
}

// Metrics measures text using the same core-font tables the renderer
// draws with. It implements layout.FontMetrics and is safe for
// concurrent use.
type Metrics struct {
	mu  sync.Mutex
	doc *gofpdf.Fpdf
}

// NewMetrics returns a Metrics backed by a throwaway gofpdf document
// used only for measurement.
func NewMetrics() *Metrics {
	return &Metrics{doc: gofpdf.New("P", "mm", "A4", "")}
}

// TextWidth returns the rendered width of text in mm for the given font
// token. Unknown tokens fall back to the body font.
func (m *Metrics) TextWidth(text string, font layout.Font) float64 {
	spec, ok := fontSpecs[font]
	if !ok {
		spec = fontSpecs[layout.FontBody]
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc.SetFont(spec.family, spec.style, spec.size)
	return m.doc.GetStringWidth(text)
}
