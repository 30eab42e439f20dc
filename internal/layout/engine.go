// Package layout converts an invoice into an ordered sequence of draw
// instructions: positioned text runs spanning one or more pages. The
// engine owns column alignment and pagination but performs no I/O; text
// widths come from the FontMetrics shared with the document renderer.
package layout

import (
	"fmt"

	"invoicer/pkg/models"
)

const dateFormat = "Jan 2, 2006"

// Engine lays out invoices against a fixed Geometry. An Engine holds no
// per-render state and is safe for concurrent use.
type Engine struct {
	geom    Geometry
	metrics FontMetrics
}

// New returns an Engine for the given geometry and font metrics source.
// The geometry is validated once here.
func New(geom Geometry, metrics FontMetrics) (*Engine, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	return &Engine{geom: geom, metrics: metrics}, nil
}

// Layout produces the full instruction sequence for one invoice. On any
// error the returned slice is nil: no partial layouts escape.
func (e *Engine) Layout(inv *models.Invoice) ([]Instruction, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	s := &sheet{e: e, y: e.geom.MarginTop + e.geom.RowHeight}

	e.header(s, inv)
	e.columnHeader(s)

	for _, li := range inv.Items() {
		if err := e.lineItem(s, li); err != nil {
			return nil, err
		}
	}
	if err := e.totalsBlock(s, inv); err != nil {
		return nil, err
	}
	if err := e.notes(s, inv.Notes); err != nil {
		return nil, err
	}
	return s.out, nil
}

// header emits the page-1 header block: company identity, invoice number
// and dates, and the bill-to section. Empty company fields are skipped.
func (e *Engine) header(s *sheet, inv *models.Invoice) {
	type line struct {
		text string
		font Font
	}
	lines := []line{{inv.Company.Name, FontHeading}}
	if inv.Company.ABN != "" {
		lines = append(lines, line{"A.B.N. " + inv.Company.ABN, FontBody})
	}
	if inv.Company.Address != "" {
		lines = append(lines, line{inv.Company.Address, FontBody})
	}
	if inv.Company.Phone != "" {
		lines = append(lines, line{"Ph: " + inv.Company.Phone, FontBody})
	}
	lines = append(lines,
		line{"", FontBody},
		line{"Invoice #" + inv.Number, FontHeading},
		line{"Date: " + inv.IssueDate.Format(dateFormat), FontBody},
		line{"Due Date: " + inv.DueDate.Format(dateFormat), FontBody},
		line{"", FontBody},
		line{"Bill To:", FontHeading},
		line{inv.Customer.Name, FontBody},
	)
	if inv.Customer.Address != "" {
		lines = append(lines, line{inv.Customer.Address, FontBody})
	}
	if inv.Customer.ContactPerson != "" {
		lines = append(lines, line{"Attn - " + inv.Customer.ContactPerson, FontBody})
	}
	lines = append(lines, line{"", FontBody})

	for _, l := range lines {
		if l.text != "" {
			s.textLeft(e.geom.MarginLeft, l.text, l.font)
		}
		s.advance()
	}
}

// columnHeader emits the line-item column labels. Numeric column labels
// are right-aligned exactly like the values below them.
func (e *Engine) columnHeader(s *sheet) {
	s.textLeft(e.geom.Description.Left, "Description", FontHeading)
	s.textRight(e.geom.Quantity, "Qty", FontHeading)
	s.textRight(e.geom.UnitPrice, "Unit Price", FontHeading)
	s.textRight(e.geom.LineTotal, "Amount", FontHeading)
	s.advance()
}

// lineItem emits one item. The wrapped description rows are kept
// together when they fit on one page: if they do not all fit, the whole
// item moves to a new page under a repeated column header. An item
// taller than a full page cannot be kept together; its overflow rows
// flow across further pages, each under its own column header, so no
// row is ever placed past the bottom margin.
func (e *Engine) lineItem(s *sheet, li models.LineItem) error {
	lines := wrapText(li.Description, e.geom.Description.Width(), e.metrics, FontBody)
	if !s.fits(len(lines)) {
		if err := s.newPage(); err != nil {
			return err
		}
		e.columnHeader(s)
	}

	s.textLeft(e.geom.Description.Left, lines[0], FontBody)
	s.textRight(e.geom.Quantity, li.Quantity.StringFixed(2), FontBody)
	s.textRight(e.geom.UnitPrice, li.UnitPrice.Format(), FontBody)
	s.textRight(e.geom.LineTotal, li.Total().Format(), FontBody)
	s.advance()

	for _, overflow := range lines[1:] {
		if !s.fits(1) {
			if err := s.newPage(); err != nil {
				return err
			}
			e.columnHeader(s)
		}
		s.textLeft(e.geom.Description.Left, overflow, FontBody)
		s.advance()
	}
	return nil
}

// totalsBlock emits subtotal, tax and grand total. The three rows are
// never split across pages; a page holding only the totals block gets no
// column header because it contains no line items.
func (e *Engine) totalsBlock(s *sheet, inv *models.Invoice) error {
	switch {
	case s.fits(4):
		s.advance() // separator row between items and totals
	case s.fits(3):
		// No room for the separator, but the block itself fits.
	default:
		if err := s.newPage(); err != nil {
			return err
		}
	}

	tot := inv.Totals()
	taxLabel := fmt.Sprintf("Tax (%s%%):", inv.TaxRate.StringFixed(2))

	s.textRight(e.geom.UnitPrice, "Subtotal:", FontBody)
	s.textRight(e.geom.LineTotal, tot.Subtotal.Format(), FontBody)
	s.advance()

	s.textRight(e.geom.UnitPrice, taxLabel, FontBody)
	s.textRight(e.geom.LineTotal, tot.Tax.Format(), FontBody)
	s.advance()

	s.textRight(e.geom.UnitPrice, "Total:", FontTotal)
	s.textRight(e.geom.LineTotal, tot.Total.Format(), FontTotal)
	s.advance()
	return nil
}

// notes emits the free-text notes section below the totals, wrapped to
// the full content width. Notes flow across pages line by line.
func (e *Engine) notes(s *sheet, notes string) error {
	if notes == "" {
		return nil
	}
	width := e.geom.PageWidth - e.geom.MarginLeft - e.geom.MarginRight
	lines := append([]string{"Notes:"}, wrapText(notes, width, e.metrics, FontBody)...)
	if s.fits(2) {
		s.advance()
	}
	for _, l := range lines {
		if !s.fits(1) {
			if err := s.newPage(); err != nil {
				return err
			}
		}
		s.textLeft(e.geom.MarginLeft, l, FontBody)
		s.advance()
	}
	return nil
}

// fitsEpsilon absorbs float error so a geometry sized for exactly N rows
// actually fits N rows.
const fitsEpsilon = 1e-6

// sheet is the per-render cursor: the instruction list built so far plus
// the current page and baseline position.
type sheet struct {
	e    *Engine
	out  []Instruction
	page int
	y    float64
}

// fits reports whether n more rows fit on the current page.
func (s *sheet) fits(n int) bool {
	bottom := s.e.geom.PageHeight - s.e.geom.MarginBottom
	return s.y+float64(n-1)*s.e.geom.RowHeight <= bottom+fitsEpsilon
}

// newPage moves the cursor to the top of a fresh page, enforcing the
// configured page cap.
func (s *sheet) newPage() error {
	if max := s.e.geom.MaxPages; max > 0 && s.page+2 > max {
		return fmt.Errorf("%w: cap %d pages", ErrPageLimitExceeded, max)
	}
	s.page++
	s.y = s.e.geom.MarginTop + s.e.geom.RowHeight
	return nil
}

func (s *sheet) advance() { s.y += s.e.geom.RowHeight }

// textLeft emits text with its left edge at x on the current baseline.
func (s *sheet) textLeft(x float64, text string, f Font) {
	s.out = append(s.out, Instruction{
		Page: s.page, X: x, Y: s.y, Align: AlignLeft, Text: text, Font: f,
	})
}

// textRight emits text right-aligned to the column's right boundary. The
// x coordinate is the boundary minus the measured width of this exact
// string — never a fixed offset — so values of any digit count share one
// right edge.
func (s *sheet) textRight(col Column, text string, f Font) {
	x := col.Right - s.e.metrics.TextWidth(text, f)
	s.out = append(s.out, Instruction{
		Page: s.page, X: x, Y: s.y, Align: AlignRight, Text: text, Font: f,
	})
}
