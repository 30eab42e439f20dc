package layout

import "fmt"

// Column is a horizontal band of the line-item table, in mm from the
// left page edge.
type Column struct {
	Left  float64
	Right float64
}

// Width returns the column width in mm.
func (c Column) Width() float64 { return c.Right - c.Left }

// Geometry is the fixed layout schema invoices are laid out against.
// All lengths are in mm; the y axis grows downward from the top edge,
// matching the renderer's coordinate system.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// RowHeight is the vertical advance per text row.
	RowHeight float64

	// The line-item column schema, left to right. Columns must not
	// overlap and the last column must end inside the right margin.
	Description Column
	Quantity    Column
	UnitPrice   Column
	LineTotal   Column

	// MaxPages caps the page count when > 0; 0 means unlimited.
	MaxPages int
}

// A4 returns the default portrait A4 geometry: 15mm side margins and a
// row height of 4.23mm, roughly 12pt leading for the 10pt body font.
func A4() Geometry {
	return Geometry{
		PageWidth:    210,
		PageHeight:   297,
		MarginLeft:   15,
		MarginRight:  15,
		MarginTop:    17,
		MarginBottom: 15,
		RowHeight:    4.23,
		Description:  Column{Left: 15, Right: 110},
		Quantity:     Column{Left: 110, Right: 132},
		UnitPrice:    Column{Left: 132, Right: 163},
		LineTotal:    Column{Left: 163, Right: 195},
	}
}

// Validate checks the geometry invariants: positive page and row sizes,
// strictly ordered non-overlapping columns, and the last column ending
// at or inside the right margin.
func (g Geometry) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("%w: page size %.1fx%.1f", ErrInvalidGeometry, g.PageWidth, g.PageHeight)
	}
	if g.RowHeight <= 0 {
		return fmt.Errorf("%w: row height %.2f", ErrInvalidGeometry, g.RowHeight)
	}
	if g.MarginTop+g.MarginBottom >= g.PageHeight {
		return fmt.Errorf("%w: margins leave no vertical space", ErrInvalidGeometry)
	}
	cols := []struct {
		name string
		col  Column
	}{
		{"description", g.Description},
		{"quantity", g.Quantity},
		{"unit price", g.UnitPrice},
		{"line total", g.LineTotal},
	}
	prev := g.MarginLeft
	for _, c := range cols {
		if c.col.Left >= c.col.Right {
			return fmt.Errorf("%w: %s column is empty or inverted", ErrInvalidGeometry, c.name)
		}
		if c.col.Left < prev {
			return fmt.Errorf("%w: %s column overlaps its left neighbour", ErrInvalidGeometry, c.name)
		}
		prev = c.col.Right
	}
	if g.LineTotal.Right > g.PageWidth-g.MarginRight {
		return fmt.Errorf("%w: line total column extends into the right margin", ErrInvalidGeometry)
	}
	return nil
}
