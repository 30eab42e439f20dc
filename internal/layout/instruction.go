package layout

// Font is a logical font token. The renderer owns the mapping from
// tokens to concrete font metrics; the engine only measures through the
// FontMetrics it was given, so layout widths and rendered widths always
// come from the same source.
type Font int

const (
	// FontBody is the default text font.
	FontBody Font = iota
	// FontHeading is used for the company name and column headers.
	FontHeading
	// FontTotal is the larger font of the grand-total row.
	FontTotal
)

// Align is the horizontal alignment of an instruction's text.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Instruction is one positioned text run. X and Y are the pen origin in
// mm from the top-left page corner; for right-aligned text X has already
// been computed as (column right boundary − measured text width), so the
// renderer draws every instruction the same way. Instructions are
// immutable once produced.
type Instruction struct {
	Page  int // zero-based page index
	X     float64
	Y     float64
	Align Align
	Text  string
	Font  Font
}

// FontMetrics measures rendered text width in mm for a logical font
// token. Implementations must be safe for concurrent use; the layout
// engine shares one metrics source with the document renderer.
type FontMetrics interface {
	TextWidth(text string, font Font) float64
}
