package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"invoicer/internal/layout"
)

// Renderer turns a fully positioned instruction sequence into PDF bytes.
// It makes no layout decisions: alignment and pagination are already
// final in the instructions, whose x coordinates are pen origins, so
// every instruction is drawn the same way regardless of its alignment
// tag. A Renderer is stateless across calls and safe for concurrent use.
type Renderer struct {
	pageWidth  float64
	pageHeight float64
}

// NewRenderer returns a Renderer emitting pages of the geometry's size.
func NewRenderer(geom layout.Geometry) *Renderer {
	return &Renderer{pageWidth: geom.PageWidth, pageHeight: geom.PageHeight}
}

// Render writes the instructions as a single PDF document to w. The
// instructions must be ordered by ascending page index, as the layout
// engine produces them. Failures to write surface as ErrRenderIO.
func (r *Renderer) Render(instrs []layout.Instruction, w io.Writer) error {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: r.pageWidth, Ht: r.pageHeight},
	})
	doc.SetAutoPageBreak(false, 0)

	page := -1
	for _, in := range instrs {
		for page < in.Page {
			doc.AddPage()
			page++
		}
		spec, ok := fontSpecs[in.Font]
		if !ok {
			spec = fontSpecs[layout.FontBody]
		}
		doc.SetFont(spec.family, spec.style, spec.size)
		doc.Text(in.X, in.Y, in.Text)
	}
	if page < 0 {
		doc.AddPage()
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderIO, err)
	}
	return nil
}

// RenderFile renders to the file at path, creating or truncating it.
func (r *Renderer) RenderFile(instrs []layout.Instruction, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrRenderIO, path, err)
	}
	if err := r.Render(instrs, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrRenderIO, path, err)
	}
	return nil
}
