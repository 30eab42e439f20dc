// Package invoice wires the render pipeline together: invoice model in,
// PDF document out.
//
// A render call is synchronous and holds no state across calls; the
// geometry and font metrics it is built with are read-only, so one
// Service may render invoices from multiple goroutines. Model and layout
// errors are detected before any output bytes are produced, so a failed
// render never leaves a truncated document behind an io.Writer it did
// not get to.
package invoice

import (
	"io"

	"github.com/rs/zerolog"

	"invoicer/internal/layout"
	"invoicer/internal/logger"
	"invoicer/internal/render"
	"invoicer/pkg/models"
)

// Service renders invoice models to PDF documents.
type Service struct {
	engine   *layout.Engine
	renderer *render.Renderer
	log      zerolog.Logger
}

// NewService builds a Service for the given geometry. The fpdf-backed
// metrics source is shared between the layout engine and the renderer so
// alignment calculations match final rendering.
func NewService(geom layout.Geometry) (*Service, error) {
	metrics := render.NewMetrics()
	engine, err := layout.New(geom, metrics)
	if err != nil {
		return nil, err
	}
	return &Service{
		engine:   engine,
		renderer: render.NewRenderer(geom),
		log:      logger.WithComponent("invoice-render"),
	}, nil
}

// Render lays out the invoice and writes the PDF to w. The invoice is
// validated before layout begins: a currency mismatch is rejected with
// models.ErrInvalidLineItem and produces no output at all.
func (s *Service) Render(inv *models.Invoice, w io.Writer) error {
	instrs, err := s.layout("Render", inv)
	if err != nil {
		return err
	}
	if err := s.renderer.Render(instrs, w); err != nil {
		return wrapRender("Render", inv.Number, err)
	}
	return nil
}

// RenderFile renders the invoice PDF to the file at path.
func (s *Service) RenderFile(inv *models.Invoice, path string) error {
	instrs, err := s.layout("RenderFile", inv)
	if err != nil {
		return err
	}
	if err := s.renderer.RenderFile(instrs, path); err != nil {
		return wrapRender("RenderFile", inv.Number, err)
	}
	s.log.Info().
		Str("invoice", inv.Number).
		Str("path", path).
		Int("instructions", len(instrs)).
		Msg("Invoice rendered")
	return nil
}

func (s *Service) layout(op string, inv *models.Invoice) ([]layout.Instruction, error) {
	if err := inv.Validate(); err != nil {
		return nil, wrapRender(op, inv.Number, err)
	}
	instrs, err := s.engine.Layout(inv)
	if err != nil {
		return nil, wrapRender(op, inv.Number, err)
	}
	return instrs, nil
}
