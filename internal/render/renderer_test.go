package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/layout"
	"invoicer/internal/render"
)

func sampleInstructions() []layout.Instruction {
	return []layout.Instruction{
		{Page: 0, X: 15, Y: 20, Align: layout.AlignLeft, Text: "Invoice #AB076", Font: layout.FontHeading},
		{Page: 0, X: 150, Y: 40, Align: layout.AlignRight, Text: "AU $120.00", Font: layout.FontBody},
		{Page: 1, X: 15, Y: 20, Align: layout.AlignLeft, Text: "continued", Font: layout.FontBody},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := render.NewRenderer(layout.A4())

	var buf bytes.Buffer
	require.NoError(t, r.Render(sampleInstructions(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"), "output must start with the PDF header")
	assert.Contains(t, out, "%%EOF")
}

func TestRenderZeroInstructionsStillOnePage(t *testing.T) {
	r := render.NewRenderer(layout.A4())

	var buf bytes.Buffer
	require.NoError(t, r.Render(nil, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderIOError(t *testing.T) {
	r := render.NewRenderer(layout.A4())
	err := r.Render(sampleInstructions(), failingWriter{})
	require.ErrorIs(t, err, render.ErrRenderIO)
}

func TestRenderFileBadPath(t *testing.T) {
	r := render.NewRenderer(layout.A4())
	err := r.RenderFile(sampleInstructions(), "/nonexistent-dir/invoice.pdf")
	require.ErrorIs(t, err, render.ErrRenderIO)
}

func TestRenderFile(t *testing.T) {
	r := render.NewRenderer(layout.A4())
	path := t.TempDir() + "/invoice.pdf"
	require.NoError(t, r.RenderFile(sampleInstructions(), path))
}

func TestMetricsWidthGrowsWithText(t *testing.T) {
	m := render.NewMetrics()

	small := m.TextWidth("AU $5.00", layout.FontBody)
	large := m.TextWidth("AU $12,345.67", layout.FontBody)
	assert.Greater(t, small, 0.0)
	assert.Greater(t, large, small)
}

func TestMetricsTotalFontIsLarger(t *testing.T) {
	m := render.NewMetrics()
	body := m.TextWidth("AU $100.00", layout.FontBody)
	total := m.TextWidth("AU $100.00", layout.FontTotal)
	assert.Greater(t, total, body)
}

func TestMetricsConcurrentUse(t *testing.T) {
	m := render.NewMetrics()
	want := m.TextWidth("AU $1,234.56", layout.FontBody)

	done := make(chan float64, 16)
	for i := 0; i < 16; i++ {
		go func() { done <- m.TextWidth("AU $1,234.56", layout.FontBody) }()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, want, <-done)
	}
}
