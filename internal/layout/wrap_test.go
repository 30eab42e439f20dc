package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapTextEmpty(t *testing.T) {
	m := fixedMetrics{perRune: 2}
	assert.Equal(t, []string{""}, wrapText("", 100, m, FontBody))
	assert.Equal(t, []string{""}, wrapText("   ", 100, m, FontBody))
}

func TestWrapTextSingleLine(t *testing.T) {
	m := fixedMetrics{perRune: 2}
	assert.Equal(t, []string{"weekly clean"}, wrapText("weekly clean", 100, m, FontBody))
}

func TestWrapTextWordBoundaries(t *testing.T) {
	m := fixedMetrics{perRune: 2}
	// 20mm fits 10 runes per line.
	lines := wrapText("deep clean of office kitchen", 20, m, FontBody)
	assert.Equal(t, []string{"deep clean", "of office", "kitchen"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, m.TextWidth(l, FontBody), 20.0)
	}
}

func TestWrapTextNeverSplitsMidWordWhenAvoidable(t *testing.T) {
	m := fixedMetrics{perRune: 2}
	lines := wrapText("supercalifragilistic done", 40, m, FontBody)
	assert.Equal(t, []string{"supercalifragilistic", "done"}, lines)
}

func TestWrapTextHardSplitsOverlongWord(t *testing.T) {
	m := fixedMetrics{perRune: 2}
	// 10mm fits 5 runes; a 12-rune word must be hard-split.
	lines := wrapText("abcdefghijkl", 10, m, FontBody)
	assert.Equal(t, []string{"abcde", "fghij", "kl"}, lines)
}

func TestWrapTextCollapsesWhitespace(t *testing.T) {
	m := fixedMetrics{perRune: 2}
	assert.Equal(t, []string{"a b"}, wrapText("a \t b", 100, m, FontBody))
}
