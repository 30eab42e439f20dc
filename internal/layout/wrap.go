package layout

import "strings"

// wrapText splits text into lines no wider than maxWidth, measured with
// the given font. Splitting happens on word boundaries; a single word
// wider than maxWidth is hard-split as a last resort. The empty string
// (and pure whitespace) still yields one empty line, so an empty
// description consumes one row.
func wrapText(text string, maxWidth float64, m FontMetrics, f Font) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.TextWidth(candidate, f) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if m.TextWidth(word, f) <= maxWidth {
			current = word
			continue
		}
		lines, current = splitWord(word, maxWidth, m, f, lines)
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord hard-splits a word wider than maxWidth into full lines plus
// the trailing remainder. Each line keeps at least one rune so the split
// always makes progress.
func splitWord(word string, maxWidth float64, m FontMetrics, f Font, lines []string) ([]string, string) {
	runes := []rune(word)
	part := ""
	for _, r := range runes {
		candidate := part + string(r)
		if part != "" && m.TextWidth(candidate, f) > maxWidth {
			lines = append(lines, part)
			part = string(r)
			continue
		}
		part = candidate
	}
	return lines, part
}
