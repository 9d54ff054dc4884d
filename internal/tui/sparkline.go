package tui

import "strings"

// sparklineChars maps levels 0..7 to Unicode block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History keeps the most recent percentage samples of one series.
type History struct {
	samples []float64
	limit   int
}

// NewHistory returns a history holding at most limit samples.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{samples: make([]float64, 0, limit), limit: limit}
}

// Push appends a sample, dropping the oldest once the limit is reached.
func (h *History) Push(v float64) {
	if len(h.samples) == h.limit {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:h.limit-1]
	}
	h.samples = append(h.samples, v)
}

// Len returns the number of samples held.
func (h *History) Len() int { return len(h.samples) }

// Last returns the most recent sample, or 0 if empty.
func (h *History) Last() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

// Tail returns up to n of the most recent samples, oldest first.
func (h *History) Tail(n int) []float64 {
	if n <= 0 || len(h.samples) == 0 {
		return nil
	}
	if n > len(h.samples) {
		n = len(h.samples)
	}
	out := make([]float64, n)
	copy(out, h.samples[len(h.samples)-n:])
	return out
}

// Reset drops all samples.
func (h *History) Reset() {
	h.samples = h.samples[:0]
}

// RenderSparkline renders percentages (0..100) with one block per sample.
// Out of range values are clamped.
func RenderSparkline(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		v = min(max(v, 0), 100)
		b.WriteRune(sparklineChars[min(int(v/100*7), 7)])
	}
	return b.String()
}

// RenderBar renders a horizontal bar of the given width filled to ratio,
// returning the filled and empty parts separately so they can be styled.
func RenderBar(ratio float64, width int) (filled, empty string) {
	if width <= 0 {
		return "", ""
	}
	ratio = min(max(ratio, 0), 1)
	n := int(ratio*float64(width) + 0.5)
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}
