// Package render draws a sequence of integers as a horizontal bar chart.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

const marker = "<-- COMPARING"

// Marks are the characters a bar is built from.
type Marks struct {
	Filled string
	Empty  string
}

var DefaultMarks = Marks{Filled: "#", Empty: " "}

// Renderer draws bars with Marks and colours the marker with Styles.
type Renderer struct {
	Styles Styles
	Marks  Marks
}

func New(styles Styles) *Renderer {
	return &Renderer{Styles: styles, Marks: DefaultMarks}
}

// width is the bar length for v. Negative values draw an empty bar.
func width(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func maxWidth(seq []int) int {
	if len(seq) == 0 {
		return 1
	}
	m := 0
	for _, v := range seq {
		m = max(m, width(v))
	}
	return m
}

// Lines yields one display line per element of seq, in index order. Elements
// at index a or b carry the comparison marker; out of range indices simply
// match nothing.
func (r *Renderer) Lines(seq []int, a, b int) iter.Seq[string] {
	return func(yield func(string) bool) {
		top := maxWidth(seq)
		for i, v := range seq {
			w := width(v)
			bar := strings.Repeat(r.Marks.Filled, w)
			padding := strings.Repeat(r.Marks.Empty, top-w)
			pointer := ""
			if i == a || i == b {
				pointer = r.Styles.Paint(r.Styles.Marker, marker)
			}
			if !yield(fmt.Sprintf(" %2d | %s%s %s", v, bar, padding, pointer)) {
				return
			}
		}
	}
}

// Render writes the current state of seq to w.
func (r *Renderer) Render(w io.Writer, seq []int, a, b int) error {
	if _, err := fmt.Fprintf(w, "\n %s\n", r.Styles.Paint(r.Styles.Muted, "Current State:")); err != nil {
		return errors.Wrap(err, "write state header")
	}
	for line := range r.Lines(seq, a, b) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "write state line")
		}
	}
	return nil
}
