// Package tutorial narrates bubble sort runs on a text sink.
package tutorial

import (
	"fmt"
	"io"
	"strings"

	jfsutils "github.com/juicedata/juicefs/pkg/utils"
	"github.com/pkg/errors"

	"bubbledemo/src/render"
	"bubbledemo/src/sort"
	"bubbledemo/src/utils"
)

var logger = jfsutils.GetLogger("bubbledemo")

// Example is a labelled input shown by the tour.
type Example struct {
	Label string
	Input []int
}

// Examples are the canned inputs of the tour, in the order they are shown.
var Examples = []Example{
	{Label: "RANDOMIZED UNSORTED LIST", Input: []int{5, 2, 9, 1, 5, 6}},
	{Label: "ALREADY SORTED LIST", Input: []int{10, 20, 30, 40}},
	{Label: "REVERSED LIST (WORST CASE)", Input: []int{8, 6, 4, 2}},
}

var intro = []string{
	"WELCOME TO THE BUBBLE SORT TUTORIAL",
	"Concept: Larger elements 'bubble' to the end of the list like air bubbles in water.",
	"Time Complexity: O(n^2) in worst case.",
	"Space Complexity: O(1) - it sorts 'in-place'.",
}

var rule = strings.Repeat("=", 50)

// Tutorial writes the narration of bubble sort runs to out.
type Tutorial struct {
	out      io.Writer
	renderer *render.Renderer
	err      error
}

func New(out io.Writer, renderer *render.Renderer) *Tutorial {
	return &Tutorial{out: out, renderer: renderer}
}

// printf writes to the sink until the first failure, which is kept and
// returned by flush.
func (t *Tutorial) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintf(t.out, format, args...); err != nil {
		t.err = errors.Wrap(err, "write output")
	}
}

func (t *Tutorial) flush() error {
	err := t.err
	t.err = nil
	return err
}

func (t *Tutorial) styles() render.Styles {
	return t.renderer.Styles
}

// Intro prints the welcome banner.
func (t *Tutorial) Intro() error {
	s := t.styles()
	for i, line := range intro {
		if i == 0 {
			line = s.Paint(s.Banner, line)
		}
		t.printf("%s\n", line)
	}
	return t.flush()
}

// Visualize sorts seq in place and narrates every step under a banner
// carrying label.
func (t *Tutorial) Visualize(label string, seq []int) (sort.Stats, error) {
	var stats sort.Stats
	s := t.styles()
	t.printf("%s\n%s\n%s\n", rule, s.Paint(s.Banner, label), rule)
	t.printf("Original: %v\n", seq)

	logger.Debugf("visualize %q: %v", label, seq)
	for st := range sort.Steps(sort.IntArray(seq)) {
		if t.err != nil {
			break
		}
		stats.Add(st)
		t.step(seq, st)
	}
	if err := t.flush(); err != nil {
		return stats, err
	}

	t.printf("\nFinal Sorted Result: %v\n", seq)
	logger.Debugf("visualize %q: %d passes, %d comparisons, %d swaps", label, stats.Passes, stats.Comparisons, stats.Swaps)
	return stats, t.flush()
}

func (t *Tutorial) step(seq []int, st sort.Step) {
	s := t.styles()
	switch st.Kind {
	case sort.PassStart:
		t.printf("\n----- Pass %d -----\n", st.Pass+1)
	case sort.Compare:
		if err := t.renderer.Render(t.out, seq, st.Left, st.Right); err != nil {
			t.err = err
		}
	case sort.Swap:
		t.printf(" %s %d is larger than %d, moving it right.\n",
			s.Paint(s.Swap, "[SWAP]"), seq[st.Right], seq[st.Left])
	case sort.Keep:
		relation := "smaller than"
		if seq[st.Left] == seq[st.Right] {
			relation = "equal to"
		}
		t.printf(" %s %d is %s %d, no swap needed\n",
			s.Paint(s.Keep, "[KEEP]"), seq[st.Left], relation, seq[st.Right])
	case sort.Sorted:
		t.printf("\n%s\n", s.Paint(s.Notice, "OPTIMIZATION: No swaps occurred this pass. The list is sorted!"))
	}
}

// Run prints the intro, visualizes every example on a copy of its input and
// finishes with a summary of what each sort did.
func (t *Tutorial) Run(examples []Example) error {
	if err := t.Intro(); err != nil {
		return err
	}

	s := t.styles()
	summary := utils.NewTree(s.Paint(s.Banner, "SUMMARY"))
	for i, ex := range examples {
		seq := append([]int(nil), ex.Input...)
		stats, err := t.Visualize(fmt.Sprintf("EXAMPLE %d: %s", i+1, ex.Label), seq)
		if err != nil {
			return errors.Wrapf(err, "example %d", i+1)
		}
		node := summary.Addf("%s %v", ex.Label, ex.Input)
		node.Addf("passes: %d", stats.Passes)
		node.Addf("comparisons: %d", stats.Comparisons)
		node.Addf("swaps: %d", stats.Swaps)
		node.Addf("early exit: %t", stats.EarlyExit)
	}

	t.printf("%s\n", rule)
	if err := t.flush(); err != nil {
		return err
	}
	return errors.Wrap(summary.Show(t.out, ""), "write summary")
}
