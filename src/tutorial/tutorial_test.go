package tutorial

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bubbledemo/src/render"
	"bubbledemo/src/sort"
)

func newTutorial() (*Tutorial, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf, render.New(render.PlainStyles())), &buf
}

func TestVisualizeSwap(t *testing.T) {
	tu, buf := newTutorial()
	seq := []int{2, 1}
	stats, err := tu.Visualize("TWO", seq)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seq)
	assert.Equal(t, sort.Stats{Passes: 1, Comparisons: 1, Swaps: 1}, stats)
	assert.Equal(t, rule+`
TWO
`+rule+`
Original: [2 1]

----- Pass 1 -----

 Current State:
  2 | ## <-- COMPARING
  1 | #  <-- COMPARING
 [SWAP] 2 is larger than 1, moving it right.

Final Sorted Result: [1 2]
`, buf.String())
}

func TestVisualizeEarlyExit(t *testing.T) {
	tu, buf := newTutorial()
	stats, err := tu.Visualize("SORTED", []int{10, 20, 30, 40})
	require.NoError(t, err)
	assert.Equal(t, sort.Stats{Passes: 1, Comparisons: 3, EarlyExit: true}, stats)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "----- Pass"))
	assert.Equal(t, 3, strings.Count(out, "Current State:"))
	assert.Contains(t, out, "[KEEP] 10 is smaller than 20, no swap needed")
	assert.Contains(t, out, "OPTIMIZATION: No swaps occurred this pass. The list is sorted!")
	assert.NotContains(t, out, "[SWAP]")
}

func TestVisualizeOrder(t *testing.T) {
	tu, buf := newTutorial()
	_, err := tu.Visualize("DUP", []int{5, 5})
	require.NoError(t, err)

	out := buf.String()
	state := strings.Index(out, "Current State:")
	keep := strings.Index(out, "[KEEP] 5 is equal to 5")
	exit := strings.Index(out, "OPTIMIZATION")
	final := strings.Index(out, "Final Sorted Result: [5 5]")
	require.True(t, state >= 0 && keep >= 0 && exit >= 0 && final >= 0, out)
	assert.Less(t, state, keep)
	assert.Less(t, keep, exit)
	assert.Less(t, exit, final)
}

func TestVisualizeBoundaries(t *testing.T) {
	for _, seq := range [][]int{{}, {7}} {
		tu, buf := newTutorial()
		stats, err := tu.Visualize("EDGE", seq)
		require.NoError(t, err)
		assert.Zero(t, stats)
		assert.NotContains(t, buf.String(), "Current State:")
		assert.NotContains(t, buf.String(), "----- Pass")
	}
}

func TestRun(t *testing.T) {
	tu, buf := newTutorial()
	require.NoError(t, tu.Run(Examples))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "WELCOME TO THE BUBBLE SORT TUTORIAL\n"))
	assert.Contains(t, out, "Time Complexity: O(n^2) in worst case.")

	first := strings.Index(out, "EXAMPLE 1: RANDOMIZED UNSORTED LIST")
	second := strings.Index(out, "EXAMPLE 2: ALREADY SORTED LIST")
	third := strings.Index(out, "EXAMPLE 3: REVERSED LIST (WORST CASE)")
	assert.True(t, first > 0 && first < second && second < third)

	assert.Contains(t, out, "Final Sorted Result: [1 2 5 5 6 9]")
	assert.Contains(t, out, "Final Sorted Result: [10 20 30 40]")
	assert.Contains(t, out, "Final Sorted Result: [2 4 6 8]")
	assert.Equal(t, 14+3+6, strings.Count(out, "Current State:"))
	assert.Equal(t, 2, strings.Count(out, "OPTIMIZATION"))

	assert.Contains(t, out, `SUMMARY
├── RANDOMIZED UNSORTED LIST [5 2 9 1 5 6]
│   ├── passes: 4
│   ├── comparisons: 14
│   ├── swaps: 6
│   └── early exit: true
├── ALREADY SORTED LIST [10 20 30 40]
│   ├── passes: 1
│   ├── comparisons: 3
│   ├── swaps: 0
│   └── early exit: true
└── REVERSED LIST (WORST CASE) [8 6 4 2]
    ├── passes: 3
    ├── comparisons: 6
    ├── swaps: 6
    └── early exit: false
`)
}

func TestRunLeavesExamplesUntouched(t *testing.T) {
	tu, _ := newTutorial()
	examples := []Example{{Label: "X", Input: []int{3, 2, 1}}}
	require.NoError(t, tu.Run(examples))
	assert.Equal(t, []int{3, 2, 1}, examples[0].Input)
}

type limitWriter struct{ left int }

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.left <= 0 {
		return 0, errors.New("sink closed")
	}
	w.left--
	return len(p), nil
}

func TestRunWriteError(t *testing.T) {
	for _, n := range []int{0, 3, 10, 40} {
		tu := New(&limitWriter{left: n}, render.New(render.PlainStyles()))
		err := tu.Run(Examples)
		require.Error(t, err, "writes=%d", n)
		assert.Contains(t, err.Error(), "sink closed")
	}
}
