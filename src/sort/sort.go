package sort

import "iter"

// IntArray attaches the methods of Sorter to []int.
type IntArray []int

// Sorter is a collection that can be sorted by index.
type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Kind tells what a Step reports.
type Kind int

const (
	PassStart Kind = iota
	Compare
	Swap
	Keep
	Sorted
)

func (k Kind) String() string {
	switch k {
	case PassStart:
		return "pass"
	case Compare:
		return "compare"
	case Swap:
		return "swap"
	case Keep:
		return "keep"
	case Sorted:
		return "sorted"
	}
	return "unknown"
}

// Step is one event of a running bubble sort. Pass is zero-based. Left and
// Right are the compared indices and are zero for PassStart and Sorted.
//
// A Swap step is yielded after the elements were exchanged, so the consumer
// sees the new order when it reads the data.
type Step struct {
	Kind  Kind
	Pass  int
	Left  int
	Right int
}

// Stats counts what a sort did.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
	EarlyExit   bool
}

// Add counts st.
func (s *Stats) Add(st Step) {
	switch st.Kind {
	case PassStart:
		s.Passes++
	case Compare:
		s.Comparisons++
	case Swap:
		s.Swaps++
	case Sorted:
		s.EarlyExit = true
	}
}

// Steps returns the bubble sort of data as a lazy stream of steps. The data is
// mutated as the stream is consumed; breaking out of the loop leaves it
// partially sorted.
//
// A pass that finishes without a swap yields Sorted and ends the sort. A pass
// with no comparisons to make is never started.
func Steps(data Sorter) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		n := data.Len()
		for pass := 0; pass < n-1; pass++ {
			if !yield(Step{Kind: PassStart, Pass: pass}) {
				return
			}
			swapped := false
			for i := 0; i < n-pass-1; i++ {
				if !yield(Step{Kind: Compare, Pass: pass, Left: i, Right: i + 1}) {
					return
				}
				kind := Keep
				if data.Less(i+1, i) {
					data.Swap(i, i+1)
					swapped = true
					kind = Swap
				}
				if !yield(Step{Kind: kind, Pass: pass, Left: i, Right: i + 1}) {
					return
				}
			}
			if !swapped {
				yield(Step{Kind: Sorted, Pass: pass})
				return
			}
		}
	}
}

// Sort sorts data in place.
func Sort(data Sorter) Stats {
	var stats Stats
	for st := range Steps(data) {
		stats.Add(st)
	}
	return stats
}

// Ints sorts data in place, calling observe for every step, and returns data.
// Callers that need the original order must copy it first.
func Ints(data []int, observe func(Step)) []int {
	for st := range Steps(IntArray(data)) {
		if observe != nil {
			observe(st)
		}
	}
	return data
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}
