package tutorial

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MaxValue keeps the widest bar printable on a normal terminal.
	MaxValue  = 100
	MaxLength = 20
)

var ErrInvalidInput = errors.New("invalid input")

// ParseSequence turns command line arguments into a sequence. Arguments may
// also hold several comma separated values. Every value must be an integer in
// [0, MaxValue] and there must be between one and MaxLength of them.
func ParseSequence(args []string) ([]int, error) {
	var seq []int
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidInput, "%q is not an integer", field)
			}
			if v < 0 || v > MaxValue {
				return nil, errors.Wrapf(ErrInvalidInput, "%d is out of range [0, %d]", v, MaxValue)
			}
			seq = append(seq, v)
		}
	}
	if len(seq) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no values given")
	}
	if len(seq) > MaxLength {
		return nil, errors.Wrapf(ErrInvalidInput, "%d values given, at most %d allowed", len(seq), MaxLength)
	}
	return seq, nil
}
