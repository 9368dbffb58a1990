package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Index is a position in the displayed flashcard list.
// It is stored zero-based and shown to users one-based.
type Index struct {
	zeroBased int
}

// FromOneBased creates an Index from a one-based position.
func FromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, fmt.Errorf("%w: index must be a positive integer", ErrInvalidCommandFormat)
	}
	return Index{zeroBased: n - 1}, nil
}

// ParseIndex parses user input as a one-based index.
func ParseIndex(s string) (Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Index{}, fmt.Errorf("%w: index must be a positive integer", ErrInvalidCommandFormat)
	}
	return FromOneBased(n)
}

// ZeroBased returns the zero-based position.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the one-based position.
func (i Index) OneBased() int { return i.zeroBased + 1 }

func (i Index) String() string { return strconv.Itoa(i.OneBased()) }
