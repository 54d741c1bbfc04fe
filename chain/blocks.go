package chain

import (
	"golang.org/x/exp/constraints"

	"github.com/calebcase/base4/block"
)

// blocks is the ordered list of blocks owned by an Int. Every block except the
// tail is full and no block is empty once an operation returns.
type blocks[T constraints.Integer] []*block.Block[T]

func (s *blocks[T]) Push(b *block.Block[T]) {
	*s = append(*s, b)
}

func (s *blocks[T]) Tail() *block.Block[T] {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

// PopTail drops the tail block.
func (s *blocks[T]) PopTail() (b *block.Block[T]) {
	b = s.Tail()
	if b == nil {
		return nil
	}

	(*s)[len(*s)-1] = nil
	*s = (*s)[:len(*s)-1]

	return b
}

// PopFront drops the earliest block.
func (s *blocks[T]) PopFront() (b *block.Block[T]) {
	if len(*s) == 0 {
		return nil
	}

	b = (*s)[0]
	(*s)[0] = nil
	*s = (*s)[1:]

	return b
}

// Len returns the number of digits across all blocks.
func (s blocks[T]) Len() (n int) {
	for _, b := range s {
		n += b.Len()
	}

	return n
}
