package block

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/base4/register"
)

// Capacity is the number of digits a single block can hold.
const Capacity = register.Bits / 2

// Max is the largest admissible digit.
const Max = 0b11

// Valid returns true if v is a digit (0 <= v <= 3).
func Valid[T constraints.Integer](v T) bool {
	return v >= 0 && v <= Max
}

// Block is a fixed capacity run of digits packed into one register. The zero
// value is an empty block.
type Block[T constraints.Integer] struct {
	size   int
	packed register.Uint128
}

// New returns an empty block.
func New[T constraints.Integer]() *Block[T] {
	return &Block[T]{}
}

// Len returns the number of digits in the block.
func (b *Block[T]) Len() int {
	return b.size
}

// Full returns true if no more digits fit in the block.
func (b *Block[T]) Full() bool {
	return b.size == Capacity
}

// Empty returns true if the block holds no digits.
func (b *Block[T]) Empty() bool {
	return b.size == 0
}

// Packed returns the raw register.
func (b *Block[T]) Packed() register.Uint128 {
	return b.packed
}

// Reset empties the block.
func (b *Block[T]) Reset() {
	b.size = 0
	b.packed = register.Uint128{}
}

// Push appends v. It returns false and leaves the block unchanged if v is not
// a digit or if the block is full.
func (b *Block[T]) Push(v T) (ok bool) {
	if !Valid(v) || b.size >= Capacity {
		return false
	}

	b.packed = b.packed.Push(uint8(v))
	b.size++

	return true
}

// PushAll appends every value of vs in order. If any value is rejected the
// block is restored to its state before the call and false is returned.
func (b *Block[T]) PushAll(vs []T) (ok bool) {
	saved := *b
	defer func() {
		if !ok {
			*b = saved
		}
	}()

	if len(vs) > Capacity-b.size {
		return false
	}

	for _, v := range vs {
		if !b.Push(v) {
			return false
		}
	}

	return true
}

// Pop removes and returns the most recently pushed digit. It returns false if
// the block is empty.
func (b *Block[T]) Pop() (v T, ok bool) {
	if b.size == 0 {
		return v, false
	}

	var d uint8
	d, b.packed = b.packed.Pop()
	b.size--

	return T(d), true
}

// PopAll drains the block and returns its digits oldest first.
func (b *Block[T]) PopAll() (vs []T) {
	if b.size == 0 {
		return []T{}
	}

	vs = make([]T, b.size)
	for i := len(vs) - 1; i >= 0; i-- {
		vs[i], _ = b.Pop()
	}

	return vs
}

// PeekAt returns the digit at index, counting from the oldest digit. It panics
// if index is out of bounds.
func (b *Block[T]) PeekAt(index int) T {
	if index < 0 || index >= b.size {
		panic(Error.New("index %d out of bounds (size=%d)", index, b.size))
	}

	return T(b.packed.Lane(uint(b.size - index - 1)))
}

// PeekAll returns every digit oldest first without modifying the block.
func (b *Block[T]) PeekAll() (vs []T) {
	vs = make([]T, b.size)
	for i := range vs {
		vs[i] = b.PeekAt(i)
	}

	return vs
}

// String returns the digits oldest first.
func (b *Block[T]) String() string {
	return fmt.Sprint(b.PeekAll())
}
