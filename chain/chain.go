// Package chain provides an unbounded base-4 digit container built from
// fixed capacity blocks.
//
// Digits are appended to the tail block. A new block is allocated when the
// tail is full (or when there is none) and the tail is dropped as soon as a
// pop empties it. Every block but the tail therefore holds exactly
// block.Capacity digits, which lets an index be routed to a single block.
//
// Unlike block.Block, violating a precondition here panics: pushing a value
// that is not a digit, popping an empty container, or peeking out of bounds.
// The Try variants return the same condition as an error instead.
//
// PushAll is not atomic. It stops at the first rejected value and keeps every
// digit pushed before it, whereas block.Block.PushAll restores the block.
// Callers relying on either behavior should not assume the other.
package chain

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/base4/block"
)

// Int is a growable sequence of base-4 digits. The zero value is an empty
// container. It is not safe for concurrent use.
type Int[T constraints.Integer] struct {
	blocks blocks[T]
}

// New returns an empty container.
func New[T constraints.Integer]() *Int[T] {
	return &Int[T]{}
}

// tail returns the block the next digit goes into, allocating one if
// necessary.
func (i *Int[T]) tail() *block.Block[T] {
	if b := i.blocks.Tail(); b != nil && !b.Full() {
		return b
	}

	b := block.New[T]()
	i.blocks.Push(b)

	return b
}

// TryPush appends v. It returns an error if v is not a digit.
func (i *Int[T]) TryPush(v T) (err error) {
	if !block.Valid(v) {
		return Error.New("only accepts values bounded within 0..=%d: %d", block.Max, v)
	}

	// The tail always has room and v is valid.
	i.tail().Push(v)

	return nil
}

// Push appends v. It panics if v is not a digit.
func (i *Int[T]) Push(v T) {
	err := i.TryPush(v)
	if err != nil {
		panic(err)
	}
}

// PushAll appends every value of vs in order. It panics on the first value
// that is not a digit; values before it remain pushed.
func (i *Int[T]) PushAll(vs []T) {
	for _, v := range vs {
		i.Push(v)
	}
}

// TryPop removes and returns the most recently pushed digit. It returns an
// error if the container is empty.
func (i *Int[T]) TryPop() (v T, err error) {
	b := i.blocks.Tail()
	if b == nil {
		return v, Error.New("attempt to pop an empty container")
	}

	v, _ = b.Pop()

	if b.Empty() {
		i.blocks.PopTail()
	}

	return v, nil
}

// Pop removes and returns the most recently pushed digit. It panics if the
// container is empty.
func (i *Int[T]) Pop() T {
	v, err := i.TryPop()
	if err != nil {
		panic(err)
	}

	return v
}

// PopAll drains the container and returns every digit in insertion order.
func (i *Int[T]) PopAll() (vs []T) {
	vs = make([]T, 0, i.TotalLen())

	for {
		b := i.blocks.PopFront()
		if b == nil {
			break
		}

		vs = append(vs, b.PopAll()...)
	}

	return vs
}

// TryPeekAt returns the digit at index in insertion order. It returns an error
// if index is out of bounds.
func (i *Int[T]) TryPeekAt(index int) (v T, err error) {
	size := i.TotalLen()
	if index < 0 || index >= size {
		return v, Error.New("index %d out of bounds (size=%d)", index, size)
	}

	return i.blocks[index/block.Capacity].PeekAt(index % block.Capacity), nil
}

// PeekAt returns the digit at index in insertion order. It panics if index is
// out of bounds.
func (i *Int[T]) PeekAt(index int) T {
	v, err := i.TryPeekAt(index)
	if err != nil {
		panic(err)
	}

	return v
}

// PeekAll returns every digit in insertion order without modifying the
// container.
func (i *Int[T]) PeekAll() (vs []T) {
	vs = make([]T, 0, i.TotalLen())
	for _, b := range i.blocks {
		vs = append(vs, b.PeekAll()...)
	}

	return vs
}

// TotalLen returns the number of digits in the container.
func (i *Int[T]) TotalLen() int {
	return i.blocks.Len()
}

// TotalBlocks returns the number of allocated blocks.
func (i *Int[T]) TotalBlocks() int {
	return len(i.blocks)
}

// Block returns a copy of the block at index. It panics if index is out of
// bounds.
func (i *Int[T]) Block(index int) block.Block[T] {
	if index < 0 || index >= len(i.blocks) {
		panic(Error.New("block %d out of bounds (blocks=%d)", index, len(i.blocks)))
	}

	return *i.blocks[index]
}

// String returns the digits in insertion order.
func (i *Int[T]) String() string {
	return fmt.Sprint(i.PeekAll())
}
