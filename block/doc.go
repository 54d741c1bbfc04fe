// Package block provides the single register base-4 codec.
//
// A block packs up to Capacity digits (values 0 through 3) into one 128-bit
// register, two bits per digit. Digits are stored most-significant-first in
// insertion order: every push shifts the occupied lanes up by one lane and
// writes the new digit into the lowest lane, and every pop reads the lowest
// lane and shifts the rest down. The register behaves like a stack of digits.
//
// Register Layout
//
// After pushing the digits 0, 1, 2, 3 (in that order) into an empty block:
//
//  | 127 .. 8 | 7 . 6 | 5 . 4 | 3 . 2 | 1 . 0 || Bits           |
//  |----------|-------|-------|-------|-------||----------------|
//  | 0 .... 0 | 0 . 0 | 0 . 1 | 1 . 0 | 1 . 1 || Lanes          |
//  |          |   3   |   2   |   1   |   0   || Lane           |
//  |          |   0   |   1   |   2   |   3   || Index (PeekAt) |
//  |----------|-------|-------|-------|-------||----------------|
//
// Index 0 always refers to the oldest digit, so it lives in lane Len()-1.
//
// Failure Modes
//
// Push and PushAll report rejected input (out of range digits or a full block)
// with a false result. PushAll is atomic: when any element is rejected the
// block is restored to its state before the call. PeekAt panics when the index
// is out of bounds.
package block
