package block_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/base4/block"
	"github.com/calebcase/base4/register"
)

func randomDigits(rng *rand.Rand, n int) []uint64 {
	vs := make([]uint64, n)
	for i := range vs {
		vs[i] = uint64(rng.Intn(4))
	}

	return vs
}

func TestSmoke(t *testing.T) {
	b := block.New[uint64]()

	require.True(t, b.PushAll([]uint64{0, 1, 2, 3, 2, 1, 0}))
	t.Logf("Block: %s\n", spew.Sdump(b))

	for _, want := range []uint64{0, 1, 2, 3, 2, 1, 0} {
		v, ok := b.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}

	_, ok := b.Pop()
	require.False(t, ok)

	require.True(t, b.PushAll([]uint64{0, 1, 2, 3, 2, 1, 0}))
	require.Equal(t, []uint64{0, 1, 2, 3, 2, 1, 0}, b.PopAll())
	require.True(t, b.Empty())
	require.Equal(t, []uint64{}, b.PopAll())
}

func TestLayout(t *testing.T) {
	var b block.Block[uint8]

	require.True(t, b.PushAll([]uint8{0, 1, 2, 3}))
	require.Equal(t, register.Uint128{Lo: 0b_00_01_10_11}, b.Packed())
	require.Equal(t, "[0 1 2 3]", b.String())
}

func TestRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 10, 12, 63, block.Capacity} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			vs := randomDigits(rng, n)

			b := block.New[uint64]()
			require.True(t, b.PushAll(vs))
			require.Equal(t, n, b.Len())

			for i := range vs {
				require.Equal(t, vs[i], b.PeekAt(i), i)
			}

			require.Equal(t, vs, b.PeekAll())
			require.Equal(t, n, b.Len())

			require.Equal(t, vs, b.PopAll())
			require.Equal(t, 0, b.Len())
		})
	}
}

func TestCapacity(t *testing.T) {
	require.Equal(t, 64, block.Capacity)

	b := block.New[int]()
	for i := 0; i < block.Capacity; i++ {
		require.True(t, b.Push(i%4))
	}
	require.True(t, b.Full())

	packed := b.Packed()

	require.False(t, b.Push(1))
	require.Equal(t, block.Capacity, b.Len())
	require.Equal(t, packed, b.Packed())
}

func TestPushRejects(t *testing.T) {
	type TC struct {
		v    int
		Mark error
	}

	tcs := []TC{
		{v: 4, Mark: oops.New("unexpected")},
		{v: 5, Mark: oops.New("unexpected")},
		{v: 255, Mark: oops.New("unexpected")},
		{v: -1, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.v), func(t *testing.T) {
			b := block.New[int]()
			require.True(t, b.Push(2), tc.Mark)

			require.False(t, b.Push(tc.v), tc.Mark)
			require.Equal(t, 1, b.Len(), tc.Mark)
			require.Equal(t, []int{2}, b.PeekAll(), tc.Mark)
			require.False(t, block.Valid(tc.v), tc.Mark)
		})
	}

	for v := 0; v <= block.Max; v++ {
		require.True(t, block.Valid(v))
	}
}

func TestPushAllRollback(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	t.Run("too long", func(t *testing.T) {
		b := block.New[uint64]()
		require.False(t, b.PushAll(randomDigits(rng, block.Capacity+1)))
		require.Equal(t, 0, b.Len())
		require.True(t, b.Packed().IsZero())
	})

	t.Run("out of range", func(t *testing.T) {
		vs := randomDigits(rng, 10)
		vs[7] = 4

		b := block.New[uint64]()
		require.False(t, b.PushAll(vs))
		require.Equal(t, 0, b.Len())
		require.True(t, b.Packed().IsZero())
	})

	t.Run("prior content", func(t *testing.T) {
		b := block.New[uint64]()
		require.True(t, b.PushAll([]uint64{3, 2, 1}))
		packed := b.Packed()

		require.False(t, b.PushAll([]uint64{0, 1, 9}))
		require.Equal(t, 3, b.Len())
		require.Equal(t, packed, b.Packed())

		// Remaining room is checked up front.
		require.False(t, b.PushAll(randomDigits(rng, block.Capacity-2)))
		require.Equal(t, []uint64{3, 2, 1}, b.PeekAll())

		require.True(t, b.PushAll(randomDigits(rng, block.Capacity-3)))
		require.True(t, b.Full())
	})

	t.Run("retry", func(t *testing.T) {
		vs := []uint64{1, 2, 4}

		b := block.New[uint64]()
		require.False(t, b.PushAll(vs))

		vs[2] = 3
		require.True(t, b.PushAll(vs))
		require.Equal(t, vs, b.PopAll())
	})
}

func TestPeekAtOutOfBounds(t *testing.T) {
	b := block.New[uint8]()
	require.True(t, b.PushAll([]uint8{1, 2, 3}))

	for _, index := range []int{3, 4, -1} {
		t.Run(fmt.Sprint(index), func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)

				err, ok := r.(error)
				require.True(t, ok)
				require.True(t, block.Error.Has(err))
				require.Contains(t, err.Error(),
					fmt.Sprintf("index %d out of bounds (size=3)", index))
			}()

			b.PeekAt(index)
		})
	}
}

func TestReset(t *testing.T) {
	b := block.New[uint8]()
	require.True(t, b.PushAll([]uint8{1, 2, 3}))

	b.Reset()
	require.True(t, b.Empty())
	require.True(t, b.Packed().IsZero())
	require.Equal(t, []uint8{}, b.PeekAll())
}
