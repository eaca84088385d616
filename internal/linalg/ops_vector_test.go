package linalg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// operandOf builds a fresh operand of the requested shape over its own
// storage, so any pair of shapes can be combined without a borrow conflict.
func operandOf(t *testing.T, va Variant, values []int) VectorOperand[int] {
	t.Helper()
	switch va {
	case Owned:
		return VectorOf(values)
	case OwnedMut:
		return MutVectorOf(values)
	case View:
		s, err := VectorOf(values).Slice(0, len(values))
		require.NoError(t, err)
		return s
	case ViewMut:
		s, err := MutVectorOf(values).SliceMut(0, len(values))
		require.NoError(t, err)
		return s
	default:
		t.Fatalf("unknown variant %v", va)
		return nil
	}
}

func vecAddOf(l VectorOperand[int], r VectorOperand[int]) (*Vector[int], error) {
	switch v := l.(type) {
	case *Vector[int]:
		return v.Add(r)
	case *MutVector[int]:
		return v.Add(r)
	case *VectorSlice[int]:
		return v.Add(r)
	case *MutVectorSlice[int]:
		return v.Add(r)
	}
	return nil, fmt.Errorf("unhandled operand %T", l)
}

func vecDotOf(l VectorOperand[int], r VectorOperand[int]) (int, error) {
	switch v := l.(type) {
	case *Vector[int]:
		return v.Dot(r)
	case *MutVector[int]:
		return v.Dot(r)
	case *VectorSlice[int]:
		return v.Dot(r)
	case *MutVectorSlice[int]:
		return v.Dot(r)
	}
	return 0, fmt.Errorf("unhandled operand %T", l)
}

// Every ordered pair of vector shapes must resolve, and every pair must
// produce the same owning result.
func TestVectorAddAllPairs(t *testing.T) {
	for _, lv := range Variants() {
		for _, rv := range Variants() {
			t.Run(lv.String()+"_"+rv.String(), func(t *testing.T) {
				l := operandOf(t, lv, []int{1, 2, 3})
				r := operandOf(t, rv, []int{10, 20, 30})

				sum, err := vecAddOf(l, r)
				require.NoError(t, err)
				assert.Equal(t, []int{11, 22, 33}, sum.Values())
				assert.Equal(t, Owned, sum.variant())
			})
		}
	}
}

func TestVectorDotAllPairs(t *testing.T) {
	for _, lv := range Variants() {
		for _, rv := range Variants() {
			t.Run(lv.String()+"_"+rv.String(), func(t *testing.T) {
				l := operandOf(t, lv, []int{1, 2, 3})
				r := operandOf(t, rv, []int{4, 5, 6})

				got, err := vecDotOf(l, r)
				require.NoError(t, err)
				assert.Equal(t, 32, got)
			})
		}
	}
}

func TestVectorSub(t *testing.T) {
	a := NewVector(5, 7, 9)
	b := NewVector(1, 2, 3)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, diff.Values())
}

func TestVectorMulElem(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(4, 5, 6)

	prod, err := a.MulElem(b)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 10, 18}, prod.Values())
}

func TestVectorScale(t *testing.T) {
	v := NewVector(1.0, 2.0, 3.0)
	got, err := v.Scale(2.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 5, 7.5}, got.Values())
}

func TestVectorShapeMismatch(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(1, 2)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.MulElem(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Dot(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// An owner may serve as one operand while a view over its own storage is
// the other; reads never conflict with reads.
func TestVectorSelfViewAdd(t *testing.T) {
	v := NewVector(1, 2, 3)
	s, err := v.Slice(0, 3)
	require.NoError(t, err)
	defer s.Release()

	sum, err := v.Add(s)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, sum.Values())
}

func TestMutVectorAddLeavesReceiver(t *testing.T) {
	a := NewMutVector(1, 2, 3)
	b := NewMutVector(1, 1, 1)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, sum.Values())
	assert.Equal(t, []int{1, 2, 3}, a.Values())
}

func TestAddAssign(t *testing.T) {
	a := NewMutVector(1, 2, 3)
	b := NewVector(10, 20, 30)

	require.NoError(t, a.AddAssign(b))
	assert.Equal(t, []int{11, 22, 33}, a.Values())
}

func TestSubAssignAndMulElemAssign(t *testing.T) {
	a := NewMutVector(10, 20, 30)
	b := NewVector(1, 2, 3)

	require.NoError(t, a.SubAssign(b))
	assert.Equal(t, []int{9, 18, 27}, a.Values())

	require.NoError(t, a.MulElemAssign(b))
	assert.Equal(t, []int{9, 36, 81}, a.Values())
}

func TestScaleAssign(t *testing.T) {
	a := NewMutVector(1, 2, 3)
	require.NoError(t, a.ScaleAssign(3))
	assert.Equal(t, []int{3, 6, 9}, a.Values())
}

func TestAssignShapeMismatch(t *testing.T) {
	a := NewMutVector(1, 2, 3)
	b := NewVector(1, 2)
	assert.ErrorIs(t, a.AddAssign(b), ErrShapeMismatch)
}

func TestAssignBlockedByLiveBorrow(t *testing.T) {
	a := NewMutVector(1, 2, 3)
	s, err := a.Slice(0, 2)
	require.NoError(t, err)
	defer s.Release()

	b := NewVector(1, 1, 1)
	assert.ErrorIs(t, a.AddAssign(b), ErrAliasingViolation)
	assert.ErrorIs(t, a.ScaleAssign(2), ErrAliasingViolation)
}

func TestMutSliceAssignWritesThrough(t *testing.T) {
	v := NewMutVector(1, 2, 3, 4)
	s, err := v.SliceMut(1, 3)
	require.NoError(t, err)

	require.NoError(t, s.AddAssign(NewVector(10, 10)))
	s.Release()
	assert.Equal(t, []int{1, 12, 13, 4}, v.Values())
}

// An assign whose operand aliases the destination at a shifted offset must
// read the pre-write elements.
func TestAssignOverlapSnapshot(t *testing.T) {
	v := NewMutVector(1, 2, 3, 4)

	dst, err := v.SliceMut(0, 3)
	require.NoError(t, err)
	src, err := v.SliceMut(1, 4)
	require.NoError(t, err)
	// Two exclusive overlapping spans cannot both be live.
	assert.Nil(t, src)
	assert.ErrorIs(t, err, ErrAliasingViolation)
	dst.Release()

	// With the destination trailing the operand the writes land ahead of
	// the reads, so only a snapshotted operand gives the right answer.
	m := NewMutVector(1, 2, 3, 4)
	d, err := m.SliceMut(1, 4)
	require.NoError(t, err)
	s := &MutVectorSlice[int]{st: m.st, off: 0, n: 3}
	require.NoError(t, d.AddAssign(s))
	d.Release()
	assert.Equal(t, []int{1, 3, 5, 7}, m.Values())
}

func TestVectorsEqual(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewMutVector(1, 2, 3)
	c := NewVector(1, 2, 4)

	assert.True(t, VectorsEqual[int](a, b))
	assert.False(t, VectorsEqual[int](a, c))
	assert.False(t, VectorsEqual[int](a, NewVector(1, 2)))
}

func TestVectorAddLarge(t *testing.T) {
	n := 10_000
	a, err := VectorFromFunc(n, func(i int) int { return i })
	require.NoError(t, err)
	b, err := FillVector(n, 1)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	for _, i := range []int{0, 1, n / 2, n - 1} {
		got, err := sum.At(i)
		require.NoError(t, err)
		assert.Equal(t, i+1, got)
	}
}
