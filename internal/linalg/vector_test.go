package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	v := NewVector(1.0, 2.0, 3.0)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, Shape{3}, v.Shape())
	assert.Equal(t, []float64{1, 2, 3}, v.Values())
}

func TestNewVectorEmpty(t *testing.T) {
	v := NewVector[int]()
	assert.Equal(t, 0, v.Len())
}

func TestVectorAt(t *testing.T) {
	v := NewVector(10, 20, 30)

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	_, err = v.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestFillVector(t *testing.T) {
	v, err := FillVector(4, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7}, v.Values())

	_, err = FillVector(-1, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestVectorFromFunc(t *testing.T) {
	v, err := VectorFromFunc(4, func(i int) int { return i * i })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9}, v.Values())
}

func TestVectorValuesIsCopy(t *testing.T) {
	v := NewVector(1, 2, 3)
	vals := v.Values()
	vals[0] = 99

	got, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestVectorToOwnedIndependent(t *testing.T) {
	v := NewMutVector(1, 2, 3)
	owned := v.ToOwned()

	require.NoError(t, v.Set(0, 42))
	assert.Equal(t, []int{1, 2, 3}, owned.Values())
}

func TestMutVectorSet(t *testing.T) {
	v := NewMutVector(1, 2, 3)
	require.NoError(t, v.Set(2, 9))
	assert.Equal(t, []int{1, 2, 9}, v.Values())

	assert.ErrorIs(t, v.Set(3, 0), ErrIndexOutOfBounds)
	assert.ErrorIs(t, v.Set(-1, 0), ErrIndexOutOfBounds)
}

func TestMutVectorFrom(t *testing.T) {
	src := NewVector(1, 2, 3)
	mv := MutVectorFrom[int](src)
	require.NoError(t, mv.Set(0, 5))

	// The copy is independent of its source.
	assert.Equal(t, []int{1, 2, 3}, src.Values())
	assert.Equal(t, []int{5, 2, 3}, mv.Values())
}

func TestVectorSliceBounds(t *testing.T) {
	v := NewVector(1, 2, 3, 4, 5)

	s, err := v.Slice(1, 4)
	require.NoError(t, err)
	defer s.Release()
	assert.Equal(t, 3, s.Len())

	got, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = v.Slice(2, 6)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
	_, err = v.Slice(-1, 2)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
	_, err = v.Slice(3, 2)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestVectorSliceToOwnedSnapshot(t *testing.T) {
	v := NewMutVector(1, 2, 3, 4)
	s, err := v.Slice(1, 3)
	require.NoError(t, err)

	owned := s.ToOwned()
	s.Release()
	assert.Equal(t, []int{2, 3}, owned.Values())

	// Mutating the source afterwards must not touch the copy.
	require.NoError(t, v.Set(1, 99))
	assert.Equal(t, []int{2, 3}, owned.Values())
}

func TestVectorSliceReSlice(t *testing.T) {
	v := NewVector(1, 2, 3, 4, 5)
	s, err := v.Slice(1, 5)
	require.NoError(t, err)
	defer s.Release()

	sub, err := s.Slice(1, 3)
	require.NoError(t, err)
	defer sub.Release()

	assert.Equal(t, []int{3, 4}, sub.ToOwned().Values())

	_, err = s.Slice(2, 5)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestShapeHelpers(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{3}.Equal(Shape{3, 1}))
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 0, Shape{0, 3}.NumElements())

	clone := Shape{2, 3}.Clone()
	clone[0] = 9
	assert.Equal(t, 9, clone[0])

	assert.NoError(t, Shape{0}.Validate())
	assert.ErrorIs(t, Shape{-2}.Validate(), ErrShapeMismatch)
}
