package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationTableComplete(t *testing.T) {
	require.NoError(t, VerifyOperationTable())
}

func TestOperationTableCrossProduct(t *testing.T) {
	// Every pair operator resolves for every ordered variant pair, exactly
	// once per key.
	for _, op := range pairOps() {
		for _, l := range Variants() {
			for _, r := range Variants() {
				rule, err := resolvePair(op, l, r)
				require.NoError(t, err, "%s(%s, %s)", op, l, r)

				if op == OpDot {
					assert.Equal(t, formScalar, rule.result, "%s(%s, %s)", op, l, r)
				} else {
					assert.Equal(t, formOwned, rule.result, "%s(%s, %s)", op, l, r)
				}
			}
		}
	}

	expected := len(pairOps()) * len(Variants()) * len(Variants())
	assert.Len(t, pairRules, expected)
}

func TestOperationTableScalarRules(t *testing.T) {
	for _, v := range Variants() {
		rule, err := resolveScalar(v)
		require.NoError(t, err, "%s(%s)", OpScale, v)
		assert.Equal(t, formOwned, rule.result)
		assert.False(t, rule.structural)
	}
	assert.Len(t, scalarRules, len(Variants()))
}

func TestOperationTableStructuralRules(t *testing.T) {
	for _, op := range pairOps() {
		rule, err := resolvePair(op, Owned, Owned)
		require.NoError(t, err)
		structural := op == OpMatMul || op == OpMatVec
		assert.Equal(t, structural, rule.structural, "%s", op)
	}
}

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		name string
	}{
		{Owned, "owned"},
		{OwnedMut, "owned-mut"},
		{View, "view"},
		{ViewMut, "view-mut"},
		{numVariants, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.v.String())
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		name string
	}{
		{OpAdd, "add"},
		{OpSub, "sub"},
		{OpMulElem, "mul-elem"},
		{OpScale, "scale"},
		{OpDot, "dot"},
		{OpMatMul, "matmul"},
		{OpMatVec, "matvec"},
		{numOps, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.op.String())
	}
}

func TestCatalogOrderFixed(t *testing.T) {
	// Downstream generators iterate the catalog; the order is part of the
	// contract.
	assert.Equal(t, []Variant{Owned, OwnedMut, View, ViewMut}, Variants())
	assert.Equal(t, []Op{OpAdd, OpSub, OpMulElem, OpScale, OpDot, OpMatMul, OpMatVec}, Ops())
}
