package linalg

import "fmt"

// Op identifies an operator of the container algebra.
type Op uint8

// The supported operator set.
const (
	OpAdd     Op = iota // elementwise addition
	OpSub               // elementwise subtraction
	OpMulElem           // elementwise (Hadamard) multiplication
	OpScale             // scalar broadcast multiplication
	OpDot               // vector dot product, scalar result
	OpMatMul            // structural matrix multiplication
	OpMatVec            // matrix × vector, the cross-family table

	numOps
)

// String returns a human-readable operator name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMulElem:
		return "mul-elem"
	case OpScale:
		return "scale"
	case OpDot:
		return "dot"
	case OpMatMul:
		return "matmul"
	case OpMatVec:
		return "matvec"
	default:
		return "unknown"
	}
}

// Ops returns the full operator set in a fixed order.
func Ops() []Op {
	return []Op{OpAdd, OpSub, OpMulElem, OpScale, OpDot, OpMatMul, OpMatVec}
}

// pairOps is the subset of operators taking two container operands.
func pairOps() []Op {
	return []Op{OpAdd, OpSub, OpMulElem, OpDot, OpMatMul, OpMatVec}
}

// resultForm describes what an operation produces.
type resultForm uint8

const (
	// formOwned: a freshly allocated owning container in the default,
	// exterior-immutable mode. This is the result of every
	// container-producing operation, including the case where both operands
	// are interior-mutable: one rule for the whole table, no storage reuse.
	// Callers that want storage reuse use the explicit *Assign operations
	// on the interior-mutable shapes instead. Views are never a result
	// shape; they are handles, not products.
	formOwned resultForm = iota
	// formScalar: a single element value (dot product).
	formScalar
)

// opRule is one entry of the operation resolution table.
type opRule struct {
	result     resultForm
	structural bool // inner-dimension check instead of equal-shape check
}

// pairKey addresses one entry of the binary table: an operator applied to
// an ordered pair of operand variants.
type pairKey struct {
	op  Op
	lhs Variant
	rhs Variant
}

var (
	// pairRules is the materialized cross-product of pair operators and
	// ordered variant pairs. Built once at init; resolution is a lookup, not
	// open dispatch, so no capability interface ever reaches a caller.
	pairRules map[pairKey]opRule

	// scalarRules covers OpScale, whose right operand is a bare element.
	scalarRules map[Variant]opRule
)

func init() {
	pairRules, scalarRules = buildTables()
}

func buildTables() (map[pairKey]opRule, map[Variant]opRule) {
	pair := make(map[pairKey]opRule, len(pairOps())*int(numVariants)*int(numVariants))
	for _, op := range pairOps() {
		rule := opRule{result: formOwned}
		switch op {
		case OpDot:
			rule.result = formScalar
		case OpMatMul, OpMatVec:
			rule.structural = true
		}
		for _, l := range Variants() {
			for _, r := range Variants() {
				pair[pairKey{op: op, lhs: l, rhs: r}] = rule
			}
		}
	}

	scalar := make(map[Variant]opRule, int(numVariants))
	for _, v := range Variants() {
		scalar[v] = opRule{result: formOwned}
	}
	return pair, scalar
}

// resolvePair looks up the rule for op applied to the ordered variant pair
// (l, r). A miss indicates an incomplete table, never a caller mistake.
func resolvePair(op Op, l, r Variant) (opRule, error) {
	rule, ok := pairRules[pairKey{op: op, lhs: l, rhs: r}]
	if !ok {
		return opRule{}, fmt.Errorf("linalg: no rule for %s(%s, %s)", op, l, r)
	}
	return rule, nil
}

// resolveScalar looks up the broadcast rule for the operand variant.
func resolveScalar(v Variant) (opRule, error) {
	rule, ok := scalarRules[v]
	if !ok {
		return opRule{}, fmt.Errorf("linalg: no scalar rule for %s", v)
	}
	return rule, nil
}

// VerifyOperationTable sweeps the full operator × variant × variant
// cross-product and reports the first gap or inconsistent rule. Downstream
// code generators rely on the table being total, so this check runs in the
// test suite on every build.
func VerifyOperationTable() error {
	for _, op := range pairOps() {
		for _, l := range Variants() {
			for _, r := range Variants() {
				rule, err := resolvePair(op, l, r)
				if err != nil {
					return err
				}
				if op == OpDot && rule.result != formScalar {
					return fmt.Errorf("linalg: %s(%s, %s) must produce a scalar", op, l, r)
				}
				if op != OpDot && rule.result != formOwned {
					return fmt.Errorf("linalg: %s(%s, %s) must produce an owning default container", op, l, r)
				}
				if rule.structural != (op == OpMatMul || op == OpMatVec) {
					return fmt.Errorf("linalg: %s(%s, %s) has wrong compatibility check", op, l, r)
				}
			}
		}
	}
	for _, v := range Variants() {
		rule, err := resolveScalar(v)
		if err != nil {
			return err
		}
		if rule.result != formOwned {
			return fmt.Errorf("linalg: %s(%s) must produce an owning default container", OpScale, v)
		}
	}
	return nil
}
