package linalg

// Element is a constraint for supported container element types.
// An element must be a numeric value type: it supports +, - and *, and is
// copied by value. Both operands of every binary operator share the same
// element type; the library never widens or narrows across an operation.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func add[T Element](a, b T) T { return a + b }
func sub[T Element](a, b T) T { return a - b }
func mul[T Element](a, b T) T { return a * b }
