package linalg

import (
	"fmt"
	"testing"
)

func BenchmarkVectorElementwise(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		x, _ := FillVector(size, 1.0)
		y, _ := FillVector(size, 2.0)

		b.Run(fmt.Sprintf("Add-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.Add(y)
			}
		})

		b.Run(fmt.Sprintf("MulElem-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.MulElem(y)
			}
		})

		b.Run(fmt.Sprintf("Dot-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.Dot(y)
			}
		})
	}
}

func BenchmarkVectorAssign(b *testing.B) {
	x, _ := FillMutVector(10000, 1.0)
	y, _ := FillVector(10000, 2.0)

	b.Run("AddAssign", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.AddAssign(y)
		}
	})

	b.Run("ScaleAssign", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.ScaleAssign(1.0)
		}
	})
}

func BenchmarkBorrowLedger(b *testing.B) {
	v, _ := FillMutVector(1000, 0.0)

	b.Run("SliceRelease", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s, _ := v.Slice(0, 500)
			s.Release()
		}
	})

	b.Run("Set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.Set(0, 1.0)
		}
	})
}

func BenchmarkMatMul(b *testing.B) {
	sizes := []int{16, 64, 128}

	for _, size := range sizes {
		x, _ := FillMatrix(size, size, 1.0)
		y, _ := FillMatrix(size, size, 2.0)

		b.Run(fmt.Sprintf("MatMul-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.MatMul(y)
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	m, _ := FillMatrix(256, 256, 1.0)
	v, _ := FillVector(256, 2.0)

	for i := 0; i < b.N; i++ {
		_, _ = m.MulVec(v)
	}
}
