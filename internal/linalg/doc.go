// Package linalg implements the core container algebra: the closed catalog
// of vector and matrix shapes, borrowed views over them, and the operation
// resolution table that combines any two shapes of a family.
package linalg
