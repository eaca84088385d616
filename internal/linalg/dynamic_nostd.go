//go:build advlinalg_nostd

package linalg

// Minimal profile: runtime-variable-shape operations are compiled out.
// Shapes are fixed at construction, so shape agreement is decided when
// containers are built rather than revisited by resize paths.

// DynamicSizing reports whether runtime-variable shapes are compiled in.
const DynamicSizing = false
