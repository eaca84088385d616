package linalg

// Variant identifies one concrete container shape of a family. The catalog
// is closed: four variants per family, and every binary operator is defined
// for every ordered pair of variants within a family.
type Variant uint8

// The container shape catalog.
const (
	// Owned is the owning, exterior-immutable default: elementwise "update"
	// produces a new container.
	Owned Variant = iota
	// OwnedMut is the owning, interior-mutable variant: elements update in
	// place without the container changing identity.
	OwnedMut
	// View is a borrowed read-only window into an owner's storage.
	View
	// ViewMut is a borrowed window that may mutate the underlying storage
	// elementwise, never resize it.
	ViewMut

	numVariants
)

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case Owned:
		return "owned"
	case OwnedMut:
		return "owned-mut"
	case View:
		return "view"
	case ViewMut:
		return "view-mut"
	default:
		return "unknown"
	}
}

// Variants returns the full shape catalog in a fixed order, so downstream
// code generators can enumerate the operation table mechanically.
func Variants() []Variant {
	return []Variant{Owned, OwnedMut, View, ViewMut}
}
