package convert

import "github.com/denshoproject/ddr-iaconvert/pkg/ddr"

// Resolution is the tagged result of resolving a file identifier. Entity is
// nil when the identifier resolves to nothing; that is a recoverable
// condition, not an error.
type Resolution struct {
	Entity *ddr.EntityRecord
	// Exact is true when the file id named an entity directly (the files
	// table came from an export path that writes entity identifiers).
	Exact bool
}

// Resolved reports whether an owning entity was found.
func (r Resolution) Resolved() bool { return r.Entity != nil }

// Resolver maps file identifiers to owning entities. The files table may
// come from two export paths: one writes bare entity identifiers, the other
// writes full file identifiers with a role-and-hash suffix. Resolve handles
// both without assuming either.
type Resolver struct {
	idx *Index
}

// NewResolver creates a resolver over the given index.
func NewResolver(idx *Index) *Resolver {
	return &Resolver{idx: idx}
}

// Resolve determines the owning entity for a file identifier: exact entity
// match first, then the derived owner identifier with the file suffix
// stripped. Malformed identifiers resolve to an unresolved Resolution.
func (r *Resolver) Resolve(fileID string) Resolution {
	if e, ok := r.idx.Get(fileID); ok {
		return Resolution{Entity: e, Exact: true}
	}
	if owner, ok := ddr.OwnerEntityID(fileID); ok {
		if e, ok := r.idx.Get(owner); ok {
			return Resolution{Entity: e}
		}
	}
	return Resolution{}
}
