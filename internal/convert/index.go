// Package convert implements the entity-file resolution and
// metadata-derivation engine: entity indexing, file identifier resolution,
// visual-history segment linking, and assembly of upload-ready metadata rows.
package convert

import (
	"fmt"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

// Index provides lookups over one run's entity records: exact identifier
// match, and VH segment grouping by derived parent-interview identifier.
// Construction is one pass; the index is read-only afterwards and safe for
// concurrent lookups.
type Index struct {
	byID     map[string]*ddr.EntityRecord
	segments map[string][]*ddr.EntityRecord
}

// NewIndex builds an index over the entity sequence. Returns an error
// wrapping ddr.ErrDuplicateIdentifier on an identifier collision, since
// every lookup after that point would be ambiguous.
func NewIndex(entities []ddr.EntityRecord) (*Index, error) {
	idx := &Index{
		byID:     make(map[string]*ddr.EntityRecord, len(entities)),
		segments: make(map[string][]*ddr.EntityRecord),
	}

	for i := range entities {
		e := &entities[i]
		if _, exists := idx.byID[e.ID]; exists {
			return nil, fmt.Errorf("entity row %d: %w: %s", e.Ord, ddr.ErrDuplicateIdentifier, e.ID)
		}
		idx.byID[e.ID] = e

		if e.IsVHSegment() {
			parent, ok := ddr.ParentInterviewID(e.ID)
			if !ok {
				// A segment with an unparseable identifier cannot join a
				// group; it is still resolvable by exact match.
				continue
			}
			idx.segments[parent] = append(idx.segments[parent], e)
		}
	}
	return idx, nil
}

// Get returns the entity with the given identifier.
func (idx *Index) Get(id string) (*ddr.EntityRecord, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// SegmentsOf returns the VH segments grouped under a parent interview
// identifier, in entity-table order.
func (idx *Index) SegmentsOf(parentID string) []*ddr.EntityRecord {
	return idx.segments[parentID]
}

// SegmentGroups returns the parent identifiers of every segment group.
func (idx *Index) SegmentGroups() []string {
	groups := make([]string, 0, len(idx.segments))
	for parent := range idx.segments {
		groups = append(groups, parent)
	}
	return groups
}
