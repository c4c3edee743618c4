package ddr

import "strings"

// Entity format codes relevant to conversion. The entities export carries
// more values than these; only FormatVH changes behavior.
const (
	FormatVH = "vh" // visual-history interview segment
)

// EntityRecord is one row of the entities export: a logical archival record
// (item, collection, or interview segment) distinct from its binary files.
type EntityRecord struct {
	ID          string // unique within one conversion run
	Format      string
	Sort        string // integer-like; for VH segments, the true segment number
	Title       string
	Description string
	Creation    string
	Location    string
	Creators    string // encoded role/people list, see ParseRolePeople
	Contributor string
	Extent      string // runtime for AV material
	Rights      string // license code (cc, pdm, ...)
	Facility    string // encoded term list, see FirstFacilityTerm

	// Extra holds passthrough columns not mapped to a named field.
	Extra map[string]string

	// Ord is the zero-based position of the row in the input table.
	Ord int
}

// IsVHSegment reports whether the entity is a visual-history interview segment.
func (e *EntityRecord) IsVHSegment() bool {
	return e.Format == FormatVH
}

// FileRecord is one row of the files export: a single binary asset owned by
// an entity. ID is polymorphic: a file identifier (entity id plus a
// role-and-hash suffix) or a bare entity identifier, depending on which
// export path produced the table.
type FileRecord struct {
	ID           string
	External     string // boolean-like; see IsExternal
	Role         string // master, mezzanine, ...
	BasenameOrig string
	MimeType     string
	Label        string
	SHA1         string
	Size         string

	// Extra holds passthrough columns not mapped to a named field.
	Extra map[string]string

	// Ord is the zero-based position of the row in the input table.
	Ord int
}

// IsExternal reports whether the file is externally hosted and therefore
// eligible for upload. The export encodes the flag as "1"; other truthy
// spellings are accepted for tables that round-tripped through spreadsheets.
func (f *FileRecord) IsExternal() bool {
	switch strings.ToLower(strings.TrimSpace(f.External)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
