package ddr

import "strings"

// Identifier conventions. DDR identifiers are dash-separated segments, e.g.
// ddr-densho-1000-28-1. A file identifier appends a role and a content-hash
// prefix to its owning entity's identifier:
//
//	ddr-densho-1000-28-1-mezzanine-dd9316cf8b
//
// A VH segment's parent interview is the identifier one segment up:
//
//	ddr-densho-1000-28-1  ->  ddr-densho-1000-28
//
// Both relationships are naming conventions of the source system, not
// declared foreign keys, so they are derived here and nowhere else. If the
// upstream identifier scheme changes, these two functions are the only code
// that needs to follow it.

// ParentInterviewID derives the parent interview identifier of a VH segment
// by dropping the final identifier segment. ok is false when the identifier
// has no parent (no dash).
func ParentInterviewID(segmentID string) (string, bool) {
	i := strings.LastIndex(segmentID, "-")
	if i <= 0 {
		return "", false
	}
	return segmentID[:i], true
}

// OwnerEntityID derives the owning entity identifier from a file identifier
// by dropping the trailing role and content-hash segments. ok is false when
// the identifier is too short to carry a file suffix; such identifiers are
// either bare entity identifiers or malformed, and the caller decides by
// lookup, never by crashing.
func OwnerEntityID(fileID string) (string, bool) {
	j := strings.LastIndex(fileID, "-")
	if j <= 0 {
		return "", false
	}
	i := strings.LastIndex(fileID[:j], "-")
	if i <= 0 {
		return "", false
	}
	return fileID[:i], true
}
