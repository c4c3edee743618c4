package convert

import (
	"sort"
	"strconv"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

// VHContext carries the cross-segment metadata attached to one visual-history
// segment: where it sits in its interview and what the parent interview says
// about itself.
type VHContext struct {
	// InterviewID is derived from the segment's own identifier, so it is
	// present even when the parent record is missing from the export.
	InterviewID string

	// Parent-derived fields; empty when ParentFound is false.
	ParentFound          bool
	InterviewTitle       string
	InterviewDescription string

	SegmentIndex  int    // 1-based position within the group, ordered by sort
	SegmentCount  int    // total segments in the group
	SegmentNumber string // raw sort value, the export's own segment number

	// Neighboring segment identifiers in sort order, for prev/next links.
	// Empty at the ends of the group.
	PrevID string
	NextID string
}

// LinkSegments performs the one batch pass over all VH segment groups:
// sorts each group by its numeric sort value, assigns ordinals and group
// sizes, copies descriptive fields from the parent interview, and records
// ordering and missing-parent warnings on the report. Returns contexts keyed
// by segment entity identifier.
func LinkSegments(idx *Index, report *Report) map[string]VHContext {
	contexts := make(map[string]VHContext)

	groups := idx.SegmentGroups()
	sort.Strings(groups)

	for _, parentID := range groups {
		segments := orderSegments(idx.SegmentsOf(parentID), report)

		parent, parentFound := idx.Get(parentID)
		if !parentFound {
			for _, seg := range segments {
				report.Warn(WarnMissingVHParent, seg.ID,
					"parent interview %s not in entity table; segment emitted without interview fields", parentID)
			}
		}

		for i, seg := range segments {
			ctx := VHContext{
				InterviewID:   parentID,
				ParentFound:   parentFound,
				SegmentIndex:  i + 1,
				SegmentCount:  len(segments),
				SegmentNumber: seg.Sort,
			}
			if parentFound {
				ctx.InterviewTitle = parent.Title
				ctx.InterviewDescription = parent.Description
			}
			if i > 0 {
				ctx.PrevID = segments[i-1].ID
			}
			if i < len(segments)-1 {
				ctx.NextID = segments[i+1].ID
			}
			contexts[seg.ID] = ctx
		}
	}
	return contexts
}

// orderSegments sorts a segment group by the numeric value of sort,
// ascending. Sort is authoritative: table order does not matter except as a
// stable tie-break. Segments with a non-numeric or missing sort order after
// the numeric ones, keeping their input order, and each records a warning,
// as does every duplicated sort value.
func orderSegments(group []*ddr.EntityRecord, report *Report) []*ddr.EntityRecord {
	ordered := make([]*ddr.EntityRecord, len(group))
	copy(ordered, group)

	num := make(map[*ddr.EntityRecord]int, len(ordered))
	numeric := make(map[*ddr.EntityRecord]bool, len(ordered))
	for _, seg := range ordered {
		n, err := strconv.Atoi(seg.Sort)
		if err == nil {
			num[seg] = n
			numeric[seg] = true
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if numeric[a] != numeric[b] {
			return numeric[a]
		}
		if !numeric[a] {
			return false
		}
		return num[a] < num[b]
	})

	for i, seg := range ordered {
		if !numeric[seg] {
			report.Warn(WarnSegmentOrdering, seg.ID,
				"sort value %q is not numeric; segment ordered by table position", seg.Sort)
			continue
		}
		if i > 0 && numeric[ordered[i-1]] && num[ordered[i-1]] == num[seg] {
			report.Warn(WarnSegmentOrdering, seg.ID,
				"sort value %d duplicates %s; input order kept", num[seg], ordered[i-1].ID)
		}
	}
	return ordered
}
