package convert

import (
	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

// Result is the complete outcome of one conversion run: output rows in
// file-table order plus the accumulated report.
type Result struct {
	Rows   []Row
	Report *Report
}

// Convert runs the whole pipeline: index the entities, link VH segments,
// then resolve and build one row per eligible file record. The run is a
// pure function of its inputs; all recoverable conditions land on the
// returned report, and only fatal input errors (duplicate entity
// identifiers) return an error.
func Convert(entities []ddr.EntityRecord, files []ddr.FileRecord, opts Options) (*Result, error) {
	report := NewReport()

	idx, err := NewIndex(entities)
	if err != nil {
		return nil, err
	}
	contexts := LinkSegments(idx, report)
	resolver := NewResolver(idx)

	rows := make([]Row, 0, len(files))
	for i := range files {
		f := &files[i]
		report.FilesSeen++
		if !f.IsExternal() {
			// Internal/preservation assets are not upload candidates.
			continue
		}

		res := resolver.Resolve(f.ID)
		if !res.Resolved() {
			report.FilesSkipped++
			report.Warn(WarnUnresolvedFile, f.ID, "no entity matches file identifier; file skipped")
			continue
		}

		var vh *VHContext
		if res.Entity.IsVHSegment() {
			if ctx, ok := contexts[res.Entity.ID]; ok {
				vh = &ctx
			}
		}
		rows = append(rows, BuildRow(f, res.Entity, vh, opts))
	}

	report.RowsEmitted = len(rows)
	return &Result{Rows: rows, Report: report}, nil
}
