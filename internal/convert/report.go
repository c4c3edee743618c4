package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Warning kinds for recoverable conditions.
const (
	WarnUnresolvedFile  = "unresolved-file"
	WarnMissingVHParent = "missing-parent"
	WarnSegmentOrdering = "segment-ordering"
)

// Warning records one recoverable condition: the affected identifier and
// what happened.
type Warning struct {
	Kind    string
	Subject string // file or entity identifier the warning is about
	Detail  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s", w.Kind, w.Subject, w.Detail)
}

// Report accumulates recoverable conditions and counters across one
// conversion run. It is passed through the pipeline explicitly and returned
// with the output rows; nothing in the pipeline keeps global state.
type Report struct {
	RunID     string
	StartedAt time.Time

	Warnings []Warning

	FilesSeen    int // file rows examined
	FilesSkipped int // eligible rows dropped as unresolved
	RowsEmitted  int
}

// NewReport creates a report stamped with a fresh run ID.
func NewReport() *Report {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Report{
		RunID:     id.String(),
		StartedAt: time.Now().UTC(),
	}
}

// Warn records a recoverable condition.
func (r *Report) Warn(kind, subject, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{
		Kind:    kind,
		Subject: subject,
		Detail:  fmt.Sprintf(format, args...),
	})
}

// CountByKind returns how many warnings of the given kind were recorded.
func (r *Report) CountByKind(kind string) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Summary renders the end-of-run summary: counters plus every accumulated
// warning, one per line.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d files examined, %d rows emitted, %d skipped, %d warnings",
		r.RunID, r.FilesSeen, r.RowsEmitted, r.FilesSkipped, len(r.Warnings))
	for _, w := range r.Warnings {
		b.WriteString("\n  ")
		b.WriteString(w.String())
	}
	return b.String()
}
