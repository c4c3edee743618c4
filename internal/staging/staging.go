// Package staging maps source binaries to their upload names and copies
// them into a staging directory ahead of an upload run. The conversion core
// only supplies the mapping; the copier here is the I/O collaborator.
package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/denshoproject/ddr-iaconvert/internal/convert"
)

// CopyOp maps one source binary to its staged upload name.
type CopyOp struct {
	Source string // path of the exported binary
	Target string // upload filename, relative to the staging directory
}

// Plan derives the copy operations for a set of output rows. Rows without a
// recorded source basename (metadata-only exports) are skipped.
func Plan(rows []convert.Row, binDir string) []CopyOp {
	ops := make([]CopyOp, 0, len(rows))
	for _, row := range rows {
		if row.SourceBasename == "" {
			continue
		}
		ops = append(ops, CopyOp{
			Source: filepath.Join(binDir, row.SourceBasename),
			Target: row.File,
		})
	}
	return ops
}

// Copier materializes copy plans into a staging directory.
type Copier struct {
	Dir string
}

// Stage creates the staging directory and copies every planned binary into
// it under its upload name. Existing staged files are overwritten, so
// re-running a conversion is idempotent. Returns on the first failure.
func (c *Copier) Stage(ops []CopyOp) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	for _, op := range ops {
		if err := copyFile(op.Source, filepath.Join(c.Dir, op.Target)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening binary %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating staged file %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing staged file %s: %w", dst, err)
	}
	return nil
}
