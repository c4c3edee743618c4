package inventory

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

// Config names the two export files a Store loads.
type Config struct {
	EntitiesCSV string
	FilesCSV    string
}

// Store holds one conversion run's input tables in an in-memory SQLite
// database. Records are loaded once at Attach and never mutated; all reads
// return rows in input order.
type Store struct {
	db       *sql.DB
	attached bool
}

// NewStore creates an unattached store. Call Attach before reading.
func NewStore() *Store {
	return &Store{}
}

// Attach parses both CSV exports and loads them into a fresh in-memory
// database. Loading is transactional: either both tables load or the store
// stays unattached. Returns an error wrapping ddr.ErrMissingColumn when a
// required column is absent.
func (s *Store) Attach(cfg Config) error {
	if s.attached {
		return fmt.Errorf("store already attached")
	}

	entities, err := readTable("entities", cfg.EntitiesCSV, requiredEntityColumns)
	if err != nil {
		return err
	}
	files, err := readTable("files", cfg.FilesCSV, requiredFileColumns)
	if err != nil {
		return err
	}

	// A single connection keeps every statement on the same in-memory
	// database.
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("opening inventory database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createEntities + createFiles); err != nil {
		db.Close()
		return fmt.Errorf("creating inventory schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTable(tx, entities, entityColumns); err != nil {
		db.Close()
		return err
	}
	if err := insertTable(tx, files, fileColumns); err != nil {
		db.Close()
		return err
	}
	if err := tx.Commit(); err != nil {
		db.Close()
		return fmt.Errorf("committing load transaction: %w", err)
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (s *Store) Detach() error {
	if !s.attached {
		return nil
	}
	s.attached = false
	return s.db.Close()
}

// insertTable inserts every row of a parsed table, routing mapped headers to
// their columns and collecting the rest into the extra JSON object.
func insertTable(tx *sql.Tx, t *table, mapping map[string]string) error {
	cols := []string{"ord"}
	// Stable column order: iterate headers, not the map.
	headerCol := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerCol[i] = mapping[h]
		if headerCol[i] != "" {
			cols = append(cols, headerCol[i])
		}
	}
	cols = append(cols, "extra")

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(cols, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", t.name, err)
	}
	defer stmt.Close()

	for ord, row := range t.rows {
		args := make([]any, 0, len(cols))
		args = append(args, ord)
		extra := map[string]string{}
		for i, h := range t.headers {
			if headerCol[i] != "" {
				args = append(args, row[i])
			} else {
				extra[h] = row[i]
			}
		}
		extraJSON, err := json.Marshal(extra)
		if err != nil {
			return fmt.Errorf("encoding extra columns for %s row %d: %w", t.name, ord, err)
		}
		args = append(args, string(extraJSON))

		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("loading %s row %d: %w", t.name, ord, err)
		}
	}
	return nil
}

// Entities returns every entity record in input order.
func (s *Store) Entities() ([]ddr.EntityRecord, error) {
	if !s.attached {
		return nil, fmt.Errorf("store is detached")
	}

	rows, err := s.db.Query(`SELECT ord, id, format, sort, title, description,
		creation, location, creators, contributor, extent, rights, facility, extra
		FROM entities ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	var entities []ddr.EntityRecord
	for rows.Next() {
		var e ddr.EntityRecord
		var extra string
		if err := rows.Scan(&e.Ord, &e.ID, &e.Format, &e.Sort, &e.Title,
			&e.Description, &e.Creation, &e.Location, &e.Creators,
			&e.Contributor, &e.Extent, &e.Rights, &e.Facility, &extra); err != nil {
			return nil, fmt.Errorf("scanning entity row: %w", err)
		}
		if err := json.Unmarshal([]byte(extra), &e.Extra); err != nil {
			return nil, fmt.Errorf("decoding extra columns for entity %s: %w", e.ID, err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}
	return entities, nil
}

// Files returns every file record in input order.
func (s *Store) Files() ([]ddr.FileRecord, error) {
	if !s.attached {
		return nil, fmt.Errorf("store is detached")
	}

	rows, err := s.db.Query(`SELECT ord, id, external, role, basename_orig,
		mimetype, label, sha1, size, extra
		FROM files ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	var files []ddr.FileRecord
	for rows.Next() {
		var f ddr.FileRecord
		var extra string
		if err := rows.Scan(&f.Ord, &f.ID, &f.External, &f.Role,
			&f.BasenameOrig, &f.MimeType, &f.Label, &f.SHA1, &f.Size, &extra); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		if err := json.Unmarshal([]byte(extra), &f.Extra); err != nil {
			return nil, fmt.Errorf("decoding extra columns for file %s: %w", f.ID, err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating files: %w", err)
	}
	return files, nil
}
