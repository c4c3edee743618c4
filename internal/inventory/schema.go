// Package inventory implements the tabular record store for a conversion
// run. Both DDR CSV exports are loaded once into an in-memory SQLite
// database, which then serves ordered, read-only record sequences to the
// rest of the pipeline.
package inventory

// Schema DDL for the two export tables. The ord column preserves input row
// order; extra holds unmapped passthrough columns as a JSON object.
const (
	createEntities = `CREATE TABLE entities (
    ord INTEGER PRIMARY KEY,
    id TEXT NOT NULL,
    format TEXT NOT NULL DEFAULT '',
    sort TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    creation TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    creators TEXT NOT NULL DEFAULT '',
    contributor TEXT NOT NULL DEFAULT '',
    extent TEXT NOT NULL DEFAULT '',
    rights TEXT NOT NULL DEFAULT '',
    facility TEXT NOT NULL DEFAULT '',
    extra TEXT NOT NULL DEFAULT '{}'
);`

	createFiles = `CREATE TABLE files (
    ord INTEGER PRIMARY KEY,
    id TEXT NOT NULL,
    external TEXT NOT NULL DEFAULT '',
    role TEXT NOT NULL DEFAULT '',
    basename_orig TEXT NOT NULL DEFAULT '',
    mimetype TEXT NOT NULL DEFAULT '',
    label TEXT NOT NULL DEFAULT '',
    sha1 TEXT NOT NULL DEFAULT '',
    size TEXT NOT NULL DEFAULT '',
    extra TEXT NOT NULL DEFAULT '{}'
);`
)

// entityColumns maps CSV header names to entities table columns. Headers not
// listed here land in extra.
var entityColumns = map[string]string{
	"id":          "id",
	"format":      "format",
	"sort":        "sort",
	"title":       "title",
	"description": "description",
	"creation":    "creation",
	"location":    "location",
	"creators":    "creators",
	"contributor": "contributor",
	"extent":      "extent",
	"rights":      "rights",
	"facility":    "facility",
}

// fileColumns maps CSV header names to files table columns.
var fileColumns = map[string]string{
	"id":            "id",
	"external":      "external",
	"role":          "role",
	"basename_orig": "basename_orig",
	"mimetype":      "mimetype",
	"label":         "label",
	"sha1":          "sha1",
	"size":          "size",
}

// Required columns per table. Their absence is a fatal input error.
var (
	requiredEntityColumns = []string{"id", "format", "sort"}
	requiredFileColumns   = []string{"id", "external"}
)
