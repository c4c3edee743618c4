package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

// Columns is the fixed output schema expected by the IA bulk-upload tool.
// Every row carries a value for every column; missing values are empty
// strings so the table stays rectangular.
var Columns = []string{
	"identifier",
	"file",
	"collection",
	"mediatype",
	"title",
	"description",
	"contributor",
	"creator",
	"date",
	"subject[0]",
	"subject[1]",
	"subject[2]",
	"licenseurl",
	"credits",
	"runtime",
}

// Options configures row derivation.
type Options struct {
	// Collection is the IA collection bucket for non-segment items. VH
	// segments are bucketed under their interview identifier instead.
	Collection string

	// Subjects are the fixed subject headings applied to every row; the
	// third subject slot is filled from the entity's facility field.
	Subjects []string
}

// Row is one output record: a file's binary attributes merged with its
// owning entity's archival metadata, plus VH linkage when applicable.
type Row struct {
	Identifier  string
	File        string
	Collection  string
	MediaType   string
	Title       string
	Description string
	Contributor string
	Creator     string
	Date        string
	Subject0    string
	Subject1    string
	Subject2    string
	LicenseURL  string
	Credits     string
	Runtime     string

	// SourceBasename is the original binary filename, kept for the staging
	// collaborator; it is not part of the output schema.
	SourceBasename string
}

// Values returns the row's fields in Columns order.
func (r Row) Values() []string {
	return []string{
		r.Identifier,
		r.File,
		r.Collection,
		r.MediaType,
		r.Title,
		r.Description,
		r.Contributor,
		r.Creator,
		r.Date,
		r.Subject0,
		r.Subject1,
		r.Subject2,
		r.LicenseURL,
		r.Credits,
		r.Runtime,
	}
}

// BuildRow merges one file record with its resolved entity and optional VH
// context into an output row. Entity attributes win for archival metadata;
// file attributes win for binary-specific fields.
func BuildRow(f *ddr.FileRecord, e *ddr.EntityRecord, vh *VHContext, opts Options) Row {
	people := ddr.ParseRolePeople(e.Creators)

	row := Row{
		Identifier:     e.ID,
		File:           UploadFilename(e.ID, f),
		Collection:     opts.Collection,
		MediaType:      mediaType(f.MimeType),
		Title:          e.Title,
		Description:    buildDescription(e, vh),
		Contributor:    e.Contributor,
		Creator:        ddr.FormatRolePeople(people),
		Date:           e.Creation,
		Subject2:       ddr.FirstFacilityTerm(e.Facility),
		LicenseURL:     licenseURL(e.Rights),
		Credits:        ddr.FormatRolePeople(people),
		Runtime:        e.Extent,
		SourceBasename: f.BasenameOrig,
	}
	if len(opts.Subjects) > 0 {
		row.Subject0 = opts.Subjects[0]
	}
	if len(opts.Subjects) > 1 {
		row.Subject1 = opts.Subjects[1]
	}

	if vh != nil {
		// The IA collection bucket for a segment is its interview, not the
		// DDR collection.
		row.Collection = vh.InterviewID
		if row.Title == "" {
			row.Title = vh.InterviewTitle
		}
	}
	return row
}

// UploadFilename derives the staged binary name: entity identifier, file
// role, the first ten characters of the content hash, and the original
// extension.
func UploadFilename(entityID string, f *ddr.FileRecord) string {
	hash := f.SHA1
	if len(hash) > 10 {
		hash = hash[:10]
	}
	return entityID + "-" + f.Role + "-" + hash + filepath.Ext(f.BasenameOrig)
}

// mediaType maps a MIME type to the IA mediatype vocabulary. PDFs report as
// application/*, which IA files under texts.
func mediaType(mimetype string) string {
	top, _, _ := strings.Cut(mimetype, "/")
	switch top {
	case "video":
		return "movies"
	case "audio":
		return "audio"
	case "image":
		return "image"
	case "application", "text":
		return "texts"
	}
	return ""
}

// licenseURL maps a DDR rights code to its license URL. Unknown codes map to
// an empty string.
func licenseURL(code string) string {
	switch code {
	case "cc":
		return "https://creativecommons.org/licenses/by-nc-sa/4.0/"
	case "pdm":
		return "http://creativecommons.org/publicdomain/mark/1.0/"
	}
	return ""
}

// buildDescription assembles the IA description: location line, the entity's
// own description, segment sequence info with prev/next links, and the
// repository boilerplate pointing back to the DDR detail page.
func buildDescription(e *ddr.EntityRecord, vh *VHContext) string {
	var b strings.Builder

	if e.Location != "" {
		if vh != nil {
			b.WriteString("Interview location: ")
		} else {
			b.WriteString("Location: ")
		}
		b.WriteString(e.Location)
	}

	desc := e.Description
	if desc == "" && vh != nil {
		desc = vh.InterviewDescription
	}
	b.WriteString(desc)
	b.WriteString("<p>")

	if vh != nil {
		fmt.Fprintf(&b, "Segment %d of %d<p>%s<p>", vh.SegmentIndex, vh.SegmentCount, segmentLinks(vh))
	}

	fmt.Fprintf(&b,
		`See this item in the <a href="https://ddr.densho.org/" target="blank" rel="nofollow">Densho Digital Repository</a> at: <a href="https://ddr.densho.org/%s/" target="_blank" rel="nofollow">https://ddr.densho.org/%s/</a>.`,
		e.ID, e.ID)

	return b.String()
}

// segmentLinks renders prev/next detail-page links for a segment. First
// segments get only a next link, last segments only a previous link,
// singletons neither.
func segmentLinks(vh *VHContext) string {
	var prev, next string
	if vh.PrevID != "" {
		prev = fmt.Sprintf(`[ <a href="https://archive.org/details/%s">Previous segment</a> ]`, vh.PrevID)
	}
	if vh.NextID != "" {
		next = fmt.Sprintf(`[ <a href="https://archive.org/details/%s">Next segment</a> ]`, vh.NextID)
	}
	if prev != "" && next != "" {
		return prev + "  --  " + next
	}
	return prev + next
}
