package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

var testOpts = Options{
	Collection: "Densho",
	Subjects:   []string{"Japanese Americans", "Oral history"},
}

func TestUploadFilename(t *testing.T) {
	f := &ddr.FileRecord{
		Role:         "mezzanine",
		SHA1:         "dd9316cf8bca3e5f12a4b89c01",
		BasenameOrig: "interview-seg1.mpg",
	}
	assert.Equal(t, "ddr-test-1-1-mezzanine-dd9316cf8b.mpg", UploadFilename("ddr-test-1-1", f))

	short := &ddr.FileRecord{Role: "master", SHA1: "abc", BasenameOrig: "x.pdf"}
	assert.Equal(t, "ddr-test-1-master-abc.pdf", UploadFilename("ddr-test-1", short))
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		mimetype string
		want     string
	}{
		{"video/mpeg", "movies"},
		{"audio/mp3", "audio"},
		{"image/jpeg", "image"},
		{"application/pdf", "texts"},
		{"text/plain", "texts"},
		{"model/obj", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mediaType(tt.mimetype), "mimetype %q", tt.mimetype)
	}
}

func TestLicenseURL(t *testing.T) {
	assert.Equal(t, "https://creativecommons.org/licenses/by-nc-sa/4.0/", licenseURL("cc"))
	assert.Equal(t, "http://creativecommons.org/publicdomain/mark/1.0/", licenseURL("pdm"))
	assert.Equal(t, "", licenseURL(""))
	assert.Equal(t, "", licenseURL("nocc"))
}

func TestBuildRowPlainItem(t *testing.T) {
	e := &ddr.EntityRecord{
		ID:          "ddr-test-1",
		Format:      "img",
		Title:       "Camp photograph",
		Description: "A photograph.",
		Creation:    "1943",
		Location:    "Manzanar, California",
		Creators:    "Watanabe, Joe:photographer",
		Contributor: "Densho",
		Extent:      "1 photograph",
		Rights:      "cc",
		Facility:    "term:Manzanar|id:7",
	}
	f := &ddr.FileRecord{
		ID:           "ddr-test-1-master-abcdef12345",
		Role:         "master",
		SHA1:         "abcdef12345",
		BasenameOrig: "photo.jpg",
		MimeType:     "image/jpeg",
	}

	row := BuildRow(f, e, nil, testOpts)

	assert.Equal(t, "ddr-test-1", row.Identifier)
	assert.Equal(t, "ddr-test-1-master-abcdef1234.jpg", row.File)
	assert.Equal(t, "Densho", row.Collection)
	assert.Equal(t, "image", row.MediaType)
	assert.Equal(t, "Camp photograph", row.Title)
	assert.Equal(t, "Photographer: Watanabe, Joe", row.Creator)
	assert.Equal(t, row.Creator, row.Credits)
	assert.Equal(t, "1943", row.Date)
	assert.Equal(t, "Japanese Americans", row.Subject0)
	assert.Equal(t, "Oral history", row.Subject1)
	assert.Equal(t, "Manzanar", row.Subject2)
	assert.Equal(t, "https://creativecommons.org/licenses/by-nc-sa/4.0/", row.LicenseURL)
	assert.Equal(t, "1 photograph", row.Runtime)
	assert.Equal(t, "photo.jpg", row.SourceBasename)

	assert.Contains(t, row.Description, "Location: Manzanar, California")
	assert.Contains(t, row.Description, "A photograph.")
	assert.Contains(t, row.Description, "https://ddr.densho.org/ddr-test-1/")
	assert.NotContains(t, row.Description, "Segment")
}

func TestBuildRowSegment(t *testing.T) {
	e := &ddr.EntityRecord{
		ID:       "ddr-test-2-3",
		Format:   ddr.FormatVH,
		Sort:     "3",
		Location: "Seattle, Washington",
	}
	f := &ddr.FileRecord{
		ID:           "ddr-test-2-3-mezzanine-0123456789ab",
		Role:         "mezzanine",
		SHA1:         "0123456789ab",
		BasenameOrig: "seg3.mpg",
		MimeType:     "video/mpeg",
	}
	vh := &VHContext{
		InterviewID:          "ddr-test-2",
		ParentFound:          true,
		InterviewTitle:       "Oral History A",
		InterviewDescription: "An interview.",
		SegmentIndex:         3,
		SegmentCount:         4,
		SegmentNumber:        "3",
		PrevID:               "ddr-test-2-2",
		NextID:               "ddr-test-2-4",
	}

	row := BuildRow(f, e, vh, testOpts)

	assert.Equal(t, "ddr-test-2", row.Collection, "segments bucket under their interview")
	assert.Equal(t, "movies", row.MediaType)
	assert.Equal(t, "Oral History A", row.Title, "empty segment title falls back to interview title")

	assert.Contains(t, row.Description, "Interview location: Seattle, Washington")
	assert.Contains(t, row.Description, "An interview.")
	assert.Contains(t, row.Description, "Segment 3 of 4")
	assert.Contains(t, row.Description, `<a href="https://archive.org/details/ddr-test-2-2">Previous segment</a>`)
	assert.Contains(t, row.Description, `<a href="https://archive.org/details/ddr-test-2-4">Next segment</a>`)
}

func TestSegmentLinks(t *testing.T) {
	tests := []struct {
		name     string
		vh       VHContext
		wantPrev bool
		wantNext bool
	}{
		{"first", VHContext{NextID: "x-2"}, false, true},
		{"middle", VHContext{PrevID: "x-1", NextID: "x-3"}, true, true},
		{"last", VHContext{PrevID: "x-2"}, true, false},
		{"singleton", VHContext{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := segmentLinks(&tt.vh)
			if tt.wantPrev {
				assert.Contains(t, links, "Previous segment")
			} else {
				assert.NotContains(t, links, "Previous segment")
			}
			if tt.wantNext {
				assert.Contains(t, links, "Next segment")
			} else {
				assert.NotContains(t, links, "Next segment")
			}
			if tt.wantPrev && tt.wantNext {
				assert.Contains(t, links, "  --  ")
			}
		})
	}
}
