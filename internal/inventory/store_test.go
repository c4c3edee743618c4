package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

// writeCSV writes content to a file under a temp dir and returns its path.
func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setupStore(t *testing.T, entitiesCSV, filesCSV string) *Store {
	t.Helper()
	dir := t.TempDir()
	s := NewStore()
	err := s.Attach(Config{
		EntitiesCSV: writeCSV(t, dir, "entities.csv", entitiesCSV),
		FilesCSV:    writeCSV(t, dir, "files.csv", filesCSV),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Detach() })
	return s
}

func TestStoreLoadsRecordsInInputOrder(t *testing.T) {
	s := setupStore(t,
		"id,format,sort,title,custom\n"+
			"ddr-test-1-2,vh,2,Second,beta\n"+
			"ddr-test-1-1,vh,1,First,alpha\n",
		"id,external,role,sha1\n"+
			"ddr-test-1-2-mezzanine-abc,1,mezzanine,abc\n"+
			"ddr-test-1-1-mezzanine-def,0,mezzanine,def\n",
	)

	entities, err := s.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "ddr-test-1-2", entities[0].ID)
	assert.Equal(t, "ddr-test-1-1", entities[1].ID)
	assert.Equal(t, 0, entities[0].Ord)
	assert.Equal(t, 1, entities[1].Ord)
	assert.Equal(t, "Second", entities[0].Title)
	assert.Equal(t, map[string]string{"custom": "beta"}, entities[0].Extra)

	files, err := s.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "ddr-test-1-2-mezzanine-abc", files[0].ID)
	assert.True(t, files[0].IsExternal())
	assert.False(t, files[1].IsExternal())
	assert.Equal(t, "abc", files[0].SHA1)
}

func TestStoreMissingRequiredColumn(t *testing.T) {
	tests := []struct {
		name     string
		entities string
		files    string
	}{
		{
			name:     "entities missing sort",
			entities: "id,format,title\nddr-test-1-1,vh,First\n",
			files:    "id,external\nx,1\n",
		},
		{
			name:     "files missing external",
			entities: "id,format,sort\nddr-test-1-1,vh,1\n",
			files:    "id,role\nx,mezzanine\n",
		},
		{
			name:     "empty entities file",
			entities: "",
			files:    "id,external\nx,1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			s := NewStore()
			err := s.Attach(Config{
				EntitiesCSV: writeCSV(t, dir, "entities.csv", tt.entities),
				FilesCSV:    writeCSV(t, dir, "files.csv", tt.files),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ddr.ErrMissingColumn)
		})
	}
}

func TestStoreShortRowsArePadded(t *testing.T) {
	s := setupStore(t,
		"id,format,sort,title\nddr-test-1-1,vh,1\n",
		"id,external\nddr-test-1-1-mezzanine-abc,1\n",
	)

	entities, err := s.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "", entities[0].Title)
}

func TestStoreDetachIsIdempotent(t *testing.T) {
	s := setupStore(t,
		"id,format,sort\nddr-test-1-1,vh,1\n",
		"id,external\nx,1\n",
	)
	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach())

	_, err := s.Entities()
	assert.Error(t, err)
}

func TestStoreMissingFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore()
	err := s.Attach(Config{
		EntitiesCSV: filepath.Join(dir, "nope.csv"),
		FilesCSV:    filepath.Join(dir, "nope2.csv"),
	})
	require.Error(t, err)
}
