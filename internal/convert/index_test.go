package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

func TestNewIndexLookups(t *testing.T) {
	entities := []ddr.EntityRecord{
		{ID: "ddr-test-1", Format: "doc", Ord: 0},
		{ID: "ddr-test-2-1", Format: "vh", Sort: "1", Ord: 1},
		{ID: "ddr-test-2-2", Format: "vh", Sort: "2", Ord: 2},
		{ID: "ddr-test-2", Format: "img", Ord: 3},
	}

	idx, err := NewIndex(entities)
	require.NoError(t, err)

	e, ok := idx.Get("ddr-test-1")
	require.True(t, ok)
	assert.Equal(t, "doc", e.Format)

	_, ok = idx.Get("ddr-test-9")
	assert.False(t, ok)

	segments := idx.SegmentsOf("ddr-test-2")
	require.Len(t, segments, 2)
	assert.Equal(t, "ddr-test-2-1", segments[0].ID)
	assert.Equal(t, "ddr-test-2-2", segments[1].ID)

	assert.Empty(t, idx.SegmentsOf("ddr-test-1"))
	assert.Equal(t, []string{"ddr-test-2"}, idx.SegmentGroups())
}

func TestNewIndexDuplicateIdentifier(t *testing.T) {
	entities := []ddr.EntityRecord{
		{ID: "ddr-test-1", Ord: 0},
		{ID: "ddr-test-1", Ord: 1},
	}

	_, err := NewIndex(entities)
	require.Error(t, err)
	assert.ErrorIs(t, err, ddr.ErrDuplicateIdentifier)
	assert.Contains(t, err.Error(), "ddr-test-1")
}

func TestResolver(t *testing.T) {
	entities := []ddr.EntityRecord{
		{ID: "ddr-test-1-1", Format: "vh", Sort: "1"},
		{ID: "ddr-test-1", Format: "img"},
	}
	idx, err := NewIndex(entities)
	require.NoError(t, err)
	r := NewResolver(idx)

	t.Run("exact entity identifier", func(t *testing.T) {
		res := r.Resolve("ddr-test-1-1")
		require.True(t, res.Resolved())
		assert.True(t, res.Exact)
		assert.Equal(t, "ddr-test-1-1", res.Entity.ID)
	})

	t.Run("file identifier with suffix", func(t *testing.T) {
		res := r.Resolve("ddr-test-1-1-mezzanine-abc123def9")
		require.True(t, res.Resolved())
		assert.False(t, res.Exact)
		assert.Equal(t, "ddr-test-1-1", res.Entity.ID)
	})

	t.Run("no matching prefix is unresolved", func(t *testing.T) {
		res := r.Resolve("ddr-test-9-1-master-z")
		assert.False(t, res.Resolved())
	})

	t.Run("suffix strip does not fall through to grandparent", func(t *testing.T) {
		// ddr-test-1 exists, but the owner of this file id would be
		// ddr-test-1-9, which does not.
		res := r.Resolve("ddr-test-1-9-master-z")
		assert.False(t, res.Resolved())
	})

	t.Run("malformed identifier is unresolved, not an error", func(t *testing.T) {
		for _, id := range []string{"", "-", "x", "x-y"} {
			assert.False(t, r.Resolve(id).Resolved(), "id %q", id)
		}
	})
}
