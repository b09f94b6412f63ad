//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRaw(t *testing.T, path string, raw map[string]any) {
	t.Helper()
	b, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
}

func readRaw(t *testing.T, path string) map[string]any {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	return raw
}

func TestStorage_DefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := NewStorage(path)
	require.NoError(t, err)
	assert.Equal(t, "matchScore", s.Data.SortBy)
	assert.Equal(t, "list", s.Data.ViewMode)
	assert.NotEmpty(t, s.Data.ProfileID)

	// NewStorage does not write.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStorage_NewOrExistingCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	s, err := NewOrExistingStorage(path)
	require.NoError(t, err)

	raw := readRaw(t, path)
	assert.Equal(t, "matchScore", raw["sort_by"])
	assert.Equal(t, "list", raw["view_mode"])
	assert.Equal(t, s.Data.ProfileID, raw["profile_id"])
}

func TestStorage_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := NewOrExistingStorage(path)
	require.NoError(t, err)
	s.Data.SortBy = "nameAsc"
	s.Data.ViewMode = "grid"
	require.NoError(t, s.Save())

	s2, err := NewOrExistingStorage(path)
	require.NoError(t, err)
	assert.Equal(t, "nameAsc", s2.Data.SortBy)
	assert.Equal(t, "grid", s2.Data.ViewMode)
	assert.Equal(t, s.Data.ProfileID, s2.Data.ProfileID)
}

func TestStorage_SelfHealsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	writeRaw(t, path, map[string]any{
		"sort_by":    "Not A Key",
		"view_mode":  "table",
		"profile_id": "not-a-uuid",
	})

	s, err := NewStorage(path)
	require.NoError(t, err)
	assert.Equal(t, "matchScore", s.Data.SortBy)
	assert.Equal(t, "list", s.Data.ViewMode)
	assert.NotEqual(t, "not-a-uuid", s.Data.ProfileID)

	raw := readRaw(t, path)
	assert.Equal(t, "list", raw["view_mode"])
	assert.Equal(t, "matchScore", raw["sort_by"])
}

func TestStorage_KeepsUnknownWellFormedSort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	writeRaw(t, path, map[string]any{"sort_by": "bogus", "view_mode": "grid"})

	s, err := NewStorage(path)
	require.NoError(t, err)
	assert.Equal(t, "bogus", s.Data.SortBy)
	assert.Equal(t, "grid", s.Data.ViewMode)
}

func TestStorage_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))

	_, err := NewStorage(path)
	require.Error(t, err)
}

func TestStorage_ResetKeepsProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s, err := NewOrExistingStorage(path)
	require.NoError(t, err)
	id := s.Data.ProfileID

	s.Data.SortBy = "salaryAsc"
	s.Data.ViewMode = "grid"
	require.NoError(t, s.Reset())

	s2, err := NewStorage(path)
	require.NoError(t, err)
	assert.Equal(t, "matchScore", s2.Data.SortBy)
	assert.Equal(t, "list", s2.Data.ViewMode)
	assert.Equal(t, id, s2.Data.ProfileID)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandTilde("~/x/prefs.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "prefs.json"), got)

	got, err = expandTilde("/abs/prefs.json")
	require.NoError(t, err)
	assert.Equal(t, "/abs/prefs.json", got)
}
