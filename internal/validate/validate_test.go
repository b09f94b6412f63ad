package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVar_SortKey(t *testing.T) {
	for _, ok := range []string{"matchScore", "nameAsc", "a", "experience2Desc"} {
		assert.NoError(t, Var(ok, "sortkey"), ok)
	}
	for _, bad := range []string{"", "MatchScore", "name-asc", "name asc", "9lives"} {
		assert.Error(t, Var(bad, "sortkey"), bad)
	}
}

func TestVar_ViewMode(t *testing.T) {
	require.NoError(t, Var("list", "viewmode"))
	require.NoError(t, Var("grid", "viewmode"))
	require.Error(t, Var("table", "viewmode"))
	require.Error(t, Var("", "viewmode"))
}

func TestStruct_CombinedTags(t *testing.T) {
	type sample struct {
		Sort string `validate:"required,sortkey"`
		View string `validate:"required,viewmode"`
		ID   string `validate:"omitempty,uuid4"`
	}

	require.NoError(t, Struct(sample{Sort: "nameAsc", View: "grid"}))
	require.Error(t, Struct(sample{Sort: "nameAsc", View: "grid", ID: "nope"}))
	require.Error(t, Struct(sample{View: "list"}))
}
