package tables

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnDefDefaults(t *testing.T) {
	c := ColumnDef("name", "Name")
	assert.Equal(t, Column{Key: "name", Header: "Name"}, c)
	assert.False(t, c.Sortable)
	assert.False(t, c.Filterable)
	assert.Equal(t, RenderNone, c.Component)
}

func TestColumnDefOptions(t *testing.T) {
	c := ColumnDef("name", "Name", Sortable(), Filterable(), RenderWith(RenderProjectLink))
	assert.True(t, c.Sortable)
	assert.True(t, c.Filterable)
	assert.Equal(t, RenderProjectLink, c.Component)
	assert.Equal(t, c, ColumnDef("name", "Name", Sortable(), Filterable(), RenderWith(RenderProjectLink)))
}

func TestComponentColumnDef(t *testing.T) {
	c := ComponentColumnDef("Actions", RenderEditButton)
	assert.Equal(t, "", c.Key)
	assert.False(t, c.Sortable)
	assert.False(t, c.Filterable)
	assert.Equal(t, RenderEditButton, c.Component)
	assert.Equal(t, "Actions", c.Header)
}

func TestColumnJSON(t *testing.T) {
	b, err := json.Marshal(ColumnDef("unit", "Unit"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"unit","header":"Unit","sortable":false,"filterable":false}`, string(b))
}

func TestColumnSetsHaveUniqueKeys(t *testing.T) {
	for name, cols := range map[string][]Column{
		"testruns":       TestRunColumns(),
		"projects":       ProjectColumns(),
		"specifications": SpecificationColumns(),
	} {
		seen := map[string]bool{}
		for _, c := range cols {
			if c.Key == "" {
				assert.False(t, c.Sortable || c.Filterable, "%s: component column %q", name, c.Header)
				continue
			}
			assert.False(t, seen[c.Key], "%s: duplicate key %q", name, c.Key)
			seen[c.Key] = true
		}
	}
}
