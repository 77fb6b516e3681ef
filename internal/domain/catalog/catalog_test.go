package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsetup/internal/domain/metaobject"
)

func TestNewPreservesDeclarationOrder(t *testing.T) {
	c := New([]metaobject.DefinitionConfig{
		{Name: "B", Type: "b"},
		{Name: "A", Type: "a"},
		{Name: "C", Type: "c"},
	}, nil)

	assert.Equal(t, []string{"b", "a", "c"}, c.Types())
	assert.Equal(t, 3, c.Len())
}

func TestNewIgnoresDuplicateTypes(t *testing.T) {
	c := New([]metaobject.DefinitionConfig{
		{Name: "First", Type: "dup"},
		{Name: "Second", Type: "dup"},
	}, nil)

	assert.Equal(t, []string{"dup"}, c.Types())
	def, ok := c.Definition("dup")
	require.True(t, ok)
	assert.Equal(t, "First", def.Name)
}

func TestDefinitionLookup(t *testing.T) {
	c := New([]metaobject.DefinitionConfig{{Name: "FAQ", Type: "faq_item"}}, nil)

	def, ok := c.Definition("faq_item")
	require.True(t, ok)
	assert.Equal(t, "FAQ", def.Name)

	_, ok = c.Definition("unknown")
	assert.False(t, ok)
}

func TestTypesReturnsCopy(t *testing.T) {
	c := New([]metaobject.DefinitionConfig{{Type: "a"}, {Type: "b"}}, nil)

	types := c.Types()
	types[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, c.Types())
}

func TestDefaultCatalogIsConsistent(t *testing.T) {
	c := Default()

	assert.Equal(t, 16, c.Len())

	// Every section member must be a configured type.
	for _, section := range c.Sections() {
		require.NotEmpty(t, section.Metaobjects, "section %s has no members", section.ID)
		for _, memberType := range section.Metaobjects {
			_, ok := c.Definition(memberType)
			assert.True(t, ok, "section %s references unknown type %s", section.ID, memberType)
		}
	}

	// app_config is deliberately outside every section.
	for _, section := range c.Sections() {
		assert.NotContains(t, section.Metaobjects, "app_config")
	}

	_, ok := c.Definition("app_config")
	assert.True(t, ok)
}
