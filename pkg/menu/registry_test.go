package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/pkg/element"
)

func catalogPath() element.Path {
	return element.Path{}.Child(element.Segment{Label: "Catalog", Icon: "box"})
}

func TestRegistry_AddAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Record{Key: "users", Label: "Users", Icon: "person"}, nil)

	rec, ok := reg.Get("users")
	require.True(t, ok)
	assert.Equal(t, "Users", rec.Label)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_UpsertOverwritesAndRelocates(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Record{Key: "users", Label: "Users"}, nil)
	reg.Add(Record{Key: "users", Label: "Members", Icon: "group"}, catalogPath())

	require.Equal(t, 1, reg.Len())
	rec, _ := reg.Get("users")
	assert.Equal(t, "Members", rec.Label)
	assert.Equal(t, "group", rec.Icon)

	path, ok := reg.Path("users")
	require.True(t, ok)
	assert.Equal(t, []string{"Catalog"}, path.Labels())
}

func TestRegistry_UpsertKeepsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Record{Key: "a"}, nil)
	reg.Add(Record{Key: "b"}, nil)
	reg.Add(Record{Key: "a", Label: "refreshed"}, nil)

	records := reg.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Key)
	assert.Equal(t, "refreshed", records[0].Label)
	assert.Equal(t, "b", records[1].Key)
}

func TestRegistry_RemoveUnknownKeyIsNoop(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Record{Key: "users"}, nil)
	reg.Remove("ghosts")

	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_NoValidation(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Record{}, nil)

	rec, ok := reg.Get("")
	require.True(t, ok)
	assert.Empty(t, rec.Label)
	assert.Empty(t, rec.Icon)
}

func TestRegistry_TreeGroupsByPath(t *testing.T) {
	reg := NewRegistry()
	pricing := catalogPath().Child(element.Segment{Label: "Pricing"})

	reg.Add(Record{Key: "dashboard", Label: "Dashboard"}, nil)
	reg.Add(Record{Key: "products", Label: "Products"}, catalogPath())
	reg.Add(Record{Key: "discounts", Label: "Discounts"}, pricing)
	reg.Add(Record{Key: "reviews", Label: "Reviews"}, catalogPath())

	tree := reg.Tree()

	require.Len(t, tree.Records, 1)
	assert.Equal(t, "dashboard", tree.Records[0].Key)

	require.Len(t, tree.Children, 1)
	catalog := tree.Children[0]
	assert.Equal(t, "Catalog", catalog.Segment.Label)
	assert.Equal(t, "box", catalog.Segment.Icon)

	require.Len(t, catalog.Records, 2)
	assert.Equal(t, "products", catalog.Records[0].Key)
	assert.Equal(t, "reviews", catalog.Records[1].Key)

	require.Len(t, catalog.Children, 1)
	assert.Equal(t, "Pricing", catalog.Children[0].Segment.Label)
	require.Len(t, catalog.Children[0].Records, 1)
	assert.Equal(t, "discounts", catalog.Children[0].Records[0].Key)
}
