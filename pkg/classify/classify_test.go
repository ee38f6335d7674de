package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/pkg/element"
)

func TestClassify_PathIsConcatenationOfAncestorSegments(t *testing.T) {
	tree := []*element.Element{
		element.Category("Catalog",
			element.Fragment(
				element.Category("Pricing",
					element.Resource("discounts"),
				),
			),
			element.Resource("products"),
		),
	}

	res := Classify(tree, nil)
	require.Len(t, res.Resources, 2)

	// Depth-first: the fragment-wrapped nested category comes first.
	assert.Equal(t, "discounts", res.Resources[0].Element.Name)
	assert.Equal(t, []string{"Catalog", "Pricing"}, res.Resources[0].Path.Labels())
	assert.Equal(t, "products", res.Resources[1].Element.Name)
	assert.Equal(t, []string{"Catalog"}, res.Resources[1].Path.Labels())
}

func TestClassify_FragmentsAreTransparent(t *testing.T) {
	inner := element.Resource("users")
	res := Classify([]*element.Element{
		element.Fragment(element.Fragment(inner)),
	}, nil)

	require.Len(t, res.Resources, 1)
	assert.Same(t, inner, res.Resources[0].Element)
	assert.Empty(t, res.Resources[0].Path)
	// The transparent wrappers themselves never reach the pass-through list.
	require.Len(t, res.Children, 1)
	assert.Same(t, inner, res.Children[0])
}

func TestClassify_NilChildrenAreSkipped(t *testing.T) {
	res := Classify([]*element.Element{
		nil,
		element.Resource("users"),
		nil,
	}, nil)

	assert.Len(t, res.Resources, 1)
	assert.Len(t, res.Children, 1)
}

func TestClassify_BucketsAreMutuallyExclusive(t *testing.T) {
	layout := element.Route("settings")
	bare := element.Route("login").Bare()
	resource := element.Resource("users")
	raw := element.Raw("footer")

	res := Classify([]*element.Element{layout, bare, resource, raw}, nil)

	require.Len(t, res.LayoutRoutes, 1)
	require.Len(t, res.BareRoutes, 1)
	require.Len(t, res.Resources, 1)
	assert.Same(t, layout, res.LayoutRoutes[0].Element)
	assert.Same(t, bare, res.BareRoutes[0])
	assert.Same(t, resource, res.Resources[0].Element)

	// Every visited element appears in the pass-through superset exactly once.
	require.Len(t, res.Children, 4)
	assert.Same(t, layout, res.Children[0])
	assert.Same(t, bare, res.Children[1])
	assert.Same(t, resource, res.Children[2])
	assert.Same(t, raw, res.Children[3])
}

func TestClassify_BareRouteCarriesNoPath(t *testing.T) {
	bare := element.Route("login").Bare()
	layout := element.Route("profile")

	res := Classify([]*element.Element{
		element.Category("Account", bare, layout),
	}, nil)

	// The bare route is recorded raw, outside the hierarchical context.
	require.Len(t, res.BareRoutes, 1)
	assert.Same(t, bare, res.BareRoutes[0])
	for _, entry := range res.LayoutRoutes {
		assert.NotSame(t, bare, entry.Element)
	}

	require.Len(t, res.LayoutRoutes, 1)
	assert.Equal(t, []string{"Account"}, res.LayoutRoutes[0].Path.Labels())
}

func TestClassify_RawOnlyPassesThrough(t *testing.T) {
	raw := element.Raw("custom footer")
	res := Classify([]*element.Element{raw}, nil)

	assert.Empty(t, res.LayoutRoutes)
	assert.Empty(t, res.BareRoutes)
	assert.Empty(t, res.Resources)
	require.Len(t, res.Children, 1)
	assert.Same(t, raw, res.Children[0])
}

func TestClassify_CategoryAppearsInPassthrough(t *testing.T) {
	cat := element.Category("Catalog", element.Resource("products"))
	res := Classify([]*element.Element{cat}, nil)

	require.Len(t, res.Children, 2)
	assert.Same(t, cat, res.Children[0])
}

func TestClassify_DeferredPendingAndResolved(t *testing.T) {
	pending := Classify([]*element.Element{
		element.Deferred(func() []*element.Element { return nil }),
	}, nil)
	assert.True(t, pending.Pending())
	assert.Equal(t, StatusLoading, pending.Status())

	resolved := Classify([]*element.Element{
		element.Deferred(func() []*element.Element {
			return []*element.Element{element.Resource("users")}
		}),
	}, nil)
	assert.False(t, resolved.Pending())
	require.Len(t, resolved.Resources, 1)
	assert.Empty(t, resolved.Resources[0].Path, "deferred wrappers are transparent like fragments")
}

func TestClassify_StartingPathPrefixesEverything(t *testing.T) {
	base := element.Path{}.Child(element.Segment{Label: "Root"})
	res := Classify([]*element.Element{
		element.Category("Nested", element.Resource("items")),
	}, base)

	require.Len(t, res.Resources, 1)
	assert.Equal(t, []string{"Root", "Nested"}, res.Resources[0].Path.Labels())
}

func TestMerge_AppendsInOrderWithoutDedup(t *testing.T) {
	shared := element.Resource("users")
	a := Classify([]*element.Element{shared, element.Route("settings")}, nil)
	b := Classify([]*element.Element{shared, element.Route("login").Bare()}, nil)

	a.Merge(b)

	assert.Len(t, a.Resources, 2, "merge must not dedup")
	assert.Len(t, a.LayoutRoutes, 1)
	assert.Len(t, a.BareRoutes, 1)
	assert.Len(t, a.Children, 4)
}

func TestMerge_PendingSurvives(t *testing.T) {
	a := Classify(nil, nil)
	b := Classify([]*element.Element{
		element.Deferred(func() []*element.Element { return nil }),
	}, nil)

	a.Merge(b)
	assert.True(t, a.Pending())

	a.Merge(nil) // nil merge is a no-op
	assert.True(t, a.Pending())
}

func TestStatus(t *testing.T) {
	empty := Classify(nil, nil)
	assert.Equal(t, StatusEmpty, empty.Status())

	routesOnly := Classify([]*element.Element{element.Route("settings")}, nil)
	assert.Equal(t, StatusEmpty, routesOnly.Status(), "routes alone do not make an admin ready")

	ready := Classify([]*element.Element{element.Resource("users")}, nil)
	assert.Equal(t, StatusReady, ready.Status())
}
