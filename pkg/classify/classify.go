package classify

import "github.com/atriumhq/atrium/pkg/element"

// RouteEntry pairs a layout-wrapped route with the path it was declared
// under.
type RouteEntry struct {
	Path    element.Path
	Element *element.Element
}

// ResourceEntry pairs a resource with the path it was declared under.
type ResourceEntry struct {
	Path    element.Path
	Element *element.Element
}

// Result holds the four classification buckets in traversal order.
type Result struct {
	// LayoutRoutes render inside the layout chrome at their path.
	LayoutRoutes []RouteEntry
	// BareRoutes render outside the hierarchical context; they carry no
	// path, only the raw element.
	BareRoutes []*element.Element
	// Resources are the entities surfaced with standard screens.
	Resources []ResourceEntry
	// Children is the pass-through superset: every visited element with
	// semantic identity, in insertion order, no dedup.
	Children []*element.Element

	pending bool
}

// Classify walks children depth-first starting from base (usually nil) and
// buckets each element. Nil children are skipped. Fragments and resolved
// deferred wrappers are transparent: they contribute nothing themselves and
// recurse with the unchanged path. Categories recurse with the path extended
// by their own segment.
func Classify(children []*element.Element, base element.Path) *Result {
	res := &Result{}
	for _, child := range children {
		if child == nil {
			continue
		}
		switch child.Kind {
		case element.KindFragment:
			res.Merge(Classify(child.Children, base))
		case element.KindDeferred:
			kids := child.Resolve()
			if kids == nil {
				res.pending = true
				continue
			}
			res.Merge(Classify(kids, base))
		case element.KindCategory:
			res.Children = append(res.Children, child)
			res.Merge(Classify(child.Children, base.Child(child.Segment())))
		case element.KindRoute:
			if child.NoLayout {
				res.BareRoutes = append(res.BareRoutes, child)
			} else {
				res.LayoutRoutes = append(res.LayoutRoutes, RouteEntry{Path: base, Element: child})
			}
			res.Children = append(res.Children, child)
		case element.KindResource:
			res.Resources = append(res.Resources, ResourceEntry{Path: base, Element: child})
			res.Children = append(res.Children, child)
		default:
			// Unrecognized elements (including Raw) only pass through.
			res.Children = append(res.Children, child)
		}
	}
	return res
}

// Merge appends other's four lists onto r in order. Append only: no dedup,
// no conflict resolution. A pending flag on either side survives the merge.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.LayoutRoutes = append(r.LayoutRoutes, other.LayoutRoutes...)
	r.BareRoutes = append(r.BareRoutes, other.BareRoutes...)
	r.Resources = append(r.Resources, other.Resources...)
	r.Children = append(r.Children, other.Children...)
	r.pending = r.pending || other.pending
}

// Pending reports whether any deferred element could not resolve its
// children during the walk.
func (r *Result) Pending() bool {
	return r.pending
}
