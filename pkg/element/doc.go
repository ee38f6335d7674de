/*
Package element defines the declarative admin tree.

An admin UI is declared as a nested tree of *Element values. Each element
carries an explicit Kind discriminant resolved at construction time, so the
classifier dispatches on a tag instead of probing runtime identity.

  - Fragment: transparent grouping with no semantic identity.
  - Category: grouping that contributes one breadcrumb segment.
  - Resource: an entity surfaced with standard list/detail screens.
  - Route: an application route not tied to a resource.
  - Raw: opaque content passed through to the renderer untouched.
  - Deferred: children produced lazily by a thunk.

Constructors return *Element and props are set with chainable With* methods:

	element.Category("Catalog",
		element.Resource("products").WithIcon("box"),
		element.Resource("reviews"),
		element.Route("import").WithLabel("Bulk import").HideFromMenu(),
	)
*/
package element
