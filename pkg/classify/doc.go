/*
Package classify walks a declarative admin tree and buckets its elements
into the four lists the router and menu registrar consume: layout-wrapped
routes, layout-free routes, resources, and the pass-through superset of all
visited elements.

The walk is depth-first and order-preserving. Fragments and deferred
wrappers are flattened with the current path; categories extend the path by
one segment built from their own props. A State holder caches the last
result keyed by input identity so an unchanged tree yields the identical
*Result.
*/
package classify
