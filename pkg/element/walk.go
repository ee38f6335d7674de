package element

// Walk visits every non-nil element depth-first, parents before children,
// in declaration order. The visitor returns false to stop the traversal
// early; Walk reports whether it ran to completion. Deferred children are
// resolved when the thunk yields; unresolvable ones are skipped.
//
// Walk is a plain structural traversal for assertions and tooling; it does
// not classify, flatten wrappers, or accumulate paths.
func Walk(children []*Element, visit func(*Element) bool) bool {
	for _, child := range children {
		if child == nil {
			continue
		}
		if !visit(child) {
			return false
		}
		kids := child.Children
		if child.Kind == KindDeferred && child.Resolve != nil {
			kids = child.Resolve()
		}
		if !Walk(kids, visit) {
			return false
		}
	}
	return true
}

// Find returns the first element in depth-first order for which match
// returns true, or nil.
func Find(children []*Element, match func(*Element) bool) *Element {
	var found *Element
	Walk(children, func(e *Element) bool {
		if match(e) {
			found = e
			return false
		}
		return true
	})
	return found
}
