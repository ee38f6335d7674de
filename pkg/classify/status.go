package classify

// Status tells the router what to render.
type Status string

const (
	// StatusLoading means part of the tree is not resolvable yet.
	StatusLoading Status = "loading"
	// StatusEmpty means the tree resolved but declares no resources.
	StatusEmpty Status = "empty"
	// StatusReady means the full routed layout can render.
	StatusReady Status = "ready"
)

// Status derives the render status from the result: loading while any
// deferred children are pending, empty without resources, ready otherwise.
func (r *Result) Status() Status {
	if r.pending {
		return StatusLoading
	}
	if len(r.Resources) == 0 {
		return StatusEmpty
	}
	return StatusReady
}
