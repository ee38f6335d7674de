package element

import "strings"

// Segment is one step of the breadcrumb from the root to a node,
// contributed by an enclosing category.
type Segment struct {
	Label    string            `json:"label"`
	Icon     string            `json:"icon,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Path is the ordered sequence of enclosing category segments, root to leaf.
// Leaf elements never contribute a segment.
type Path []Segment

// Child returns a new path with seg appended. The receiver is never
// mutated: each tree level owns an independent copy.
func (p Path) Child(seg Segment) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, seg)
}

// Labels returns the segment labels in order.
func (p Path) Labels() []string {
	labels := make([]string, len(p))
	for i, seg := range p {
		labels[i] = seg.Label
	}
	return labels
}

// String renders the path as a breadcrumb, e.g. "Catalog / Pricing".
func (p Path) String() string {
	return strings.Join(p.Labels(), " / ")
}

// Equal reports whether two paths have the same segment labels in the same
// order. Icons and metadata are display-only and do not affect identity.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i].Label != other[i].Label {
			return false
		}
	}
	return true
}
