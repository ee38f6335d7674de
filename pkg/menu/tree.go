package menu

import "github.com/atriumhq/atrium/pkg/element"

// Node is one level of the hierarchical menu: the records registered
// directly at this path plus one child node per category segment below it.
type Node struct {
	Segment  element.Segment `json:"segment"`
	Records  []Record        `json:"records,omitempty"`
	Children []*Node         `json:"children,omitempty"`
}

// Tree assembles the hierarchical menu from the current registry contents.
// Records appear in registration order; child nodes appear in the order
// their first record was registered.
func (r *Registry) Tree() *Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	root := &Node{}
	for _, reg := range r.snapshotLocked() {
		node := root
		for _, seg := range reg.path {
			node = node.child(seg)
		}
		node.Records = append(node.Records, reg.record)
	}
	return root
}

func (n *Node) child(seg element.Segment) *Node {
	for _, c := range n.Children {
		if c.Segment.Label == seg.Label {
			return c
		}
	}
	c := &Node{Segment: seg}
	n.Children = append(n.Children, c)
	return c
}
