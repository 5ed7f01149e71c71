package dnd

// registry holds the draggable and droppable nodes of the host's current
// interactive set. It is rebuilt from scratch on every topology change and
// never patched in between; lookups skip nodes whose flags were cleared
// since the last rebuild.
type registry struct {
	draggables []Node
	droppables []Node
}

// clear empties both collections, keeping their backing arrays.
func (r *registry) clear() {
	r.draggables = r.draggables[:0]
	r.droppables = r.droppables[:0]
}

// collect adds n to the collections it qualifies for. A node may be both.
func (r *registry) collect(n Node, draggable, droppable bool) {
	if draggable {
		r.draggables = append(r.draggables, n)
	}
	if droppable {
		r.droppables = append(r.droppables, n)
	}
}
