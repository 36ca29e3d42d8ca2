package graphapi

import "sync"

// GraphNode is a live node instance: the widgets created from its NodeObject,
// its link-only input slots and the hooks a frontend extension attaches to.
type GraphNode struct {
	ID     int
	Type   string
	Title  string
	Inputs []Slot

	widgets []*Widget

	mu        sync.Mutex
	created   bool
	onCreated []func(*GraphNode)
	onDirty   []func(*GraphNode)
	dirty     int
}

// NewGraphNode instantiates a node of the given definition. Settable inputs get a
// widget initialised to their default; link-only inputs get a slot. The node is
// not created until Created is called, so extensions can hook OnNodeCreated.
func NewGraphNode(id int, object *NodeObject) *GraphNode {
	n := &GraphNode{
		ID:     id,
		Type:   object.Name,
		Title:  object.DisplayName,
		Inputs: make([]Slot, 0),
	}
	if n.Title == "" {
		n.Title = object.Name
	}

	for _, p := range object.InputProperties {
		if !p.Settable() || p.ForceInput() {
			n.Inputs = append(n.Inputs, Slot{Name: p.Name(), Type: p.TypeString(), Property: p})
			continue
		}
		n.AddWidget(p)
	}
	return n
}

// AddWidget appends a widget for p holding p's default value.
func (n *GraphNode) AddWidget(p Property) *Widget {
	w := &Widget{
		Name:     p.Name(),
		Property: p,
		Value:    p.DefaultValue(),
		node:     n,
	}
	n.widgets = append(n.widgets, w)
	return w
}

// Widgets returns the node's widgets in declaration order.
func (n *GraphNode) Widgets() []*Widget {
	return n.widgets
}

// WidgetWithName finds a widget by input name, or nil.
func (n *GraphNode) WidgetWithName(name string) *Widget {
	for _, w := range n.widgets {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// WidgetValues returns the widget values in order, the form they take in a
// serialized workflow.
func (n *GraphNode) WidgetValues() []interface{} {
	retv := make([]interface{}, len(n.widgets))
	for i, w := range n.widgets {
		retv[i] = w.Value
	}
	return retv
}

// GetInputWithName finds a link-only input slot by name, or nil.
func (n *GraphNode) GetInputWithName(name string) *Slot {
	for i, s := range n.Inputs {
		if s.Name == name {
			return &n.Inputs[i]
		}
	}
	return nil
}

// OnNodeCreated chains fn onto the node-created hook. Hooks run in registration
// order; registering after creation runs fn immediately.
func (n *GraphNode) OnNodeCreated(fn func(*GraphNode)) {
	n.mu.Lock()
	if !n.created {
		n.onCreated = append(n.onCreated, fn)
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()
	fn(n)
}

// Created marks the node as created and runs the node-created hooks once.
func (n *GraphNode) Created() {
	n.mu.Lock()
	if n.created {
		n.mu.Unlock()
		return
	}
	n.created = true
	hooks := n.onCreated
	n.onCreated = nil
	n.mu.Unlock()

	for _, fn := range hooks {
		fn(n)
	}
}

// OnDirty registers a listener for SetDirtyCanvas.
func (n *GraphNode) OnDirty(fn func(*GraphNode)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onDirty = append(n.onDirty, fn)
}

// SetDirtyCanvas flags the node for redraw and re-evaluation.
func (n *GraphNode) SetDirtyCanvas(foreground bool, background bool) {
	if !foreground && !background {
		return
	}
	n.mu.Lock()
	n.dirty++
	listeners := append([]func(*GraphNode){}, n.onDirty...)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(n)
	}
}

// DirtyCount returns how many times the node was flagged dirty.
func (n *GraphNode) DirtyCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dirty
}
