package graphapi

import (
	"errors"
	"fmt"
)

// Widget holds the value of one settable input on a node.
type Widget struct {
	Name     string
	Property Property
	Value    interface{}
	Hidden   bool
	node     *GraphNode
}

// Type returns the widget's property type, e.g. "STRING".
func (w *Widget) Type() string {
	return w.Property.TypeString()
}

// SetValue converts v to the property's native type and stores it. The value is
// constrained by the property (ranges, combo values).
func (w *Widget) SetValue(v interface{}) error {
	val := w.Property.valueFromString(fmt.Sprintf("%v", v))
	if val == nil {
		return errors.New("could not get converted type")
	}
	w.Value = val
	return nil
}

// Hide removes the widget from the visible layout. Its value is still serialized.
func (w *Widget) Hide() {
	w.Hidden = true
}

// Node returns the node owning the widget.
func (w *Widget) Node() *GraphNode {
	return w.node
}
