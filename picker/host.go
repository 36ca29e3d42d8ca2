package picker

import (
	"errors"
	"fmt"

	"github.com/daimao-tools/animename/catalog"
	"github.com/daimao-tools/animename/graphapi"
)

// DefaultField is the node input the selection is published to.
const DefaultField = "selected_data"

// ErrFieldMissing means the host node has no field to publish the selection to.
var ErrFieldMissing = errors.New("selection field not found on node")

// Field is the host-side value the serialized selection is written to.
type Field interface {
	Value() string
	SetValue(value string) error
	Hide()
}

// Host is whatever owns the widget: it confirms its fields exist and is told to
// recompute when the selection changes.
type Host interface {
	// OnReady runs fn once the host's fields have been created.
	OnReady(fn func())
	Field(name string) (Field, bool)
	MarkDirty()
}

// Message is one published selection.
type Message struct {
	WidgetID   string
	Characters []catalog.CharacterRecord
}

// Publisher receives every selection change.
type Publisher interface {
	Publish(msg Message) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(msg Message) error

func (f PublisherFunc) Publish(msg Message) error {
	return f(msg)
}

// fieldPublisher serializes messages into a host field and asks the host to
// recompute.
type fieldPublisher struct {
	host  Host
	field Field
}

func (p *fieldPublisher) Publish(msg Message) error {
	value, err := EncodeSelection(msg.Characters)
	if err != nil {
		return err
	}
	if err := p.field.SetValue(value); err != nil {
		return fmt.Errorf("writing selection: %w", err)
	}
	p.host.MarkDirty()
	return nil
}

// NodeHost adapts a graph node to Host. Fields are the node's widgets.
func NodeHost(node *graphapi.GraphNode) Host {
	return &nodeHost{node: node}
}

type nodeHost struct {
	node *graphapi.GraphNode
}

func (h *nodeHost) OnReady(fn func()) {
	h.node.OnNodeCreated(func(*graphapi.GraphNode) {
		fn()
	})
}

func (h *nodeHost) Field(name string) (Field, bool) {
	w := h.node.WidgetWithName(name)
	if w == nil {
		return nil, false
	}
	return widgetField{w}, true
}

func (h *nodeHost) MarkDirty() {
	h.node.SetDirtyCanvas(true, true)
}

type widgetField struct {
	w *graphapi.Widget
}

func (f widgetField) Value() string {
	if s, ok := f.w.Value.(string); ok {
		return s
	}
	if f.w.Value == nil {
		return ""
	}
	return fmt.Sprintf("%v", f.w.Value)
}

func (f widgetField) SetValue(value string) error {
	return f.w.SetValue(value)
}

func (f widgetField) Hide() {
	f.w.Hide()
}
