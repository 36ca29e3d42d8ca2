package graphapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

type NodeObjects struct {
	Objects map[string]*NodeObject
}

// NodeObject represents the metadata that describes how to generate an instance of a node.
type NodeObject struct {
	Input           *NodeObjectInput `json:"input"`
	Output          []string         `json:"output"`
	OutputName      []string         `json:"output_name"`
	Name            string           `json:"name"`
	DisplayName     string           `json:"display_name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	OutputNode      bool             `json:"output_node"`
	InputProperties []Property       `json:"-"`
}

// GetPropertyWithName returns the input property called name, or nil.
func (n *NodeObject) GetPropertyWithName(name string) Property {
	for _, p := range n.InputProperties {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// NodeObjectInput keeps the declaration order of inputs, which fixes the order of
// widgets on a node.
type NodeObjectInput struct {
	Required        map[string]interface{} `json:"required"`
	Optional        map[string]interface{} `json:"optional,omitempty"`
	Hidden          map[string]interface{} `json:"hidden,omitempty"`
	OrderedRequired []string               `json:"-"`
	OrderedOptional []string               `json:"-"`
}

func (noi *NodeObjectInput) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}

	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return err
		}

		key, _ := t.(string)
		switch key {
		case "required", "optional", "hidden":
			entries, order, err := decodeOrderedObject(dec)
			if err != nil {
				return fmt.Errorf("input %s: %w", key, err)
			}
			switch key {
			case "required":
				noi.Required, noi.OrderedRequired = entries, order
			case "optional":
				noi.Optional, noi.OrderedOptional = entries, order
			default:
				noi.Hidden = entries
			}
		default:
			if err := dec.Decode(new(interface{})); err != nil {
				return err
			}
		}
	}

	_, err := dec.Token() // closing brace
	return err
}

func decodeOrderedObject(dec *json.Decoder) (map[string]interface{}, []string, error) {
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	entries := make(map[string]interface{})
	order := make([]string, 0)
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := t.(string)

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		entries[key] = value
		order = append(order, key)
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return entries, order, nil
}

// PopulateInputProperties builds the typed properties of every object in
// declaration order, required inputs first.
func (n *NodeObjects) PopulateInputProperties() {
	for _, o := range n.Objects {
		o.PopulateInputProperties()
	}
}

func (o *NodeObject) PopulateInputProperties() {
	o.InputProperties = make([]Property, 0)
	if o.Input == nil {
		return
	}

	index := 0
	add := func(name string, optional bool, def interface{}) {
		p, err := NewPropertyFromInput(name, optional, def, index)
		if err != nil {
			slog.Warn("Cannot create property", "object", o.Name, "input", name, "error", err)
			return
		}
		index++
		o.InputProperties = append(o.InputProperties, p)
	}

	for _, k := range o.Input.OrderedRequired {
		add(k, false, o.Input.Required[k])
	}
	for _, k := range o.Input.OrderedOptional {
		add(k, true, o.Input.Optional[k])
	}
}

func (n *NodeObjects) GetNodeObjectByName(name string) *NodeObject {
	val, ok := n.Objects[name]
	if ok {
		return val
	}
	return nil
}
