package graphapi

import (
	"fmt"
	"math"
	"strconv"
)

// Property is a typed node input as described by object_info.
// Property types:
// "INT"			an int64
// "FLOAT"			a float64
// "STRING"			a single line, or multiline string
// "COMBO"			one of a given list of strings
// "BOOLEAN"		a bool value
// "UNKNOWN"		everything else (link-only, unsettable)
type Property interface {
	TypeString() string
	Name() string
	Optional() bool
	// Settable is true when the input can hold a value in a widget
	Settable() bool
	// ForceInput is true for settable types the node declares as link-only
	ForceInput() bool
	DefaultValue() interface{}
	Index() int
	valueFromString(value string) interface{}
}

type BaseProperty struct {
	name       string
	optional   bool
	forceInput bool
	index      int
}

func (b *BaseProperty) Name() string {
	return b.name
}

func (b *BaseProperty) Optional() bool {
	return b.optional
}

func (b *BaseProperty) ForceInput() bool {
	return b.forceInput
}

func (b *BaseProperty) Index() int {
	return b.index
}

func newBaseProperty(name string, optional bool, data interface{}, index int) BaseProperty {
	b := BaseProperty{name: name, optional: optional, index: index}
	if d, ok := data.(map[string]interface{}); ok {
		if val, ok := d["forceInput"].(bool); ok {
			b.forceInput = val
		}
	}
	return b
}

type StringProperty struct {
	BaseProperty
	Default   string
	Multiline bool
}

func newStringProperty(name string, optional bool, data interface{}, index int) Property {
	c := &StringProperty{BaseProperty: newBaseProperty(name, optional, data, index)}
	if d, ok := data.(map[string]interface{}); ok {
		if val, ok := d["default"].(string); ok {
			c.Default = val
		}
		if val, ok := d["multiline"].(bool); ok {
			c.Multiline = val
		}
	}
	return c
}
func (p *StringProperty) TypeString() string        { return "STRING" }
func (p *StringProperty) Settable() bool            { return true }
func (p *StringProperty) DefaultValue() interface{} { return p.Default }
func (p *StringProperty) valueFromString(value string) interface{} {
	return value
}

type IntProperty struct {
	BaseProperty
	Default  int64
	Min      int64
	Max      int64
	Step     int64
	hasRange bool
}

func newIntProperty(name string, optional bool, data interface{}, index int) Property {
	c := &IntProperty{
		BaseProperty: newBaseProperty(name, optional, data, index),
		Min:          math.MinInt64,
		Max:          math.MaxInt64,
	}
	if d, ok := data.(map[string]interface{}); ok {
		if val, ok := d["default"].(float64); ok {
			c.Default = int64(val)
		}
		if val, ok := d["min"].(float64); ok {
			c.Min = int64(val)
			c.hasRange = true
		}
		if val, ok := d["max"].(float64); ok {
			c.Max = int64(val)
			c.hasRange = true
		}
		if val, ok := d["step"].(float64); ok {
			c.Step = int64(val)
		}
	}
	return c
}
func (p *IntProperty) TypeString() string        { return "INT" }
func (p *IntProperty) Settable() bool            { return true }
func (p *IntProperty) DefaultValue() interface{} { return p.Default }
func (p *IntProperty) valueFromString(value string) interface{} {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	if p.hasRange {
		v = min(max(v, p.Min), p.Max)
	}
	return v
}

type FloatProperty struct {
	BaseProperty
	Default  float64
	Min      float64
	Max      float64
	hasRange bool
}

func newFloatProperty(name string, optional bool, data interface{}, index int) Property {
	c := &FloatProperty{
		BaseProperty: newBaseProperty(name, optional, data, index),
		Min:          -math.MaxFloat64,
		Max:          math.MaxFloat64,
	}
	if d, ok := data.(map[string]interface{}); ok {
		if val, ok := d["default"].(float64); ok {
			c.Default = val
		}
		if val, ok := d["min"].(float64); ok {
			c.Min = val
			c.hasRange = true
		}
		if val, ok := d["max"].(float64); ok {
			c.Max = val
			c.hasRange = true
		}
	}
	return c
}
func (p *FloatProperty) TypeString() string        { return "FLOAT" }
func (p *FloatProperty) Settable() bool            { return true }
func (p *FloatProperty) DefaultValue() interface{} { return p.Default }
func (p *FloatProperty) valueFromString(value string) interface{} {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	if p.hasRange {
		v = math.Max(math.Min(v, p.Max), p.Min)
	}
	return v
}

type BoolProperty struct {
	BaseProperty
	Default bool
}

func newBoolProperty(name string, optional bool, data interface{}, index int) Property {
	c := &BoolProperty{BaseProperty: newBaseProperty(name, optional, data, index)}
	if d, ok := data.(map[string]interface{}); ok {
		if val, ok := d["default"].(bool); ok {
			c.Default = val
		}
	}
	return c
}
func (p *BoolProperty) TypeString() string        { return "BOOLEAN" }
func (p *BoolProperty) Settable() bool            { return true }
func (p *BoolProperty) DefaultValue() interface{} { return p.Default }
func (p *BoolProperty) valueFromString(value string) interface{} {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return v
}

type ComboProperty struct {
	BaseProperty
	Values []string
}

func newComboProperty(name string, optional bool, values []interface{}, index int) Property {
	c := &ComboProperty{
		BaseProperty: BaseProperty{name: name, optional: optional, index: index},
		Values:       make([]string, 0, len(values)),
	}
	for _, v := range values {
		if s, ok := v.(string); ok {
			c.Values = append(c.Values, s)
		}
	}
	return c
}
func (p *ComboProperty) TypeString() string { return "COMBO" }
func (p *ComboProperty) Settable() bool     { return true }
func (p *ComboProperty) DefaultValue() interface{} {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0]
}
func (p *ComboProperty) valueFromString(value string) interface{} {
	// ensure we have this string in our values
	for _, v := range p.Values {
		if value == v {
			return value
		}
	}
	return nil
}

type UnknownProperty struct {
	BaseProperty
	TypeName string
}

func (p *UnknownProperty) TypeString() string                       { return p.TypeName }
func (p *UnknownProperty) Settable() bool                           { return false }
func (p *UnknownProperty) DefaultValue() interface{}                { return nil }
func (p *UnknownProperty) valueFromString(value string) interface{} { return nil }

// NewPropertyFromInput builds a Property from an object_info input entry, which
// is either [type, options] or [[combo values...], options].
func NewPropertyFromInput(name string, optional bool, input interface{}, index int) (Property, error) {
	slice, ok := input.([]interface{})
	if !ok || len(slice) == 0 {
		return nil, fmt.Errorf("input %s: unexpected definition %v", name, input)
	}

	var options interface{}
	if len(slice) > 1 {
		options = slice[1]
	}

	switch ptype := slice[0].(type) {
	case []interface{}:
		return newComboProperty(name, optional, ptype, index), nil
	case string:
		switch ptype {
		case "STRING":
			return newStringProperty(name, optional, options, index), nil
		case "INT":
			return newIntProperty(name, optional, options, index), nil
		case "FLOAT":
			return newFloatProperty(name, optional, options, index), nil
		case "BOOLEAN":
			return newBoolProperty(name, optional, options, index), nil
		default:
			return &UnknownProperty{
				BaseProperty: newBaseProperty(name, optional, options, index),
				TypeName:     ptype,
			}, nil
		}
	}
	return nil, fmt.Errorf("input %s: unexpected type %v", name, slice[0])
}
