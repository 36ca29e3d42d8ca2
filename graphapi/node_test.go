package graphapi

import (
	"encoding/json"
	"testing"
)

const testObjectInfo = `{
	"picker_node": {
		"input": {
			"required": {
				"string": ["STRING", {"forceInput": true}],
				"selected_data": ["STRING", {"default": "[]"}],
				"count": ["INT", {"default": 3, "min": 1, "max": 10}],
				"mode": [["flat", "grouped"]],
				"image": ["IMAGE"]
			},
			"optional": {
				"strength": ["FLOAT", {"default": 0.5, "min": 0, "max": 1}],
				"enabled": ["BOOLEAN", {"default": true}]
			},
			"hidden": {"my_unique_id": "UNIQUE_ID"}
		},
		"output": ["STRING"],
		"name": "picker_node",
		"display_name": "Picker"
	}
}`

func loadTestObject(t *testing.T) *NodeObject {
	t.Helper()
	objects := &NodeObjects{}
	if err := json.Unmarshal([]byte(testObjectInfo), &objects.Objects); err != nil {
		t.Fatalf("Failed to unmarshal object info: %v", err)
	}
	objects.PopulateInputProperties()
	obj := objects.GetNodeObjectByName("picker_node")
	if obj == nil {
		t.Fatal("Expected picker_node to be loaded")
	}
	return obj
}

func TestInputPropertiesKeepDeclarationOrder(t *testing.T) {
	obj := loadTestObject(t)

	want := []string{"string", "selected_data", "count", "mode", "image", "strength", "enabled"}
	if len(obj.InputProperties) != len(want) {
		t.Fatalf("Expected %d properties, got %d", len(want), len(obj.InputProperties))
	}
	for i, p := range obj.InputProperties {
		compareField(t, "property name", want[i], p.Name())
		compareField(t, "property index", i, p.Index())
	}
	compareField(t, "optional", true, obj.GetPropertyWithName("strength").Optional())
	compareField(t, "image type", "IMAGE", obj.GetPropertyWithName("image").TypeString())
	compareField(t, "mode type", "COMBO", obj.GetPropertyWithName("mode").TypeString())
}

func TestNewGraphNodeSplitsWidgetsAndSlots(t *testing.T) {
	n := NewGraphNode(7, loadTestObject(t))

	compareField(t, "title", "Picker", n.Title)
	compareField(t, "slot count", 2, len(n.Inputs))
	if n.GetInputWithName("string") == nil || n.GetInputWithName("image") == nil {
		t.Error("Expected string and image to be link-only slots")
	}
	if n.WidgetWithName("string") != nil {
		t.Error("forceInput string must not get a widget")
	}

	values := n.WidgetValues()
	compareField(t, "widget count", 5, len(values))
	compareField(t, "selected_data default", "[]", values[0])
	compareField(t, "count default", int64(3), values[1])
	compareField(t, "mode default", "flat", values[2])
	compareField(t, "strength default", 0.5, values[3])
	compareField(t, "enabled default", true, values[4])
}

func TestWidgetSetValueConverts(t *testing.T) {
	n := NewGraphNode(1, loadTestObject(t))

	count := n.WidgetWithName("count")
	if err := count.SetValue(42); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	compareField(t, "clamped count", int64(10), count.Value)
	if err := count.SetValue("abc"); err == nil {
		t.Error("Expected an error for a non-numeric int")
	}

	mode := n.WidgetWithName("mode")
	if err := mode.SetValue("tree"); err == nil {
		t.Error("Expected combo to reject unknown values")
	}
	if err := mode.SetValue("grouped"); err != nil {
		t.Errorf("SetValue failed: %v", err)
	}

	data := n.WidgetWithName("selected_data")
	if err := data.SetValue(`[{"character_english_name":"Rei"}]`); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	data.Hide()
	compareField(t, "hidden", true, data.Hidden)
	compareField(t, "value", `[{"character_english_name":"Rei"}]`, n.WidgetValues()[0])
	if data.Node() != n {
		t.Error("Widget should point back to its node")
	}
}

func TestOnNodeCreatedChains(t *testing.T) {
	n := NewGraphNode(1, loadTestObject(t))

	calls := make([]string, 0)
	n.OnNodeCreated(func(*GraphNode) { calls = append(calls, "first") })
	n.OnNodeCreated(func(*GraphNode) { calls = append(calls, "second") })
	if len(calls) != 0 {
		t.Fatal("Hooks must not run before the node is created")
	}

	n.Created()
	n.Created()
	compareField(t, "hook calls", 2, len(calls))
	compareField(t, "hook order", "first", calls[0])

	n.OnNodeCreated(func(*GraphNode) { calls = append(calls, "late") })
	compareField(t, "late hook", "late", calls[len(calls)-1])
}

func TestSetDirtyCanvas(t *testing.T) {
	n := NewGraphNode(1, loadTestObject(t))

	seen := 0
	n.OnDirty(func(*GraphNode) { seen++ })
	n.SetDirtyCanvas(true, true)
	n.SetDirtyCanvas(false, false)
	n.SetDirtyCanvas(true, false)

	compareField(t, "dirty count", 2, n.DirtyCount())
	compareField(t, "listener calls", 2, seen)
}

func compareField(t *testing.T, name string, expected, actual interface{}) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s mismatch: expected %v (%T), got %v (%T)", name, expected, expected, actual, actual)
	}
}
