// Package nodes executes the anime name helper node: it turns the serialized
// selection written by the picker into prompt text.
package nodes

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// ClassType is the node class the picker attaches to.
	ClassType = "anime_name_helper"
	// NoSelection is emitted in place of names when nothing is selected.
	NoSelection = "无选中角色"
)

// Definition is the object_info entry the server reports for ClassType. It is
// used when the server cannot be asked.
const Definition = `{
	"anime_name_helper": {
		"input": {
			"required": {
				"string": ["STRING", {"forceInput": true}],
				"selected_data": ["STRING", {"default": "[]", "multiline": false}]
			},
			"hidden": {"prompt": "PROMPT", "extra_info": "EXTRA_PNGINFO", "my_unique_id": "UNIQUE_ID"}
		},
		"output": ["STRING"],
		"output_name": ["输出"],
		"name": "anime_name_helper",
		"display_name": "动漫人物名称辅助器",
		"description": "",
		"category": "动漫工具",
		"output_node": false
	}
}`

// ParseSelectedData reads a selected_data value leniently. A JSON array yields
// one name per entry; any other JSON value is a single entry; text that is not
// JSON is kept verbatim as a single entry. Blank input yields nothing.
func ParseSelectedData(selectedData string) []string {
	if strings.TrimSpace(selectedData) == "" {
		return nil
	}

	var data interface{}
	if err := json.Unmarshal([]byte(selectedData), &data); err != nil {
		return []string{selectedData}
	}

	items, ok := data.([]interface{})
	if !ok {
		return []string{entryName(data)}
	}
	retv := make([]string, 0, len(items))
	for _, item := range items {
		retv = append(retv, entryName(item))
	}
	return retv
}

// records contribute their English name; anything else its printed form
func entryName(item interface{}) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]interface{}:
		if name, ok := v["character_english_name"].(string); ok {
			return name
		}
	case nil:
		return ""
	}
	b, err := json.Marshal(item)
	if err != nil {
		return fmt.Sprintf("%v", item)
	}
	return string(b)
}

// Run is the node's execution: the upstream string followed by the selected
// names joined with ", ".
func Run(input string, selectedData string) string {
	names := NoSelection
	if selected := ParseSelectedData(selectedData); len(selected) > 0 {
		names = strings.Join(selected, ", ")
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", input, names))
}
