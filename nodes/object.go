package nodes

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/daimao-tools/animename/graphapi"
)

// DefaultObject parses Definition into a node object with its properties built.
func DefaultObject() (*graphapi.NodeObject, error) {
	objects := &graphapi.NodeObjects{}
	if err := json.Unmarshal([]byte(Definition), &objects.Objects); err != nil {
		return nil, fmt.Errorf("parsing %s definition: %w", ClassType, err)
	}
	objects.PopulateInputProperties()
	return objects.GetNodeObjectByName(ClassType), nil
}

// SelectedDataFromPrompt returns the selected_data input of the first anime name
// helper node (lowest id) in an executed prompt.
func SelectedDataFromPrompt(p graphapi.Prompt) (string, bool) {
	ids := p.NodesOfClass(ClassType)
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})

	for _, id := range ids {
		if v, ok := p[id].Inputs["selected_data"].(string); ok {
			return v, true
		}
	}
	return "", false
}
