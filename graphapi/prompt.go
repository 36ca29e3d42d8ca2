package graphapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Prompt is the executed form of a workflow as ComfyUI stores it in the "prompt"
// text chunk of generated images, keyed by node id.
type Prompt map[string]PromptNode

type PromptNode struct {
	// Inputs can be one of:
	//	float64
	//	string
	//	[]interface{} where: [0] is string of target node
	//					     [1] is float64 (int) of slot index
	Inputs    map[string]interface{} `json:"inputs"`
	ClassType string                 `json:"class_type"`
}

// NodesOfClass returns the ids of all nodes of the given class.
func (p Prompt) NodesOfClass(classType string) []string {
	retv := make([]string, 0)
	for id, n := range p {
		if n.ClassType == classType {
			retv = append(retv, id)
		}
	}
	return retv
}

// NewPromptFromPNGReader extracts the executed prompt from PNG data.
func NewPromptFromPNGReader(r io.Reader) (Prompt, error) {
	metadata, err := GetPngMetadata(r)
	if err != nil {
		return nil, err
	}

	data, ok := metadata["prompt"]
	if !ok {
		return nil, errors.New("png does not contain prompt metadata")
	}

	prompt := Prompt{}
	if err := json.Unmarshal([]byte(data), &prompt); err != nil {
		return nil, fmt.Errorf("decoding png prompt: %w", err)
	}
	return prompt, nil
}
