package graphapi

// Slot represents a link-only input of a GraphNode: inputs whose type cannot be
// edited in place, or settable inputs declared with forceInput.
type Slot struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Link     *int     `json:"link"`
	Property Property `json:"-"`
}
