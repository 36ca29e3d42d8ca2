package picker

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daimao-tools/animename/catalog"
)

// EmptySelection is the serialized form of an empty selection, and the default
// value of the selected_data input.
const EmptySelection = "[]"

// EncodeSelection serializes records as the JSON array stored in selected_data.
func EncodeSelection(records []catalog.CharacterRecord) (string, error) {
	if len(records) == 0 {
		return EmptySelection, nil
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeSelection parses a selected_data value back into records. Entries may be
// full records or bare English names. Blank input is an empty selection.
func DecodeSelection(value string) ([]catalog.CharacterRecord, error) {
	if strings.TrimSpace(value) == "" {
		return []catalog.CharacterRecord{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, fmt.Errorf("decoding selection: %w", err)
	}

	retv := make([]catalog.CharacterRecord, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			retv = append(retv, catalog.CharacterRecord{CharacterEnglishName: name})
			continue
		}
		var r catalog.CharacterRecord
		if err := json.Unmarshal(item, &r); err != nil {
			return nil, fmt.Errorf("decoding selection entry: %w", err)
		}
		retv = append(retv, r)
	}
	return retv, nil
}
