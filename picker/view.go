package picker

import (
	"fmt"
	"sort"

	"github.com/daimao-tools/animename/catalog"
	"golang.org/x/text/language"
)

// State is the widget's render state.
type State int

const (
	// Idle shows the results of the latest applied fetch.
	Idle State = iota
	// Loading waits for the most recently initiated fetch.
	Loading
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	default:
		return "idle"
	}
}

// Tag is one rendered character entry.
type Tag struct {
	Key     string
	Name    string
	Info    string
	Checked bool
	Record  catalog.CharacterRecord
}

// Label is the tag's text as shown to the user.
func (t Tag) Label() string {
	return t.Name + " " + t.Info
}

// Group is the set of tags sharing an anime name in the display language.
type Group struct {
	Key       string
	Collapsed bool
	Tags      []Tag
}

// Count is the live number of entries in the group.
func (g Group) Count() int {
	return len(g.Tags)
}

// Header is the group's collapsible header text.
func (g Group) Header() string {
	arrow := "▼"
	if g.Collapsed {
		arrow = "▶"
	}
	return fmt.Sprintf("%s %s (%d)", arrow, g.Key, g.Count())
}

// View is a snapshot of everything the widget displays.
type View struct {
	WidgetID string
	State    State
	Query    string
	Language language.Tag
	Grouped  bool
	// Tags lists every entry in catalog order, grouped or not.
	Tags []Tag
	// Groups is only populated when Grouped is set.
	Groups   []Group
	Selected []catalog.CharacterRecord
}

func newTag(r catalog.CharacterRecord, lang language.Tag, selected *Selection) Tag {
	return Tag{
		Key:     r.Key(),
		Name:    r.DisplayName(lang),
		Info:    r.Info(),
		Checked: selected.Has(r.Key()),
		Record:  r,
	}
}

// groupByAnime partitions tags by anime display name. Groups are sorted by key;
// tags inside a group keep catalog order.
func groupByAnime(records []catalog.CharacterRecord, tags []Tag, lang language.Tag, collapsed map[string]bool) []Group {
	byKey := make(map[string]*Group)
	keys := make([]string, 0)
	for i, r := range records {
		key := r.AnimeName(lang)
		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key, Collapsed: collapsed[key]}
			byKey[key] = g
			keys = append(keys, key)
		}
		g.Tags = append(g.Tags, tags[i])
	}

	sort.Strings(keys)
	retv := make([]Group, 0, len(keys))
	for _, k := range keys {
		retv = append(retv, *byKey[k])
	}
	return retv
}
