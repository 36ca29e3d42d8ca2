package main

import (
	"fmt"
	"io"

	"github.com/daimao-tools/animename/picker"
)

// printView writes the widget's list. Tags are numbered by catalog position so
// the numbers stay valid when grouping is switched.
func printView(out io.Writer, v picker.View) {
	if v.State == picker.Loading {
		fmt.Fprintln(out, "loading...")
		return
	}

	if len(v.Tags) == 0 {
		fmt.Fprintln(out, "(no results)")
	}

	index := make(map[string]int, len(v.Tags))
	for i, t := range v.Tags {
		index[t.Key] = i + 1
	}

	if v.Grouped {
		for gi, g := range v.Groups {
			fmt.Fprintf(out, "[%d] %s\n", gi+1, g.Header())
			if g.Collapsed {
				continue
			}
			for _, t := range g.Tags {
				printTag(out, index[t.Key], t)
			}
		}
	} else {
		for _, t := range v.Tags {
			printTag(out, index[t.Key], t)
		}
	}

	fmt.Fprintf(out, "selected (%d):", len(v.Selected))
	for _, r := range v.Selected {
		fmt.Fprintf(out, " %s", r.DisplayName(v.Language))
	}
	fmt.Fprintln(out)
}

func printTag(out io.Writer, n int, t picker.Tag) {
	box := "[ ]"
	if t.Checked {
		box = "[x]"
	}
	fmt.Fprintf(out, "  %3d %s %s\n", n, box, t.Label())
}
