package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daimao-tools/animename/graphapi"
	"github.com/daimao-tools/animename/nodes"
	"github.com/daimao-tools/animename/picker"
	"golang.org/x/text/language"
)

const help = `commands:
  s <text>        search characters
  t <n|name>      toggle a character by number or English name
  c               clear the selection
  g <n>           collapse or expand a group by number
  group on|off    group by anime
  lang <tag>      display language, e.g. zh-CN or en
  show            print the list again
  value           print the published selected_data value
  run <text>      run the node with <text> as its string input
  q               quit`

type session struct {
	widget *picker.Widget
	node   *graphapi.GraphNode
	field  string
	out    io.Writer
}

// exec runs one command line and reports whether the session continues.
func (s *session) exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
	case "q", "quit", "exit":
		return false
	case "s", "search":
		s.widget.OnSearchInput(ctx, arg)
		s.widget.Wait()
		printView(s.out, s.widget.View())
	case "t", "toggle":
		key, ok := s.resolveTag(arg)
		if !ok {
			fmt.Fprintf(s.out, "no character %q\n", arg)
			return true
		}
		s.widget.Toggle(key)
		printView(s.out, s.widget.View())
	case "c", "clear":
		s.widget.ClearAll()
		printView(s.out, s.widget.View())
	case "g":
		groups := s.widget.View().Groups
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(groups) {
			fmt.Fprintf(s.out, "no group %q\n", arg)
			return true
		}
		s.widget.ToggleGroup(groups[n-1].Key)
		printView(s.out, s.widget.View())
	case "group":
		s.widget.SetGroupByAnime(arg != "off")
		printView(s.out, s.widget.View())
	case "lang":
		tag, err := language.Parse(arg)
		if err != nil {
			fmt.Fprintf(s.out, "bad language %q: %v\n", arg, err)
			return true
		}
		s.widget.SetLanguage(tag)
		printView(s.out, s.widget.View())
	case "show":
		printView(s.out, s.widget.View())
	case "value":
		fmt.Fprintln(s.out, s.fieldValue())
	case "run":
		fmt.Fprintln(s.out, nodes.Run(arg, s.fieldValue()))
	default:
		fmt.Fprintln(s.out, help)
	}
	return true
}

func (s *session) fieldValue() string {
	w := s.node.WidgetWithName(s.field)
	if w == nil {
		return ""
	}
	v, _ := w.Value.(string)
	return v
}

// resolveTag maps a tag number from the printed list, or an English name, to a key.
func (s *session) resolveTag(arg string) (string, bool) {
	v := s.widget.View()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(v.Tags) {
			return "", false
		}
		return v.Tags[n-1].Key, true
	}
	for _, t := range v.Tags {
		if t.Key == arg {
			return t.Key, true
		}
	}
	for _, r := range v.Selected {
		if r.Key() == arg {
			return r.Key(), true
		}
	}
	return "", false
}
