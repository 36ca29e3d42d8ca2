package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/daimao-tools/animename/catalog"
	"github.com/daimao-tools/animename/graphapi"
	"github.com/daimao-tools/animename/nodes"
	"github.com/daimao-tools/animename/picker"
)

type staticSource []catalog.CharacterRecord

func (s staticSource) GetAnimeNames(ctx context.Context, query string, filter string) ([]catalog.CharacterRecord, error) {
	retv := make([]catalog.CharacterRecord, 0)
	for _, r := range s {
		if strings.Contains(r.CharacterEnglishName, query) {
			retv = append(retv, r)
		}
	}
	return retv, nil
}

func newTestSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	src := staticSource{
		{CharacterEnglishName: "Rei Ayanami", CharacterChineseName: "绫波丽", AnimeEnglishName: "Evangelion", AnimeChineseName: "新世纪福音战士", Gender: "女", Role: "主角"},
		{CharacterEnglishName: "Asuka Langley", CharacterChineseName: "明日香", AnimeEnglishName: "Evangelion", AnimeChineseName: "新世纪福音战士", Gender: "女", Role: "主角"},
	}
	obj, err := nodes.DefaultObject()
	if err != nil {
		t.Fatalf("Failed to build node object: %v", err)
	}
	node := graphapi.NewGraphNode(1, obj)
	w := picker.New(catalog.NewFetcher(src, catalog.WithCache(catalog.NewCache())), picker.Options{GroupByAnime: true})
	w.Mount(context.Background(), picker.NodeHost(node))
	node.Created()
	w.Wait()

	out := &bytes.Buffer{}
	return &session{widget: w, node: node, field: picker.DefaultField, out: out}, out
}

func TestSessionToggleAndRun(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	s.exec(ctx, "t 2")
	if !strings.Contains(out.String(), "[x] 明日香 【女·主角】") {
		t.Errorf("expected Asuka checked, got:\n%s", out.String())
	}

	out.Reset()
	s.exec(ctx, "run 1girl,")
	if got := strings.TrimSpace(out.String()); got != "1girl, Asuka Langley" {
		t.Errorf("run printed %q", got)
	}

	out.Reset()
	s.exec(ctx, "s Rei")
	s.exec(ctx, "t Rei Ayanami")
	s.exec(ctx, "value")
	if !strings.Contains(out.String(), `"character_english_name":"Asuka Langley"`) ||
		!strings.Contains(out.String(), `"character_english_name":"Rei Ayanami"`) {
		t.Errorf("expected both characters published, got:\n%s", out.String())
	}

	out.Reset()
	s.exec(ctx, "c")
	s.exec(ctx, "run x")
	if !strings.Contains(out.String(), "x "+nodes.NoSelection) {
		t.Errorf("expected empty selection after clear, got:\n%s", out.String())
	}

	if s.exec(ctx, "q") {
		t.Error("q should end the session")
	}
}

func TestSessionGroups(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	s.exec(ctx, "g 1")
	if !strings.Contains(out.String(), "▶ 新世纪福音战士 (2)") {
		t.Errorf("expected collapsed group header, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), "绫波丽") {
		t.Errorf("collapsed group should hide its tags:\n%s", out.String())
	}

	out.Reset()
	s.exec(ctx, "lang en")
	if !strings.Contains(out.String(), "▼ Evangelion (2)") || !strings.Contains(out.String(), "Rei Ayanami 【女·主角】") {
		t.Errorf("expected expanded English group, got:\n%s", out.String())
	}
}
