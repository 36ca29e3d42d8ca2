package catalog

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/language"
)

type stubSource struct {
	records []CharacterRecord
	err     error
	query   string
	filter  string
}

func (s *stubSource) GetAnimeNames(ctx context.Context, query string, filter string) ([]CharacterRecord, error) {
	s.query = query
	s.filter = filter
	return s.records, s.err
}

var (
	asuka = CharacterRecord{
		CharacterEnglishName: "Asuka Langley",
		CharacterChineseName: "明日香",
		AnimeEnglishName:     "Evangelion",
		AnimeChineseName:     "新世纪福音战士",
		Gender:               "女",
		Role:                 "主角",
	}
	rei = CharacterRecord{
		CharacterEnglishName: "Rei Ayanami",
		CharacterChineseName: "绫波丽",
		AnimeEnglishName:     "Evangelion",
		AnimeChineseName:     "新世纪福音战士",
		Gender:               "女",
		Role:                 "主角",
	}
)

func TestFetchReturnsServerOrderAndFillsCache(t *testing.T) {
	src := &stubSource{records: []CharacterRecord{rei, asuka}}
	cache := NewCache()
	f := NewFetcher(src, WithCache(cache))

	got := f.Fetch(context.Background(), "eva", "女")
	if len(got) != 2 || got[0].Key() != "Rei Ayanami" || got[1].Key() != "Asuka Langley" {
		t.Fatalf("unexpected records %v", got)
	}
	if src.query != "eva" || src.filter != "女" {
		t.Errorf("source called with query=%q filter=%q", src.query, src.filter)
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 cached records, got %d", cache.Len())
	}
	if r, ok := f.Lookup("Asuka Langley"); !ok || r.CharacterChineseName != "明日香" {
		t.Errorf("lookup failed: %v %v", r, ok)
	}
}

func TestFetchFailureIsEmptyAndKeepsCache(t *testing.T) {
	src := &stubSource{records: []CharacterRecord{asuka}}
	cache := NewCache()
	f := NewFetcher(src, WithCache(cache))
	f.Fetch(context.Background(), "", "")

	src.records = nil
	src.err = errors.New("status 500")
	got := f.Fetch(context.Background(), "x", "")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	last := f.Last()
	if len(last) != 1 || last[0].Key() != "Asuka Langley" {
		t.Errorf("failed fetch must not replace the cache, got %v", last)
	}
}

func TestFetchNilRecordsIsEmpty(t *testing.T) {
	f := NewFetcher(&stubSource{}, WithCache(NewCache()))
	got := f.Fetch(context.Background(), "", "")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	c := NewCache()
	in := []CharacterRecord{asuka}
	c.Set(in)
	in[0].CharacterEnglishName = "changed"

	out := c.Records()
	if out[0].Key() != "Asuka Langley" {
		t.Fatalf("cache shares caller slice: %v", out)
	}
	out[0].CharacterEnglishName = "changed again"
	if c.Records()[0].Key() != "Asuka Langley" {
		t.Fatal("cache leaks its slice")
	}
}

func TestDisplayNames(t *testing.T) {
	tests := []struct {
		lang      string
		character string
		anime     string
	}{
		{"zh-CN", "明日香", "新世纪福音战士"},
		{"zh-TW", "明日香", "新世纪福音战士"},
		{"en", "Asuka Langley", "Evangelion"},
		{"ja", "Asuka Langley", "Evangelion"},
	}
	for _, tt := range tests {
		tag := language.MustParse(tt.lang)
		if got := asuka.DisplayName(tag); got != tt.character {
			t.Errorf("%s: DisplayName = %q, want %q", tt.lang, got, tt.character)
		}
		if got := asuka.AnimeName(tag); got != tt.anime {
			t.Errorf("%s: AnimeName = %q, want %q", tt.lang, got, tt.anime)
		}
		if asuka.Key() != "Asuka Langley" {
			t.Errorf("%s: key changed", tt.lang)
		}
	}

	bare := CharacterRecord{CharacterEnglishName: "Misato"}
	if got := bare.DisplayName(language.MustParse("zh-CN")); got != "Misato" {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestInfo(t *testing.T) {
	if got := asuka.Info(); got != "【女·主角】" {
		t.Errorf("Info = %q", got)
	}
}
