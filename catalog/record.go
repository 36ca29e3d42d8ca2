package catalog

import (
	"fmt"

	"golang.org/x/text/language"
)

// CharacterRecord is one selectable character as served by the
// /anime_name_helper/get_anime_names route. CharacterEnglishName is the identity
// key; every other field is display data.
type CharacterRecord struct {
	CharacterEnglishName string `json:"character_english_name"`
	CharacterChineseName string `json:"character_chinese_name"`
	AnimeEnglishName     string `json:"anime_english_name"`
	AnimeChineseName     string `json:"anime_chinese_name"`
	Gender               string `json:"gender"`
	Role                 string `json:"role"`
}

// Key returns the identity key used for selection membership.
func (r CharacterRecord) Key() string {
	return r.CharacterEnglishName
}

// DisplayName returns the character name shown for the given display language.
// A record without a Chinese name shows its English one.
func (r CharacterRecord) DisplayName(tag language.Tag) string {
	if IsChinese(tag) && r.CharacterChineseName != "" {
		return r.CharacterChineseName
	}
	return r.CharacterEnglishName
}

// AnimeName returns the series name shown for the given display language. It is
// also the grouping key when grouping by anime.
func (r CharacterRecord) AnimeName(tag language.Tag) string {
	if IsChinese(tag) {
		return r.AnimeChineseName
	}
	return r.AnimeEnglishName
}

// Info is the short descriptor rendered next to a tag, e.g. 【女·主角】.
func (r CharacterRecord) Info() string {
	return fmt.Sprintf("【%s·%s】", r.Gender, r.Role)
}

var chineseBase, _ = language.Chinese.Base()

// IsChinese reports whether tag selects the Chinese name fields. Any tag whose
// base language is zh does; everything else falls back to the English fields.
func IsChinese(tag language.Tag) bool {
	base, _ := tag.Base()
	return base == chineseBase
}
