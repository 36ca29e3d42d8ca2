package picker

import (
	"strings"

	"golang.org/x/text/language"
)

// LocaleKeys are the settings consulted, in order, for the display language.
var LocaleKeys = []string{"AGL.Locale", "Comfy.Settings.AGL.Locale"}

// DefaultLanguage is used when no locale setting is present or parseable.
var DefaultLanguage = language.MustParse("zh-CN")

// ResolveLanguage picks the display language from persisted settings. It is
// read once when a widget is created.
func ResolveLanguage(settings map[string]string) language.Tag {
	for _, k := range LocaleKeys {
		value := strings.TrimSpace(settings[k])
		if value == "" {
			continue
		}
		tag, err := language.Parse(value)
		if err != nil {
			continue
		}
		return tag
	}
	return DefaultLanguage
}
