package diagram

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// LocalizedTitle returns the translation of the title that best matches
// lang, falling back to Title when lang is empty, unparsable or unmatched.
func (d Document) LocalizedTitle(lang string) string {
	if lang == "" || len(d.Titles) == 0 {
		return d.Title
	}
	want, err := language.Parse(lang)
	if err != nil {
		return d.Title
	}

	// Index 0 stands for the untranslated Title.
	supported := []language.Tag{language.English}
	var keys []string
	for _, k := range slices.Sorted(maps.Keys(d.Titles)) {
		tag, err := language.Parse(k)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		keys = append(keys, k)
	}

	_, idx, conf := language.NewMatcher(supported).Match(want)
	if conf == language.No || idx == 0 {
		return d.Title
	}
	return d.Titles[keys[idx-1]]
}

// Direction returns "rtl" for right-to-left scripts and "ltr" otherwise.
func Direction(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "ltr"
	}
	script, _ := tag.Script()
	switch script.String() {
	case "Arab", "Hebr", "Syrc", "Thaa":
		return "rtl"
	}
	return "ltr"
}
