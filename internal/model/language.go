package model

import "strings"

// LanguageVoice pairs a narration language with the locale tag requested from the speech engine
type LanguageVoice struct {
	Code   string
	Locale string
	Name   string
}

// DefaultLanguage is selected whenever nothing better is available
const DefaultLanguage = "en"

// Languages is the narration reference table, in display order
var Languages = []LanguageVoice{
	{Code: "en", Locale: "en-US", Name: "English"},
	{Code: "sw", Locale: "sw", Name: "Swahili"},
	{Code: "fr", Locale: "fr-FR", Name: "French"},
	{Code: "ha", Locale: "ha", Name: "Hausa"},
	{Code: "yo", Locale: "yo", Name: "Yoruba"},
	{Code: "ar", Locale: "ar", Name: "Arabic"},
}

// LookupLanguage finds code in the reference table
func LookupLanguage(code string) (LanguageVoice, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return LanguageVoice{}, false
}

// Voice is one installed synthesizer voice as reported by the runtime
type Voice struct {
	Locale string
	Name   string
}

// PrimarySubtag returns the lower-cased language part of a locale tag ("en-US" -> "en")
func PrimarySubtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
