package voice

import (
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// Availability is one immutable snapshot of which narration languages can be spoken
type Availability struct {
	// Languages holds usable codes in reference-table order. Never empty.
	Languages []string
	// Voices is the inventory the languages were derived from
	Voices []model.Voice
}

// Compute intersects the reference table with the voices' primary subtags.
// When nothing matches the default language is returned on its own.
func Compute(voices []model.Voice) Availability {
	present := make(map[string]bool, len(voices))
	for _, v := range voices {
		present[model.PrimarySubtag(v.Locale)] = true
	}

	var usable []string
	for _, l := range model.Languages {
		if present[model.PrimarySubtag(l.Code)] {
			usable = append(usable, l.Code)
		}
	}
	if len(usable) == 0 {
		usable = []string{model.DefaultLanguage}
	}

	return Availability{
		Languages: usable,
		Voices:    append([]model.Voice(nil), voices...),
	}
}

// Contains reports whether code is usable
func (a Availability) Contains(code string) bool {
	for _, c := range a.Languages {
		if c == code {
			return true
		}
	}
	return false
}

// MatchVoice finds the first installed voice sharing locale's primary subtag
func (a Availability) MatchVoice(locale string) (model.Voice, bool) {
	want := model.PrimarySubtag(locale)
	for _, v := range a.Voices {
		if model.PrimarySubtag(v.Locale) == want {
			return v, true
		}
	}
	return model.Voice{}, false
}

// Repair keeps selected if it is usable, otherwise prefers the default language, then the first usable one
func Repair(selected string, usable []string) string {
	hasDefault := false
	for _, c := range usable {
		if c == selected {
			return selected
		}
		if c == model.DefaultLanguage {
			hasDefault = true
		}
	}
	if hasDefault || len(usable) == 0 {
		return model.DefaultLanguage
	}
	return usable[0]
}
