package model

import (
	"fmt"
	"strings"
)

// ContentMode selects which slice of a summary is narrated
type ContentMode string

const (
	ModeTitle       ContentMode = "title"
	ModeOriginal    ContentMode = "original"
	ModeExplanation ContentMode = "explanation"
	ModeAll         ContentMode = "all"
)

// DefaultMode is what a fresh card narrates
const DefaultMode = ModeAll

var modeLabels = map[ContentMode]string{
	ModeTitle:       "Title",
	ModeOriginal:    "Budget Text",
	ModeExplanation: "Explanation",
	ModeAll:         "Everything",
}

// ParseMode converts user input into a ContentMode
func ParseMode(s string) (ContentMode, error) {
	m := ContentMode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeLabels[m]; !ok {
		return "", fmt.Errorf("unknown content mode %q", s)
	}
	return m, nil
}

// Label returns the human-readable name of the mode
func (m ContentMode) Label() string {
	if l, ok := modeLabels[m]; ok {
		return l
	}
	return "Select"
}
