package model

import "time"

// Summary is a plain-language digest of one government document, as served by the backend
type Summary struct {
	ID            int64     `json:"id"`
	DocumentTitle string    `json:"document_title"`
	Text          string    `json:"text"`
	OriginalText  string    `json:"original_text,omitempty"`
	Explanation   string    `json:"explanation,omitempty"`
	Language      string    `json:"language"`
	CreatedAt     time.Time `json:"created_at"`
	FactCheck     FactCheck `json:"factCheck"`
}

// FactCheck is the verification record embedded in a Summary
type FactCheck struct {
	SourceURL  string `json:"source_url,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

// Body returns the display text of the summary, falling back to the original excerpt
func (s Summary) Body() string {
	if s.Text != "" {
		return s.Text
	}
	return s.OriginalText
}

type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Suggestion is a document proposed by a reader. It is submitted and forgotten.
type Suggestion struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Comment string `json:"comment"`
	Email   string `json:"email,omitempty"`
}
