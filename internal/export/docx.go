// Package export writes the summaries a reader is looking at into a Word document.
package export

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/content"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx saves summaries to outputPath under a document title
func WriteDocx(title string, summaries []model.Summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, s := range summaries {
		for _, b := range Blocks(s) {
			p := doc.AddParagraph("")
			addStyledRun(p, b.Text, b.Heading, b.size())
		}
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

// Block is one paragraph of an exported summary
type Block struct {
	Text    string
	Heading bool
}

func (b Block) size() uint64 {
	if b.Heading {
		return 14
	}
	return fontSize
}

// Blocks lays out one summary: heading, body, excerpt, explanation and fact-check line
func Blocks(s model.Summary) []Block {
	blocks := []Block{
		{Text: content.Resolve(s, model.ModeTitle), Heading: true},
		{Text: s.Body()},
	}
	if excerpt := strings.TrimSpace(s.OriginalText); excerpt != "" && excerpt != s.Body() {
		blocks = append(blocks, Block{Text: "Original text: " + excerpt})
	}
	blocks = append(blocks, Block{Text: "What this means: " + content.Resolve(s, model.ModeExplanation)})
	blocks = append(blocks, Block{Text: factCheckLine(s.FactCheck)})
	return blocks
}

func factCheckLine(fc model.FactCheck) string {
	status := "Not verified"
	if fc.IsVerified {
		status = "Verified"
	}
	if fc.SourceURL == "" {
		return "Fact check: " + status
	}
	return fmt.Sprintf("Fact check: %s (source: %s)", status, fc.SourceURL)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
