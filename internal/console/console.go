package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/export"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/filter"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/listview"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/narration"
)

const helpText = `Commands:
  regions                    list regions
  region <code>              switch region
  language <code>            switch summary language
  search <words>             filter by title or text (empty clears)
  list                       show visible summaries
  play <id>                  narrate a summary
  stop <id>                  stop narrating
  mode <id> <mode>           title, original, explanation or all
  voice <id> <code>          narration language of a summary
  voices                     narration languages available
  women [language]           women's rights documents (SDG 5)
  suggest <url> <title> [| comment] [email=you@example.com]
                             suggest a document
  export <path>              save visible summaries as .docx
  help                       this text
  quit                       leave`

func (c *implConsole) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(c.out, "> ")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := c.Execute(ctx, line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(c.out, "Error: %v\n", err)
			}
		}
	}
}

func (c *implConsole) Execute(ctx context.Context, line string) error {
	cmd := Parse(line)

	switch cmd.Name {
	case "":
		return nil
	case "help":
		fmt.Fprintln(c.out, helpText)
		return nil
	case "quit", "exit":
		return ErrQuit
	case "regions":
		return c.regions(ctx)
	case "region":
		return c.region(ctx, cmd)
	case "language":
		return c.language(ctx, cmd)
	case "search":
		c.view.SetQuery(cmd.Rest(0))
		c.list()
		return nil
	case "list":
		c.list()
		return nil
	case "play":
		return c.play(ctx, cmd)
	case "stop":
		return c.stop(cmd)
	case "mode":
		return c.mode(cmd)
	case "voice":
		return c.voice(ctx, cmd)
	case "voices":
		c.voices(ctx)
		return nil
	case "women":
		return c.women(ctx, cmd)
	case "suggest":
		return c.suggest(ctx, cmd)
	case "export":
		return c.export(cmd)
	default:
		return fmt.Errorf("%q: %w", cmd.Name, ErrUnknownCommand)
	}
}

func (c *implConsole) regions(ctx context.Context) error {
	if len(c.view.Regions()) == 0 {
		if err := c.view.LoadRegions(ctx); err != nil {
			return err
		}
	}

	current, _ := c.view.Selection()
	for _, r := range c.view.Regions() {
		marker := " "
		if r.Code == current {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %-4s %s\n", marker, r.Code, r.Name)
	}
	return nil
}

func (c *implConsole) region(ctx context.Context, cmd Command) error {
	if err := cmd.need(1, "region <code>"); err != nil {
		return err
	}
	code := strings.ToUpper(cmd.Args[0])

	if regions := c.view.Regions(); len(regions) > 0 && !hasRegion(regions, code) {
		return fmt.Errorf("unknown region %q", code)
	}

	_, language := c.view.Selection()
	return c.selectAndList(ctx, code, language)
}

func (c *implConsole) language(ctx context.Context, cmd Command) error {
	if err := cmd.need(1, "language <code>"); err != nil {
		return err
	}
	code := strings.ToLower(cmd.Args[0])
	if _, ok := model.LookupLanguage(code); !ok {
		return fmt.Errorf("unknown language %q", code)
	}

	region, _ := c.view.Selection()
	return c.selectAndList(ctx, region, code)
}

func (c *implConsole) selectAndList(ctx context.Context, region, language string) error {
	fmt.Fprintln(c.out, "Loading summaries...")
	select {
	case <-c.view.Select(ctx, region, language):
	case <-ctx.Done():
		return ctx.Err()
	}
	c.list()
	return nil
}

func (c *implConsole) list() {
	region, language := c.view.Selection()
	name := language
	if l, ok := model.LookupLanguage(language); ok {
		name = l.Name
	}
	fmt.Fprintf(c.out, "Region: %s  Language: %s\n", region, name)

	if c.view.State() == listview.Loading {
		fmt.Fprintln(c.out, "Loading summaries...")
		return
	}

	listing := c.view.VisibleFor(c.view.Query())
	fmt.Fprintf(c.out, "Showing %d of %d summaries\n", len(listing.Cards), listing.Total)
	if listing.EmptyReason != "" {
		fmt.Fprintln(c.out, listing.EmptyReason)
		return
	}

	for _, card := range listing.Cards {
		c.printCard(card)
	}
}

func (c *implConsole) printCard(card listview.Card) {
	c.printSummary(card.Summary)
	c.printNarration(card.Narration)
}

func (c *implConsole) printSummary(s model.Summary) {
	fmt.Fprintf(c.out, "[%d] %s\n", s.ID, s.DocumentTitle)
	fmt.Fprintf(c.out, "    %s\n", s.Body())

	verified := "Not verified"
	if s.FactCheck.IsVerified {
		verified = "Verified"
	}
	if s.FactCheck.SourceURL != "" {
		fmt.Fprintf(c.out, "    Fact check: %s (%s)\n", verified, s.FactCheck.SourceURL)
	} else {
		fmt.Fprintf(c.out, "    Fact check: %s\n", verified)
	}
}

func (c *implConsole) printNarration(n narration.Snapshot) {
	if !n.Available {
		fmt.Fprintln(c.out, "    Narration unavailable")
		return
	}
	fmt.Fprintf(c.out, "    Narration: %s, %s, %s\n", n.ModeLabel, n.LanguageName, playState(n.Playing))
}

func playState(playing bool) string {
	if playing {
		return "playing"
	}
	return "idle"
}

func (c *implConsole) play(ctx context.Context, cmd Command) error {
	id, err := cmd.ID(0)
	if err != nil {
		return err
	}
	ctrl, err := c.view.Controller(id)
	if err != nil {
		return err
	}

	if !ctrl.Snapshot().Available {
		fmt.Fprintln(c.out, "Narration is not available on this system")
		return nil
	}
	if err := ctrl.Start(ctx); err != nil {
		return err
	}

	snap := ctrl.Snapshot()
	fmt.Fprintf(c.out, "Playing summary %d: %s in %s\n", id, snap.ModeLabel, snap.LanguageName)
	return nil
}

func (c *implConsole) stop(cmd Command) error {
	id, err := cmd.ID(0)
	if err != nil {
		return err
	}
	ctrl, err := c.view.Controller(id)
	if err != nil {
		return err
	}

	ctrl.Stop()
	fmt.Fprintf(c.out, "Stopped summary %d\n", id)
	return nil
}

func (c *implConsole) mode(cmd Command) error {
	if err := cmd.need(2, "mode <id> <title|original|explanation|all>"); err != nil {
		return err
	}
	id, err := cmd.ID(0)
	if err != nil {
		return err
	}
	mode, err := model.ParseMode(cmd.Args[1])
	if err != nil {
		return err
	}
	ctrl, err := c.view.Controller(id)
	if err != nil {
		return err
	}

	ctrl.SetMode(mode)
	fmt.Fprintf(c.out, "Summary %d will read: %s\n", id, mode.Label())
	return nil
}

func (c *implConsole) voice(ctx context.Context, cmd Command) error {
	if err := cmd.need(2, "voice <id> <language>"); err != nil {
		return err
	}
	id, err := cmd.ID(0)
	if err != nil {
		return err
	}
	code := strings.ToLower(cmd.Args[1])
	if !c.catalog.Availability(ctx).Contains(code) {
		return fmt.Errorf("language %q is not available for narration", code)
	}
	ctrl, err := c.view.Controller(id)
	if err != nil {
		return err
	}

	ctrl.SetLanguage(code)
	fmt.Fprintf(c.out, "Summary %d will be read in %s\n", id, ctrl.Snapshot().LanguageName)
	return nil
}

func (c *implConsole) voices(ctx context.Context) {
	avail := c.catalog.Availability(ctx)

	names := make([]string, 0, len(avail.Languages))
	for _, code := range avail.Languages {
		if l, ok := model.LookupLanguage(code); ok {
			names = append(names, fmt.Sprintf("%s (%s)", l.Name, l.Code))
		}
	}
	fmt.Fprintf(c.out, "Narration languages: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(c.out, "Installed voices: %d\n", len(avail.Voices))
}

func (c *implConsole) suggest(ctx context.Context, cmd Command) error {
	if err := cmd.need(2, "suggest <url> <title> [| comment] [email=you@example.com]"); err != nil {
		return err
	}
	suggestion, err := ParseSuggestion(cmd.Args[0], cmd.Args[1:])
	if err != nil {
		return err
	}

	msg, err := c.client.SubmitSuggestion(ctx, suggestion)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, msg)
	return nil
}

// women lists the women's rights collection. Cards of the current view show their narration too.
func (c *implConsole) women(ctx context.Context, cmd Command) error {
	_, language := c.view.Selection()
	if len(cmd.Args) > 0 {
		language = strings.ToLower(cmd.Args[0])
	}
	if _, ok := model.LookupLanguage(language); !ok {
		return fmt.Errorf("unknown language %q", language)
	}

	summaries, err := c.client.FetchSummaries(ctx, filter.WomensRightsRegion, language)
	if err != nil {
		return fmt.Errorf("women's rights documents: %w", err)
	}
	summaries = filter.WomensRights(summaries)

	fmt.Fprintln(c.out, "Empowering Women (SDG 5)")
	if len(summaries) == 0 {
		fmt.Fprintln(c.out, listview.NoWomensRights)
		return nil
	}
	for _, s := range summaries {
		c.printSummary(s)
		if ctrl, err := c.view.Controller(s.ID); err == nil {
			c.printNarration(ctrl.Snapshot())
		}
	}
	return nil
}

func (c *implConsole) export(cmd Command) error {
	if err := cmd.need(1, "export <path>"); err != nil {
		return err
	}
	path := cmd.Rest(0)

	cards := c.view.Visible()
	summaries := make([]model.Summary, len(cards))
	for i, card := range cards {
		summaries[i] = card.Summary
	}

	region, language := c.view.Selection()
	title := fmt.Sprintf("WaziGov summaries: %s (%s)", region, language)
	if err := export.WriteDocx(title, summaries, path); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(c.out, "Exported %d summaries to %s\n", len(summaries), path)
	return nil
}

func hasRegion(regions []model.Region, code string) bool {
	for _, r := range regions {
		if r.Code == code {
			return true
		}
	}
	return false
}
