package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/model"
)

// Command is one parsed input line
type Command struct {
	Name string
	Args []string
}

// Parse splits line into a command name and its arguments. Blank lines yield an empty Name.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	return Command{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}
}

// Rest joins the arguments from index i on
func (c Command) Rest(i int) string {
	if i >= len(c.Args) {
		return ""
	}
	return strings.Join(c.Args[i:], " ")
}

// ID parses argument i as a summary ID
func (c Command) ID(i int) (int64, error) {
	if i >= len(c.Args) {
		return 0, fmt.Errorf("%s: missing summary id", c.Name)
	}
	id, err := strconv.ParseInt(c.Args[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid summary id %q", c.Name, c.Args[i])
	}
	return id, nil
}

func (c Command) need(n int, usage string) error {
	if len(c.Args) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

// ParseSuggestion builds a suggestion from the words after its URL.
// Words up to a "|" form the title, words after it the comment; an "email=" word sets the email.
func ParseSuggestion(url string, words []string) (model.Suggestion, error) {
	s := model.Suggestion{URL: url}

	var title, comment []string
	inComment := false
	for _, w := range words {
		switch {
		case strings.HasPrefix(w, "email="):
			s.Email = strings.TrimPrefix(w, "email=")
		case w == "|" && !inComment:
			inComment = true
		case inComment:
			comment = append(comment, w)
		default:
			title = append(title, w)
		}
	}

	s.Title = strings.Join(title, " ")
	s.Comment = strings.Join(comment, " ")
	if s.Title == "" {
		return model.Suggestion{}, fmt.Errorf("suggest: title is required")
	}
	return s, nil
}
