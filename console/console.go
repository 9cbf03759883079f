// Package console is a line-oriented front end for a pair.Controller.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go-currency-converter/domain"
	"go-currency-converter/pair"
	"go-currency-converter/rates"
)

const help = `commands:
  focus from|to              make a field active
  type from|to <amount>      focus a field and type into it
  select from|to <currency>  pick a currency by code or by label
  show                       print both fields and the rate
  list                       print selectable currencies
  help                       print this help
  quit                       leave`

// Session drives one controller from text commands
type Session struct {
	controller *pair.Controller
	catalog    *rates.Catalog
	out        io.Writer

	field *color.Color
	label *color.Color
	fail  *color.Color
}

// NewSession attaches a new Session to controller. Output goes to out.
func NewSession(controller *pair.Controller, catalog *rates.Catalog, out io.Writer) *Session {
	s := &Session{
		controller: controller,
		catalog:    catalog,
		out:        out,
		field:      color.New(color.FgGreen),
		label:      color.New(color.FgCyan),
		fail:       color.New(color.FgRed),
	}
	controller.Attach(s)
	return s
}

// SetText echoes a field write
func (s *Session) SetText(side domain.Side, text string) {
	if text == "" {
		return
	}
	s.field.Fprintf(s.out, "%-4s %s %s\n", side, text, s.controller.Currency(side))
}

// SetRateLabel echoes a rate label change
func (s *Session) SetRateLabel(label string) {
	s.label.Fprintln(s.out, label)
}

// Run reads commands from in until quit or end of input.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.Exec(line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// Exec runs one command line. It returns false when the session should end.
func (s *Session) Exec(line string) bool {
	cmd, rest := cut(line)
	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(s.out, help)
	case "show":
		s.show()
	case "list":
		for _, e := range s.catalog.Entries() {
			fmt.Fprintf(s.out, "%-4s %s\n", e.Code, e.Label)
		}
	case "focus":
		side, ok := s.side(rest)
		if !ok {
			return true
		}
		s.controller.Focus(side)
	case "type":
		arg, text := cut(rest)
		side, ok := s.side(arg)
		if !ok {
			return true
		}
		s.controller.Focus(side)
		s.controller.Edit(side, text)
	case "select":
		arg, currency := cut(rest)
		side, ok := s.side(arg)
		if !ok {
			return true
		}
		if currency == "" {
			s.fail.Fprintln(s.out, "select needs a currency")
			return true
		}
		if strings.Contains(currency, "(") {
			s.controller.SelectLabel(side, currency)
		} else {
			s.controller.Select(side, domain.Currency(strings.ToUpper(currency)))
		}
	default:
		s.fail.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
	return true
}

func (s *Session) show() {
	for _, side := range []domain.Side{domain.From, domain.To} {
		marker := " "
		if s.controller.Active() == side {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s%-4s %s %s\n", marker, side, s.controller.Text(side), s.controller.Currency(side))
	}
	fmt.Fprintln(s.out, s.controller.RateLabel())
}

func (s *Session) side(arg string) (domain.Side, bool) {
	side, err := domain.ParseSide(strings.ToLower(arg))
	if err != nil || side == domain.None {
		s.fail.Fprintf(s.out, "expected from or to, got %q\n", arg)
		return domain.None, false
	}
	return side, true
}

// cut splits off the first word of s
func cut(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
