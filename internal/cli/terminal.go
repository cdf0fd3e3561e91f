package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordfind/pkg/games"
	"github.com/charmbracelet/lipgloss"
)

var (
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Printer writes query results. In plain mode it prints bare words, one per
// line, so the output can be piped into other tools.
type Printer struct {
	out   io.Writer
	plain bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, plain bool) *Printer {
	return &Printer{out: out, plain: plain}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if p.plain {
		return s
	}
	return style.Render(s)
}

// Words prints a result list under a header describing the query.
func (p *Printer) Words(query string, words []string) {
	if p.plain {
		for _, w := range words {
			fmt.Fprintln(p.out, w)
		}
		return
	}
	if len(words) == 0 {
		fmt.Fprintf(p.out, "No words found for %s\n", query)
		return
	}
	fmt.Fprintln(p.out, p.render(headerStyle, fmt.Sprintf("Found %s words for %s:", FormatWithCommas(len(words)), query)))
	for i, w := range words {
		fmt.Fprintf(p.out, "%4d. %s\n", i+1, p.render(wordStyle, w))
	}
}

// Value prints a single labelled value, or just the value in plain mode.
func (p *Printer) Value(label string, value any) {
	if n, ok := value.(int); ok {
		value = FormatWithCommas(n)
	}
	if p.plain {
		fmt.Fprintln(p.out, value)
		return
	}
	fmt.Fprintf(p.out, "%s %v\n", p.render(headerStyle, label+":"), value)
}

// Countdown prints every length bucket, longest first.
func (p *Printer) Countdown(res *games.CountdownResult) {
	lengths := res.Lengths()
	for i := len(lengths) - 1; i >= 0; i-- {
		n := lengths[i]
		words := res.ByLength[n]
		if p.plain {
			for _, w := range words {
				fmt.Fprintln(p.out, w)
			}
			continue
		}
		line := p.render(dimStyle, "-")
		if len(words) > 0 {
			line = p.render(wordStyle, strings.Join(words, " "))
		}
		fmt.Fprintf(p.out, "%s %s\n", p.render(headerStyle, fmt.Sprintf("%d letters:", n)), line)
	}
}

// CashSquare prints each solution as a grid followed by the unused rows.
func (p *Printer) CashSquare(solutions []games.CashSquareSolution) {
	if len(solutions) == 0 && !p.plain {
		fmt.Fprintln(p.out, "No arrangement found")
		return
	}
	for i, sol := range solutions {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		if !p.plain {
			fmt.Fprintln(p.out, p.render(headerStyle, fmt.Sprintf("Solution %d:", i+1)))
		}
		for _, row := range sol.Rows {
			if !p.plain {
				row = wordStyle.Render(spaced(row))
			}
			fmt.Fprintln(p.out, row)
		}
		if len(sol.Leftover) > 0 {
			fmt.Fprintln(p.out, p.render(dimStyle, "unused: "+strings.Join(sol.Leftover, " ")))
		}
	}
}

// spaced puts a blank between letters so rows line up as a grid.
func spaced(word string) string {
	var b strings.Builder
	for i, r := range word {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
