package dispatch

import (
	"fmt"
	"io"
	"strings"
)

// Report headers and markers of the text format.
const (
	headerSearch = "organism\t\t\tprotein"
	headerDiff   = "amino-acids difference: "
	headerMode   = "amino-acid occurs: "

	markNotFound  = "NOT FOUND"
	markMissing   = "MISSING"
	markMalformed = "MALFORMED ENCODING"
	markUnknown   = "Unknown command"
	markInvalid   = "Invalid arguments"
	markError     = "ERROR"

	argSeparator = "   "
)

// Banner is the header of a text report.
type Banner struct {
	Author    string // omitted when empty
	Title     string
	RuleWidth int
}

// TextFormatter writes the numbered, ruled report.
type TextFormatter struct {
	W      io.Writer
	Banner Banner
}

func (f *TextFormatter) rule() string {
	return strings.Repeat("-", f.Banner.RuleWidth)
}

func (f *TextFormatter) Begin() error {
	var b strings.Builder
	if f.Banner.Author != "" {
		b.WriteString(f.Banner.Author + "\n")
	}
	if f.Banner.Title != "" {
		b.WriteString(f.Banner.Title + "\n")
	}
	b.WriteString(f.rule() + "\n")
	_, err := io.WriteString(f.W, b.String())
	return err
}

func (f *TextFormatter) Write(out Outcome) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%03d%s%s%s%s\n",
		out.Seq, argSeparator, out.Command.Name, argSeparator,
		strings.Join(out.Command.Args, argSeparator))

	switch out.Status {
	case StatusUnknownCommand:
		b.WriteString(markUnknown + "\n")
	case StatusInvalidArguments:
		b.WriteString(markInvalid + "\n")
	default:
		writeResult(&b, out)
	}

	b.WriteString(f.rule() + "\n")
	_, err := io.WriteString(f.W, b.String())
	return err
}

func (f *TextFormatter) End() error {
	return nil
}

// writeResult writes the header line for the command followed by its
// value or a marker.
func writeResult(b *strings.Builder, out Outcome) {
	switch out.Command.Name {
	case CmdSearch:
		b.WriteString(headerSearch + "\n")
	case CmdDiff:
		b.WriteString(headerDiff + "\n")
	case CmdMode:
		b.WriteString(headerMode + "\n")
	}

	switch out.Status {
	case StatusOK:
		switch {
		case out.Search != nil:
			fmt.Fprintf(b, "%s\t\t%s\n", out.Search.Organism, out.Search.Name)
		case out.Diff != nil:
			fmt.Fprintf(b, "%d\n", *out.Diff)
		case out.Mode != nil:
			sym := out.Mode.SymbolString()
			if sym == "" {
				sym = " "
			}
			fmt.Fprintf(b, "%s\t\t%d\n", sym, out.Mode.Count)
		}
	case StatusNotFound:
		b.WriteString(markNotFound + "\n")
	case StatusMissing:
		b.WriteString(markMissing + "\n")
	case StatusMalformed:
		b.WriteString(markMalformed + "\n")
	default:
		b.WriteString(markError + "\n")
	}
}
