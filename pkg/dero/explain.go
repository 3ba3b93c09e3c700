package dero

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"
)

// PrintExplanation writes a diagnostic for every issue in e to w. text must be
// the text that was passed to Convert. Colour is used only when w is a
// terminal.
func (e *ConversionError) PrintExplanation(w io.Writer, text string) error {
	return e.WriteExplanation(w, text, profileFor(w))
}

// WriteExplanation is PrintExplanation with an explicit colour profile.
func (e *ConversionError) WriteExplanation(w io.Writer, text string, profile termenv.Profile) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	src := norm.NFC.String(text)

	gutter := len(strconv.Itoa(maxLine(e.Issues)))
	pad := strings.Repeat(" ", gutter)
	bar := out.String("|").Foreground(out.Color("4")).Bold().String()

	var b strings.Builder
	for n, iss := range e.Issues {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(out.String("error").Foreground(out.Color("1")).Bold().String())
		b.WriteString(": ")
		b.WriteString(out.String(iss.message()).Bold().String())
		b.WriteByte('\n')

		b.WriteString(pad)
		b.WriteString(out.String("--> ").Foreground(out.Color("4")).Bold().String())
		b.WriteString(strconv.Itoa(iss.Line) + ":" + strconv.Itoa(iss.Column))
		b.WriteByte('\n')

		if line, col, ok := sourceLine(src, iss.Offset); ok {
			num := strconv.Itoa(iss.Line)
			b.WriteString(pad + " " + bar + "\n")
			b.WriteString(strings.Repeat(" ", gutter-len(num)))
			b.WriteString(out.String(num).Foreground(out.Color("4")).Bold().String())
			b.WriteString(" " + bar + " " + line + "\n")
			b.WriteString(pad + " " + bar + " ")
			b.WriteString(strings.Repeat(" ", runewidth.StringWidth(line[:col])))
			b.WriteString(out.String(strings.Repeat("^", caretWidth(iss.Rune))).Foreground(out.Color("1")).Bold().String())
			b.WriteByte('\n')
		}

		if help := iss.help(); help != "" {
			b.WriteString(pad + " ")
			b.WriteString(out.String("= help:").Foreground(out.Color("6")).Bold().String())
			b.WriteString(" " + help + "\n")
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}

// sourceLine returns the line of src containing offset and the byte offset of
// that position within the line.
func sourceLine(src string, offset int) (string, int, bool) {
	if offset < 0 || offset >= len(src) {
		return "", 0, false
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := len(src)
	if i := strings.IndexByte(src[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	line := strings.TrimSuffix(src[start:end], "\r")
	col := offset - start
	if col > len(line) {
		return "", 0, false
	}
	return line, col, true
}

func caretWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

func maxLine(issues []Issue) int {
	m := 1
	for _, iss := range issues {
		if iss.Line > m {
			m = iss.Line
		}
	}
	return m
}

type fder interface {
	Fd() uintptr
}

func profileFor(w io.Writer) termenv.Profile {
	f, ok := w.(fder)
	return colorProfile(ok && term.IsTerminal(int(f.Fd())))
}

// colorProfile picks ANSI for a terminal unless NO_COLOR is set.
func colorProfile(tty bool) termenv.Profile {
	if !tty || termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}
