package dero

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Options tune a Converter. The zero value is the strict converter.
type Options struct {
	// AllowForeign passes q, w, y and stray x through unchanged instead of
	// reporting them as issues. It is reachable from Go only; the C entry
	// points always use the strict converter unless capi.Config.Converter
	// supplies another one.
	AllowForeign bool
}

// Converter rewrites x-system text. It holds no mutable state and is safe for
// concurrent use.
type Converter struct {
	opts Options
}

// New returns a Converter configured with opts.
func New(opts Options) *Converter {
	return &Converter{opts: opts}
}

var std = New(Options{})

// Convert converts text with the default strict Converter.
func Convert(text string) (string, error) {
	return std.Convert(text)
}

// accented maps each letter that accepts a circumflex or breve to its
// accented form.
var accented = map[rune]rune{
	'c': 'ĉ', 'g': 'ĝ', 'h': 'ĥ', 'j': 'ĵ', 's': 'ŝ', 'u': 'ŭ',
	'C': 'Ĉ', 'G': 'Ĝ', 'H': 'Ĥ', 'J': 'Ĵ', 'S': 'Ŝ', 'U': 'Ŭ',
}

func isX(b byte) bool { return b == 'x' || b == 'X' }

// Convert returns the converted text. When any letter cannot be converted the
// returned error is a *ConversionError and the string is empty.
func (c *Converter) Convert(text string) (string, error) {
	src := norm.NFC.String(text)

	var (
		b      strings.Builder
		issues []Issue
		pos    = cursor{line: 1, column: 1}
	)
	b.Grow(len(src))

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])

		if acc, ok := accented[r]; ok && i+size < len(src) && isX(src[i+size]) {
			if i+size+1 < len(src) && isX(src[i+size+1]) {
				b.WriteRune(r)
				b.WriteByte(src[i+size])
				pos.advance(src[i : i+size+2])
				i += size + 2
				continue
			}
			b.WriteRune(acc)
			pos.advance(src[i : i+size+1])
			i += size + 1
			continue
		}

		if kind, bad := classify(r); bad && !c.opts.AllowForeign {
			issues = append(issues, Issue{
				Offset: i,
				Line:   pos.line,
				Column: pos.column,
				Rune:   r,
				Kind:   kind,
			})
		}

		b.WriteString(src[i : i+size])
		pos.advance(src[i : i+size])
		i += size
	}

	if len(issues) > 0 {
		return "", &ConversionError{Issues: issues}
	}
	return norm.NFC.String(b.String()), nil
}

// classify reports whether r is outside the Esperanto alphabet. An x reaching
// classify never followed a convertible letter.
func classify(r rune) (Kind, bool) {
	switch r {
	case 'x', 'X':
		return KindStrayX, true
	case 'q', 'Q', 'w', 'W', 'y', 'Y':
		return KindForeignLetter, true
	}
	return 0, false
}

// cursor tracks the 1-based line and rune column of the scan position.
type cursor struct {
	line, column int
}

func (p *cursor) advance(s string) {
	for _, r := range s {
		if r == '\n' {
			p.line++
			p.column = 1
			continue
		}
		p.column++
	}
}
