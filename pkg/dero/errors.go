package dero

import (
	"errors"
	"fmt"
)

// ErrNotConvertible is matched by every *ConversionError via errors.Is.
var ErrNotConvertible = errors.New("dero: text could not be fully converted")

// Kind classifies a conversion issue.
type Kind int

const (
	// KindForeignLetter is a letter outside the Esperanto alphabet (q, w, y).
	KindForeignLetter Kind = iota + 1
	// KindStrayX is an x that does not follow c, g, h, j, s or u.
	KindStrayX
)

func (k Kind) String() string {
	switch k {
	case KindForeignLetter:
		return "foreign letter"
	case KindStrayX:
		return "stray x"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Issue is one position in the normalised text that could not be converted.
type Issue struct {
	Offset int // byte offset into the NFC-normalised text
	Line   int // 1-based
	Column int // 1-based, in runes
	Rune   rune
	Kind   Kind
}

func (i Issue) message() string {
	switch i.Kind {
	case KindStrayX:
		return fmt.Sprintf("%q does not follow a letter that takes a diacritic", i.Rune)
	default:
		return fmt.Sprintf("%q is not a letter of the Esperanto alphabet", i.Rune)
	}
}

var replacements = map[rune]string{
	'q': "kv", 'w': "v", 'y': "j",
	'Q': "Kv", 'W': "V", 'Y': "J",
}

func (i Issue) help() string {
	if i.Kind == KindStrayX {
		return "the x-system digraphs are cx, gx, hx, jx, sx and ux"
	}
	if r, ok := replacements[i.Rune]; ok {
		return fmt.Sprintf("Esperanto spells this sound %q", r)
	}
	return ""
}

// ConversionError reports every issue found while converting one text.
type ConversionError struct {
	Issues []Issue
}

func (e *ConversionError) Error() string {
	if len(e.Issues) == 0 {
		return ErrNotConvertible.Error()
	}
	first := e.Issues[0]
	msg := fmt.Sprintf("dero: %d:%d: %s", first.Line, first.Column, first.message())
	if n := len(e.Issues) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// Is reports whether target is ErrNotConvertible.
func (e *ConversionError) Is(target error) bool {
	return target == ErrNotConvertible
}
