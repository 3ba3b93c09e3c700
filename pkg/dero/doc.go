// Package dero converts Esperanto text typed in the x-system into proper
// Unicode orthography.
//
// Keyboards without Esperanto layouts commonly spell the six accented letters
// as a base letter followed by x:
//
//	cx gx hx jx sx ux  ->  ĉ ĝ ĥ ĵ ŝ ŭ
//
// Convert rewrites those digraphs, keeping the case of the base letter, and
// rejects letters that do not belong to the Esperanto alphabet. A rejected
// text yields a *ConversionError listing every offending position; its
// PrintExplanation method renders them as compiler-style diagnostics.
//
// A doubled x after a convertible letter escapes the digraph, so "cxx" is
// written as the literal "cx".
//
// Text is NFC-normalised on the way in and on the way out.
package dero
