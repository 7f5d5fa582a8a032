// Package lexer tokenizes recalc expression text written in LaTeX-like
// notation. Scanning is priority-ordered: unit names wrapped in \mathrm/\text
// first, then numeric literals, subscripted and multi-letter identifiers,
// Greek-letter commands, the fraction marker, operators, brackets, and a
// single-letter fallback last, so that multi-letter names are never split
// into single-letter products. Tokenization is total; unrecognized input is
// skipped and surfaced only as Info diagnostics.
package lexer
