package token

// Kind represents the category of an expression token. The set is closed:
// the lexer produces nothing outside of it, and the parser switches over it
// exhaustively.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The lexer never emits it; the
	// zero value exists so that an uninitialized Token is recognizable.
	Invalid Kind = iota
	// EOF marks the end of the expression input.
	EOF

	// Number is a numeric literal, including decimal and exponent forms.
	Number
	// Ident is a variable name in its original LaTeX-ish spelling,
	// subscripts and braces included.
	Ident
	// Unit is a unit name extracted from a \mathrm{...} or \text{...}
	// wrapper; Text holds only the inner name.
	Unit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents multiplication: '*', '\cdot' or '\times'.
	// Text keeps the original spelling.
	Star // *
	// Slash represents the division operator token.
	Slash // /
	// Caret represents the exponentiation operator token.
	Caret // ^
	// Comma separates array elements.
	Comma // ,
	// Frac represents the '\frac' (or '\dfrac') marker.
	Frac // \frac

	// LParen represents '(' or '\left('.
	LParen // (
	// RParen represents ')' or '\right)'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case Unit:
		return "Unit"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Caret:
		return "Caret"
	case Comma:
		return "Comma"
	case Frac:
		return "Frac"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	}
	return "Unknown"
}
