// Package parser builds expression trees from token streams by recursive
// descent with explicit precedence: addition below multiplication below
// unary minus below right-associative exponentiation below postfix
// indexing. Malformed input yields a single syntax diagnostic with the
// expectation and the span reached.
package parser
