// Package token defines the closed token set of the recalc expression
// language: numbers, variable names, wrapped unit names, operators,
// the fraction marker and bracket pairs.
package token
