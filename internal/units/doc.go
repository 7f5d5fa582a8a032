// Package units implements the unit algebra behind evaluation: an opaque
// Unit handle, the System contract the evaluator talks to, and a Table
// with SI units, metric prefixes and TOML-defined custom units.
package units
